package users

import "context"

type Repository interface {
	// Create inserta el usuario y devuelve la copia con ID asignado.
	// Si el email ya existe (índice único) devuelve ErrEmailTaken.
	Create(ctx context.Context, u User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
}
