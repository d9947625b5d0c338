package donos

import "context"

type Repository interface {
	Create(ctx context.Context, d Dono) (Dono, error)
	GetByID(ctx context.Context, id int64) (Dono, error)
	List(ctx context.Context) ([]Dono, error)
	Update(ctx context.Context, d Dono) error

	// DeleteWithPets borra los pets del dono y luego el dono, como una
	// sola unidad. Devuelve cuántos pets cayeron en la cascada.
	// Si el dono no existe devuelve ErrNotFound sin tocar nada.
	DeleteWithPets(ctx context.Context, id int64) (int64, error)
}
