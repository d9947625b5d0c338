package postgres

import (
	"context"
	"database/sql"

	"petshop-api/internal/domain/users"
	"petshop-api/internal/ports/auth"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO usuarios (nome, email, senha_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, u.Nome, u.Email, u.SenhaHash, string(u.Role)).Scan(&u.ID)
	if err != nil {
		// El índice único es la autoridad ante registros concurrentes
		// con el mismo email.
		if isUniqueViolation(err) {
			return users.User{}, users.ErrEmailTaken
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, nome, email, senha_hash, role
		FROM usuarios
		WHERE email = $1
	`, email)

	var u users.User
	var role string
	if err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &role); err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	u.Role = auth.Role(role)
	return u, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nome, email, senha_hash, role
		FROM usuarios
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		var role string
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &role); err != nil {
			return nil, err
		}
		u.Role = auth.Role(role)
		out = append(out, u)
	}
	return out, rows.Err()
}
