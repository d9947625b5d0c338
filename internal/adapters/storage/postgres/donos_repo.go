package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"petshop-api/internal/domain/donos"
)

type DonosRepo struct {
	db *sql.DB
}

func NewDonosRepo(db *sql.DB) *DonosRepo {
	return &DonosRepo{db: db}
}

func (r *DonosRepo) Create(ctx context.Context, d donos.Dono) (donos.Dono, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO donos (nome, cpf, telefone)
		VALUES ($1, $2, $3)
		RETURNING id
	`, nullStr(d.Nome), nullStr(d.CPF), nullStr(d.Telefone)).Scan(&d.ID)
	if err != nil {
		return donos.Dono{}, err
	}
	return d, nil
}

func (r *DonosRepo) GetByID(ctx context.Context, id int64) (donos.Dono, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, nome, cpf, telefone
		FROM donos
		WHERE id = $1
	`, id)

	d, err := scanDono(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return donos.Dono{}, donos.ErrNotFound
		}
		return donos.Dono{}, err
	}
	return d, nil
}

func (r *DonosRepo) List(ctx context.Context) ([]donos.Dono, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nome, cpf, telefone
		FROM donos
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]donos.Dono, 0)
	for rows.Next() {
		d, err := scanDono(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DonosRepo) Update(ctx context.Context, d donos.Dono) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE donos
		SET nome = $2, cpf = $3, telefone = $4
		WHERE id = $1
	`, d.ID, nullStr(d.Nome), nullStr(d.CPF), nullStr(d.Telefone))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return donos.ErrNotFound
	}
	return nil
}

// DeleteWithPets borra pets y dono en una sola transacción.
// Si el dono no existe, el rollback garantiza que los pets tampoco
// se tocan.
func (r *DonosRepo) DeleteWithPets(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin cascade delete: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	petsRes, err := tx.ExecContext(ctx, `DELETE FROM pets WHERE dono_id = $1`, id)
	if err != nil {
		return 0, err
	}
	petsDeleted, _ := petsRes.RowsAffected()

	donoRes, err := tx.ExecContext(ctx, `DELETE FROM donos WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	if n, _ := donoRes.RowsAffected(); n == 0 {
		return 0, donos.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit cascade delete: %w", err)
	}
	return petsDeleted, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanDono(row scannable) (donos.Dono, error) {
	var d donos.Dono
	var nome, cpf, telefone sql.NullString
	if err := row.Scan(&d.ID, &nome, &cpf, &telefone); err != nil {
		return donos.Dono{}, err
	}
	d.Nome = nome.String
	d.CPF = cpf.String
	d.Telefone = telefone.String
	return d, nil
}

// nullStr mapea "" a NULL: los campos opcionales quedan NULL y no "".
func nullStr(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
