package postgres

import (
	"context"
	"database/sql"

	"petshop-api/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	// Si dono_id no existe, la FK corta acá; no se prevalida.
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (nome, tipo, raca, dono_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, nullStr(p.Nome), nullStr(p.Tipo), nullStr(p.Raca), p.DonoID).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, nome, tipo, raca, dono_id
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nome, tipo, raca, dono_id
		FROM pets
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET nome = $2, tipo = $3, raca = $4
		WHERE id = $1
	`, p.ID, nullStr(p.Nome), nullStr(p.Tipo), nullStr(p.Raca))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func scanPet(row scannable) (pets.Pet, error) {
	var p pets.Pet
	var nome, tipo, raca sql.NullString
	if err := row.Scan(&p.ID, &nome, &tipo, &raca, &p.DonoID); err != nil {
		return pets.Pet{}, err
	}
	p.Nome = nome.String
	p.Tipo = tipo.String
	p.Raca = raca.String
	return p, nil
}
