package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// La cascada dono→pets se ejecuta explícitamente en DonosRepo dentro de
// una transacción; la FK NO lleva ON DELETE CASCADE a propósito, para
// que exista un único mecanismo de borrado.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS donos (
		id BIGSERIAL PRIMARY KEY,
		nome TEXT,
		cpf TEXT,
		telefone TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id BIGSERIAL PRIMARY KEY,
		nome TEXT,
		tipo TEXT,
		raca TEXT,
		dono_id BIGINT NOT NULL REFERENCES donos(id)
	)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id BIGSERIAL PRIMARY KEY,
		nome TEXT NOT NULL,
		email TEXT NOT NULL,
		senha_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'worker'
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS usuarios_email_idx ON usuarios (email)`,
}

// EnsureSchema crea las tablas si no existen. Reemplaza tooling de
// migraciones: el esquema es chico y estable.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
