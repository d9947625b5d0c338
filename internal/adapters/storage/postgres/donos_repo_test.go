package postgres

import (
	"context"
	"testing"

	"petshop-api/internal/domain/donos"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDeleteWithPetsRunsInsideOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM pets WHERE dono_id").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM donos WHERE id").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewDonosRepo(db)
	removed, err := repo.DeleteWithPets(context.Background(), 7)
	if err != nil {
		t.Fatalf("delete with pets: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 pets removed, got %d", removed)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeleteWithPetsUnknownDonoRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM pets WHERE dono_id").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM donos WHERE id").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := NewDonosRepo(db)
	if _, err := repo.DeleteWithPets(context.Background(), 99); err != donos.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateReturnsGeneratedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO donos").
		WithArgs("Carlos", "123", "555").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	repo := NewDonosRepo(db)
	d, err := repo.Create(context.Background(), donos.Dono{Nome: "Carlos", CPF: "123", Telefone: "555"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.ID != 5 {
		t.Fatalf("expected id 5, got %d", d.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
