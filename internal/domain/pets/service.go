package pets

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Nome   string
	Tipo   string
	Raca   string
	DonoID int64
}

// Create registra un pet. Solo valida la forma del dono_id; que el dono
// exista lo decide la FK del storage (regla del sistema original).
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if in.DonoID <= 0 {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		Nome:   strings.TrimSpace(in.Nome),
		Tipo:   strings.TrimSpace(in.Tipo),
		Raca:   strings.TrimSpace(in.Raca),
		DonoID: in.DonoID,
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
// El dono_id no se reasigna por esta vía.
type UpdateInput struct {
	Nome *string
	Tipo *string
	Raca *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Nome != nil {
		current.Nome = strings.TrimSpace(*in.Nome)
	}
	if in.Tipo != nil {
		current.Tipo = strings.TrimSpace(*in.Tipo)
	}
	if in.Raca != nil {
		current.Raca = strings.TrimSpace(*in.Raca)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
