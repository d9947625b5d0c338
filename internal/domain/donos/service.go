package donos

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("dono not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Nome     string
	CPF      string
	Telefone string
}

// Create registra un dono. No valida más allá del recorte de espacios:
// los tres campos son opcionales en el modelo original.
func (s *Service) Create(ctx context.Context, in CreateInput) (Dono, error) {
	d := Dono{
		Nome:     strings.TrimSpace(in.Nome),
		CPF:      strings.TrimSpace(in.CPF),
		Telefone: strings.TrimSpace(in.Telefone),
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) List(ctx context.Context) ([]Dono, error) {
	return s.repo.List(ctx)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Nome     *string
	CPF      *string
	Telefone *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Dono, error) {
	if id <= 0 {
		return Dono{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Dono{}, err
	}

	if in.Nome != nil {
		current.Nome = strings.TrimSpace(*in.Nome)
	}
	if in.CPF != nil {
		current.CPF = strings.TrimSpace(*in.CPF)
	}
	if in.Telefone != nil {
		current.Telefone = strings.TrimSpace(*in.Telefone)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Dono{}, err
	}
	return current, nil
}

// Delete borra el dono y todos sus pets en cascada.
// Devuelve cuántos pets se borraron junto con el dono.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, ErrNotFound
	}
	return s.repo.DeleteWithPets(ctx, id)
}
