package memory

import (
	"context"
	"errors"
	"sort"

	"petshop-api/internal/domain/pets"
)

// errFKViolation emula la FK pets.dono_id → donos.id del storage real.
var errFKViolation = errors.New("dono does not exist")

type petsRepo struct {
	store *Store
}

func NewPetsRepo(store *Store) pets.Repository {
	return &petsRepo{store: store}
}

func (r *petsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.donos[p.DonoID]; !ok {
		return pets.Pet{}, errFKViolation
	}

	p.ID = s.nextPetID
	s.nextPetID++
	s.pets[p.ID] = p
	return p, nil
}

func (r *petsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]pets.Pet, 0, len(s.pets))
	for _, p := range s.pets {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pets[p.ID]; !ok {
		return pets.ErrNotFound
	}
	s.pets[p.ID] = p
	return nil
}

func (r *petsRepo) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pets[id]; !ok {
		return pets.ErrNotFound
	}
	delete(s.pets, id)
	return nil
}
