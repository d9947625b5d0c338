package memory

import (
	"context"
	"sort"

	"petshop-api/internal/domain/donos"
)

type donosRepo struct {
	store *Store
}

func NewDonosRepo(store *Store) donos.Repository {
	return &donosRepo{store: store}
}

func (r *donosRepo) Create(ctx context.Context, d donos.Dono) (donos.Dono, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = s.nextDonoID
	s.nextDonoID++
	s.donos[d.ID] = d
	return d, nil
}

func (r *donosRepo) GetByID(ctx context.Context, id int64) (donos.Dono, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.donos[id]
	if !ok {
		return donos.Dono{}, donos.ErrNotFound
	}
	return d, nil
}

func (r *donosRepo) List(ctx context.Context) ([]donos.Dono, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]donos.Dono, 0, len(s.donos))
	for _, d := range s.donos {
		out = append(out, d)
	}

	// Orden estable por id asc, como el ORDER BY del repo de Postgres.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *donosRepo) Update(ctx context.Context, d donos.Dono) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.donos[d.ID]; !ok {
		return donos.ErrNotFound
	}
	s.donos[d.ID] = d
	return nil
}

func (r *donosRepo) DeleteWithPets(ctx context.Context, id int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.donos[id]; !ok {
		return 0, donos.ErrNotFound
	}

	var removed int64
	for petID, p := range s.pets {
		if p.DonoID == id {
			delete(s.pets, petID)
			removed++
		}
	}
	delete(s.donos, id)
	return removed, nil
}
