package memory

import (
	"context"
	"sort"

	"petshop-api/internal/domain/users"
)

type usersRepo struct {
	store *Store
}

func NewUsersRepo(store *Store) users.Repository {
	return &usersRepo{store: store}
}

func (r *usersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Índice único de email, como en el storage real.
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return users.User{}, users.ErrEmailTaken
		}
	}

	u.ID = s.nextUserID
	s.nextUserID++
	s.users[u.ID] = u
	return u, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *usersRepo) List(ctx context.Context) ([]users.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]users.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
