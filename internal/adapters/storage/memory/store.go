package memory

import (
	"sync"

	"petshop-api/internal/domain/donos"
	"petshop-api/internal/domain/pets"
	"petshop-api/internal/domain/users"
)

// Store guarda las tres colecciones bajo un solo mutex para que la
// cascada dono→pets sea atómica también en el modo in-memory.
type Store struct {
	mu sync.RWMutex

	donos map[int64]donos.Dono
	pets  map[int64]pets.Pet
	users map[int64]users.User

	nextDonoID int64
	nextPetID  int64
	nextUserID int64
}

func NewStore() *Store {
	return &Store{
		donos:      make(map[int64]donos.Dono),
		pets:       make(map[int64]pets.Pet),
		users:      make(map[int64]users.User),
		nextDonoID: 1,
		nextPetID:  1,
		nextUserID: 1,
	}
}
