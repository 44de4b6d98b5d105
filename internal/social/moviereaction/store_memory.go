package moviereaction

import (
	"context"
	"sync"
	"time"
)

type pair struct {
	movieID string
	userID  string
}

// MemoryStore is the store used with STORAGE_DRIVER=memory.
type MemoryStore struct {
	mu        sync.Mutex
	reactions map[pair]Reaction
	now       func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		reactions: make(map[pair]Reaction),
		now:       time.Now,
	}
}

func (store *MemoryStore) Upsert(_ context.Context, movieID, userID string, liked bool) (*Reaction, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	key := pair{movieID: movieID, userID: userID}
	now := store.now().UTC()

	reaction, ok := store.reactions[key]
	if !ok {
		reaction = Reaction{MovieID: movieID, UserID: userID, CreatedAt: now}
	}
	reaction.Liked = liked
	reaction.UpdatedAt = now
	store.reactions[key] = reaction

	return &reaction, nil
}

func (store *MemoryStore) Get(_ context.Context, movieID, userID string) (*Reaction, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	reaction, ok := store.reactions[pair{movieID: movieID, userID: userID}]
	if !ok {
		return nil, ErrNotFound
	}
	return &reaction, nil
}
