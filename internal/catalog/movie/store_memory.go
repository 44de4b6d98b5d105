package movie

import (
	"context"
	"sync"
)

// MemoryRepository is the catalog used with STORAGE_DRIVER=memory.
type MemoryRepository struct {
	mu         sync.RWMutex
	byID       map[string]*Movie
	byExternal map[string]*Movie
}

func NewMemoryRepository(movies ...Movie) *MemoryRepository {
	repository := &MemoryRepository{
		byID:       make(map[string]*Movie),
		byExternal: make(map[string]*Movie),
	}
	for _, m := range movies {
		repository.Put(m)
	}
	return repository
}

// Put adds or replaces a movie.
func (repository *MemoryRepository) Put(m Movie) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if previous, ok := repository.byID[m.ID]; ok {
		delete(repository.byExternal, previous.ExternalID)
	}
	repository.byID[m.ID] = &m
	repository.byExternal[m.ExternalID] = &m
}

func (repository *MemoryRepository) Exists(_ context.Context, id string) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.byID[id]
	return ok, nil
}

func (repository *MemoryRepository) FindByExternalID(_ context.Context, externalID string) (*Movie, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	m, ok := repository.byExternal[externalID]
	if !ok {
		return nil, ErrNotFound
	}
	found := *m
	return &found, nil
}
