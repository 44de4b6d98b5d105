package profile

import (
	"context"
	"sync"
)

// MemorySource is the profile source used with STORAGE_DRIVER=memory.
type MemorySource struct {
	mu    sync.RWMutex
	names map[string]string
}

func NewMemorySource(names map[string]string) *MemorySource {
	source := &MemorySource{names: make(map[string]string, len(names))}
	for id, name := range names {
		source.names[id] = name
	}
	return source
}

// Put sets the display name of a user.
func (source *MemorySource) Put(userID, username string) {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.names[userID] = username
}

func (source *MemorySource) DisplayNames(_ context.Context, userIDs []string) (map[string]string, error) {
	source.mu.RLock()
	defer source.mu.RUnlock()

	names := make(map[string]string, len(userIDs))
	for _, id := range userIDs {
		if name, ok := source.names[id]; ok {
			names[id] = name
		}
	}
	return names, nil
}
