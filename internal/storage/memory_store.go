package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryStore keeps JSON-encoded items in process memory.
func NewMemoryStore() Store {
	return &memoryStore{items: make(map[string][]byte)}
}

func (m *memoryStore) GetItem(_ context.Context, key string, value any) (bool, error) {
	m.mu.RLock()
	data, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal stored data for key %s: %w", key, err)
	}

	return true, nil
}

func (m *memoryStore) SetItem(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	m.mu.Lock()
	m.items[key] = data
	m.mu.Unlock()

	return nil
}

func (m *memoryStore) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()

	return nil
}

func (m *memoryStore) Close() error {
	return nil
}
