package store

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Memory is a KV living in process memory. Its zero value is ready to use.
type Memory struct {
	mu      sync.Mutex
	content map[string][]byte
	// Fail, when set, makes every operation return it. Used to simulate an
	// unavailable storage.
	Fail error
}

// NewMemory returns an empty Memory KV.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	v, ok := m.content[key]
	if !ok {
		return nil, fmt.Errorf("memory %q: %w", key, ErrNotFound)
	}
	return slices.Clone(v), nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	if m.content == nil {
		m.content = make(map[string][]byte)
	}
	m.content[key] = slices.Clone(value)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	delete(m.content, key)
	return nil
}

// Keys returns the sorted list of keys currently set.
func (m *Memory) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.content))
}

func (m *Memory) Close() error { return nil }
