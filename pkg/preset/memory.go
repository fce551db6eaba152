package preset

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-process preset store for development and testing.
type MemoryStore struct {
	mu      sync.RWMutex
	presets map[string]*Preset
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{presets: make(map[string]*Preset)}
}

// Put stores a preset, replacing any preset with the same ID. A
// different preset already holding the same name is replaced too, so
// name uniqueness matches the document store's unique index.
func (s *MemoryStore) Put(ctx context.Context, p *Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.presets {
		if existing.Name == p.Name && id != p.ID {
			delete(s.presets, id)
		}
	}

	cp := *p
	s.presets[p.ID] = &cp
	return nil
}

// Get retrieves a preset by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.presets[id]
	if !ok {
		return nil, notFound(id)
	}
	cp := *p
	return &cp, nil
}

// GetByName retrieves a preset by its unique name.
func (s *MemoryStore) GetByName(ctx context.Context, name string) (*Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.presets {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, notFound(name)
}

// List returns all presets sorted by name.
func (s *MemoryStore) List(ctx context.Context) ([]*Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Preset, 0, len(s.presets))
	for _, p := range s.presets {
		cp := *p
		out = append(out, &cp)
	}
	slices.SortFunc(out, func(a, b *Preset) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out, nil
}

// Delete removes a preset by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.presets[id]; !ok {
		return notFound(id)
	}
	delete(s.presets, id)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
