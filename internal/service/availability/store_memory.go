package availability

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store for tests and local runs.
type MemoryStore struct {
	mu        sync.RWMutex
	templates map[uuid.UUID]Template
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{templates: make(map[uuid.UUID]Template)}
}

func (s *MemoryStore) GetTemplate(_ context.Context, providerID uuid.UUID) (*Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.templates[providerID]
	if !ok {
		return nil, ErrTemplateNotFound
	}
	return cloneTemplate(t), nil
}

func (s *MemoryStore) UpsertTemplate(_ context.Context, t Template) (*Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[t.ProviderID] = *cloneTemplate(t)
	return cloneTemplate(t), nil
}

func cloneTemplate(t Template) *Template {
	out := t
	out.Schedule = make([]DaySchedule, len(t.Schedule))
	for i, d := range t.Schedule {
		out.Schedule[i] = DaySchedule{DayOfWeek: d.DayOfWeek, Ranges: append([]TimeRange(nil), d.Ranges...)}
	}
	return &out
}
