package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"guess-the-number/internal/models"
)

// MemoryStore keeps sessions in process memory. State is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.PlayerSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.PlayerSession)}
}

func (m *MemoryStore) Save(ctx context.Context, session *models.PlayerSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = clonePlayerSession(session)
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*models.PlayerSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return clonePlayerSession(s), nil
	}
	return nil, ErrSessionNotFound
}

func (m *MemoryStore) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	return ok, nil
}

func (m *MemoryStore) List(ctx context.Context) ([]*models.PlayerSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make([]*models.PlayerSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, clonePlayerSession(s))
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (m *MemoryStore) CleanupStale(ctx context.Context, maxAge time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (m *MemoryStore) Close() error { return nil }

// Stored sessions are copied so callers never share the guesses slice.
func clonePlayerSession(s *models.PlayerSession) *models.PlayerSession {
	c := *s
	c.State.Guesses = append([]int(nil), s.State.Guesses...)
	return &c
}
