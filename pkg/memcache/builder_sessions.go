// pkg/mem/builder_sessions.go
package mem

import (
	"sync"
	"time"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/itinerary_models"
)

type BuilderSessionStore interface {
	Put(id string, builder *itinerary_models.Builder, ttl time.Duration)

	// Get returns the live builder for id and slides its expiry, so a
	// session stays alive as long as the traveler keeps editing.
	Get(id string) (*itinerary_models.Builder, bool)

	// Drop removes the session; used after submission or abandonment.
	Drop(id string)
}

type sessionEntry struct {
	builder   *itinerary_models.Builder
	ttl       time.Duration
	expiresAt time.Time
}

type BuilderSessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

func NewBuilderSessions() *BuilderSessions {
	return &BuilderSessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *BuilderSessions) Put(id string, builder *itinerary_models.Builder, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = sessionEntry{
		builder:   builder,
		ttl:       ttl,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *BuilderSessions) Get(id string) (*itinerary_models.Builder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return nil, false
	}
	e.expiresAt = time.Now().Add(e.ttl)
	s.data[id] = e
	return e.builder, true
}

func (s *BuilderSessions) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
