package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/repositories"
)

// TravelTimeProviderInterface estimates the road transfer duration between
// two named destinations. Lookup is total: it answers every pair it is
// given, so itinerary and cost logic never handle a "no route" case.
type TravelTimeProviderInterface interface {
	Lookup(ctx context.Context, fromName string, toName string) float64
}

// --------- In-memory cache per (A,B) pair ---------

type pairKey struct {
	A string
	B string
}

// normalizePair orders the names so both directions share one cache slot;
// the duration table is direction-agnostic.
func normalizePair(from, to string) pairKey {
	if from > to {
		return pairKey{A: to, B: from}
	}
	return pairKey{A: from, B: to}
}

type pairCacheEntry struct {
	Hours     float64
	ExpiresAt time.Time
}

type TravelTimePairCache interface {
	Get(k pairKey) (float64, bool)
	Set(k pairKey, hours float64, ttl time.Duration)
}

type inMemoryPairCache struct {
	mu    sync.RWMutex
	store map[pairKey]pairCacheEntry
}

func NewInMemoryPairCache() TravelTimePairCache {
	return &inMemoryPairCache{store: make(map[pairKey]pairCacheEntry)}
}

func (c *inMemoryPairCache) Get(k pairKey) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return 0, false
	}
	return it.Hours, true
}

func (c *inMemoryPairCache) Set(k pairKey, hours float64, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = pairCacheEntry{Hours: hours, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- Table-backed provider ---------------

// fallbackTransferHours is used for pairs missing from the table. The table
// is operator-maintained and static, so a miss means an unmapped pair, not
// an error.
const fallbackTransferHours = 3.0

type TravelTimeService struct {
	repo       repositories.TravelTimeRepositoryInterface
	cache      TravelTimePairCache
	defaultTTL time.Duration
}

func NewTravelTimeService(repo repositories.TravelTimeRepositoryInterface, cache TravelTimePairCache) TravelTimeProviderInterface {
	return &TravelTimeService{
		repo:       repo,
		cache:      cache,
		defaultTTL: 24 * time.Hour,
	}
}

func (s *TravelTimeService) Lookup(ctx context.Context, fromName string, toName string) float64 {
	if fromName == toName || fromName == "" || toName == "" {
		return 0
	}

	k := normalizePair(fromName, toName)
	if hours, ok := s.cache.Get(k); ok {
		return hours
	}

	row, err := s.repo.GetHours(ctx, fromName, toName)
	if err != nil {
		// transient DB trouble: answer with the fallback, do not cache it
		log.Printf("travel time lookup %s -> %s failed: %v", fromName, toName, err)
		return fallbackTransferHours
	}

	hours := fallbackTransferHours
	if row != nil {
		hours = row.Hours
	}
	s.cache.Set(k, hours, s.defaultTTL)
	return hours
}
