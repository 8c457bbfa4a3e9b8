package usecases_test

import (
	"context"
	"errors"
	"sync"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
)

var errMiss = errors.New("valkey nil message")

// --- Fake CacheService ---

type fakeCache struct {
	mu    sync.Mutex
	data  map[string][]byte
	ttls  map[string]int
	gets  int
	setFn func(key string, value []byte) error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}, ttls: map[string]int{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	v, ok := f.data[key]
	if !ok {
		return nil, errMiss
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	if f.setFn != nil {
		return f.setFn(key, value)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	f.ttls[key] = ttlSeconds
	return nil
}

// --- Fake EventPublisher ---

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.EstimateEvent
	err    error
}

func (f *fakePublisher) PublishEstimate(ctx context.Context, event *domain.EstimateEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, *event)
	return nil
}
