package ports

import (
	"context"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
)

// EventPublisher publishes estimate events to a message broker.
type EventPublisher interface {
	PublishEstimate(ctx context.Context, event *domain.EstimateEvent) error
}

// CacheService provides read-through caching.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
}
