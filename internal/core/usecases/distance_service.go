package usecases

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
	"github.com/samirrijal/fuelcalc/internal/core/ports"
	"github.com/samirrijal/fuelcalc/internal/pkg/metrics"
)

// DistanceService measures great-circle distance between two points.
type DistanceService struct {
	cache     ports.CacheService
	publisher ports.EventPublisher
	ttl       int
	now       func() time.Time
}

// NewDistanceService creates a new DistanceService. cache and publisher may be nil.
func NewDistanceService(cache ports.CacheService, publisher ports.EventPublisher, ttlSeconds int) *DistanceService {
	if ttlSeconds <= 0 {
		ttlSeconds = 3600
	}
	return &DistanceService{cache: cache, publisher: publisher, ttl: ttlSeconds, now: time.Now}
}

// Between validates pair and returns the distance between its points.
// Invalid input returns a *domain.ValidationError listing every failure.
func (s *DistanceService) Between(ctx context.Context, pair domain.PointPair) (*domain.DistanceResult, error) {
	ctx, span := tracer.Start(ctx, "DistanceService.Between")
	defer span.End()
	kind := string(domain.EstimateDistanceByPoints)

	if failures := domain.ValidatePointPair(pair); len(failures) > 0 {
		verr := &domain.ValidationError{Failures: failures}
		recordRejection(span, verr)
		metrics.ValidationFailures.WithLabelValues(kind).Add(float64(len(failures)))
		return nil, verr
	}

	cacheKey := distanceCacheKey(pair)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var cached domain.DistanceResult
			if err := json.Unmarshal(data, &cached); err == nil {
				metrics.CacheHits.WithLabelValues("distance").Inc()
				span.SetAttributes(attribute.Bool("fuelcalc.cache_hit", true))
				return &cached, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("distance").Inc()
	}

	result := domain.CalculateDistance(pair)
	metrics.Calculations.WithLabelValues(kind).Inc()
	span.SetAttributes(attribute.Float64("fuelcalc.distance_km", result.DistanceKm))

	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.ttl); err != nil {
				slog.WarnContext(ctx, "cache distance failed", "key", cacheKey, "error", err)
			}
		}
	}

	if s.publisher != nil {
		event := &domain.EstimateEvent{
			Kind:       domain.EstimateDistanceByPoints,
			DistanceKm: result.DistanceKm,
			ComputedAt: s.now().UTC(),
		}
		if err := s.publisher.PublishEstimate(ctx, event); err != nil {
			slog.WarnContext(ctx, "publish estimate failed", "kind", event.Kind, "error", err)
		}
	}

	return &result, nil
}

// distanceCacheKey encodes the exact coordinates; the distance is symmetric
// but the key is not, so swapped pairs are cached separately.
func distanceCacheKey(pair domain.PointPair) string {
	parts := []float64{
		pair.FirstPoint.Latitude, pair.FirstPoint.Longitude,
		pair.SecondPoint.Latitude, pair.SecondPoint.Longitude,
	}
	var b strings.Builder
	b.WriteString("distance")
	for _, v := range parts {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}
