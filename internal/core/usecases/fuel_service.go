package usecases

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
	"github.com/samirrijal/fuelcalc/internal/core/ports"
	"github.com/samirrijal/fuelcalc/internal/pkg/metrics"
)

// FuelService estimates trip fuel cost.
type FuelService struct {
	publisher ports.EventPublisher
	now       func() time.Time
}

// NewFuelService creates a new FuelService. publisher may be nil.
func NewFuelService(publisher ports.EventPublisher) *FuelService {
	return &FuelService{publisher: publisher, now: time.Now}
}

// Estimate validates req and, when it is valid, computes the trip cost.
// Invalid input returns a *domain.ValidationError listing every failure.
func (s *FuelService) Estimate(ctx context.Context, req domain.FuelRequest) (*domain.FuelResult, error) {
	kind := estimateKind(req)
	ctx, span := tracer.Start(ctx, "FuelService.Estimate")
	defer span.End()
	span.SetAttributes(attribute.String("fuelcalc.kind", string(kind)))

	if failures := domain.ValidateFuelRequest(req); len(failures) > 0 {
		verr := &domain.ValidationError{Failures: failures}
		recordRejection(span, verr)
		metrics.ValidationFailures.WithLabelValues(string(kind)).Add(float64(len(failures)))
		return nil, verr
	}

	distance := domain.TripDistanceKm(req)
	result := domain.CalculateFuel(req)
	metrics.Calculations.WithLabelValues(string(kind)).Inc()
	span.SetAttributes(
		attribute.Float64("fuelcalc.distance_km", distance),
		attribute.Float64("fuelcalc.total_cost", result.TotalCost),
	)

	cost := result.TotalCost
	s.publish(ctx, &domain.EstimateEvent{
		Kind:       kind,
		DistanceKm: distance,
		TotalCost:  &cost,
		ComputedAt: s.now().UTC(),
	})

	return &result, nil
}

// EstimateByDistance is Estimate for a known distance.
func (s *FuelService) EstimateByDistance(ctx context.Context, req domain.DistanceFuelRequest) (*domain.FuelResult, error) {
	return s.Estimate(ctx, req)
}

// EstimateByPoints is Estimate between two coordinates.
func (s *FuelService) EstimateByPoints(ctx context.Context, req domain.PointsFuelRequest) (*domain.FuelResult, error) {
	return s.Estimate(ctx, req)
}

func (s *FuelService) publish(ctx context.Context, event *domain.EstimateEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEstimate(ctx, event); err != nil {
		slog.WarnContext(ctx, "publish estimate failed", "kind", event.Kind, "error", err)
	}
}

func estimateKind(req domain.FuelRequest) domain.EstimateKind {
	if _, ok := req.(domain.PointsFuelRequest); ok {
		return domain.EstimateFuelByPoints
	}
	return domain.EstimateFuelByDistance
}
