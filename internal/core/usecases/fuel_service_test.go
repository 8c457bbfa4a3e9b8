package usecases_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
	"github.com/samirrijal/fuelcalc/internal/core/usecases"
)

func params() domain.FuelParams {
	return domain.FuelParams{FuelPricePerLiter: 1.35, AverageSpeed: 60, FuelConsumptionPer100Km: 8.5}
}

func moscowSpb() *domain.PointPair {
	return &domain.PointPair{
		FirstPoint:  &domain.GeoPoint{Latitude: 55.7558, Longitude: 37.6173},
		SecondPoint: &domain.GeoPoint{Latitude: 59.9343, Longitude: 30.3351},
	}
}

// moscowSpbKm is the Haversine distance (R = 6371 km) of moscowSpb().
const moscowSpbKm = 633.02

func TestFuelService_EstimateByDistance(t *testing.T) {
	pub := &fakePublisher{}
	svc := usecases.NewFuelService(pub)

	res, err := svc.EstimateByDistance(context.Background(), domain.DistanceFuelRequest{FuelParams: params(), Distance: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := domain.CalculateFromDistance(100, 8.5, 1.35); res.TotalCost != want {
		t.Errorf("expected %v, got %v", want, res.TotalCost)
	}

	if len(pub.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.Kind != domain.EstimateFuelByDistance || ev.DistanceKm != 100 {
		t.Errorf("unexpected event %+v", ev)
	}
	if ev.TotalCost == nil || *ev.TotalCost != res.TotalCost {
		t.Errorf("expected event total cost %v, got %v", res.TotalCost, ev.TotalCost)
	}
	if ev.ComputedAt.IsZero() {
		t.Error("expected computed_at to be set")
	}
}

func TestFuelService_EstimateByPoints(t *testing.T) {
	pub := &fakePublisher{}
	svc := usecases.NewFuelService(pub)

	res, err := svc.EstimateByPoints(context.Background(), domain.PointsFuelRequest{FuelParams: params(), PointsOnMap: moscowSpb()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 633.02 km at 8.5 l/100km and 1.35 per liter
	if math.Abs(res.TotalCost-moscowSpbKm*0.085*1.35) > 0.01 {
		t.Errorf("unexpected total cost %v", res.TotalCost)
	}
	if len(pub.events) != 1 || pub.events[0].Kind != domain.EstimateFuelByPoints {
		t.Errorf("expected one fuel_by_points event, got %+v", pub.events)
	}
}

func TestFuelService_ValidationError(t *testing.T) {
	pub := &fakePublisher{}
	svc := usecases.NewFuelService(pub)

	p := params()
	p.FuelPricePerLiter = -2
	_, err := svc.Estimate(context.Background(), domain.PointsFuelRequest{
		FuelParams:  p,
		PointsOnMap: &domain.PointPair{SecondPoint: &domain.GeoPoint{Latitude: 1, Longitude: 1}},
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	got := verr.Messages()
	if len(got) != 2 || got[0] != "FirstPoint cannot be null." || got[1] != "FuelPricePerLiter must be greater than 0." {
		t.Errorf("unexpected failures %v", got)
	}
	if len(pub.events) != 0 {
		t.Errorf("expected no events for rejected request, got %d", len(pub.events))
	}
}

func TestFuelService_NilPublisher(t *testing.T) {
	svc := usecases.NewFuelService(nil)
	if _, err := svc.EstimateByDistance(context.Background(), domain.DistanceFuelRequest{FuelParams: params(), Distance: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFuelService_PublishFailureDoesNotFail(t *testing.T) {
	svc := usecases.NewFuelService(&fakePublisher{err: errors.New("nats down")})
	res, err := svc.EstimateByDistance(context.Background(), domain.DistanceFuelRequest{FuelParams: params(), Distance: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalCost <= 0 {
		t.Errorf("expected positive cost, got %v", res.TotalCost)
	}
}
