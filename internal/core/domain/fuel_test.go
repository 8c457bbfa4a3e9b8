package domain_test

import (
	"math"
	"testing"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
)

func TestCalculateFromDistance(t *testing.T) {
	distance, consumption, price := 100.0, 8.5, 1.35
	want := (distance / 100) * consumption * price

	got := domain.CalculateFromDistance(distance, consumption, price)
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	if math.Abs(got-11.475) > 1e-9 {
		t.Errorf("expected ~11.475, got %v", got)
	}
}

func TestCalculateFromDistance_ZeroDistance(t *testing.T) {
	if got := domain.CalculateFromDistance(0, 8.5, 1.35); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestCalculateFuel_ByDistanceIgnoresSpeed(t *testing.T) {
	slow := domain.DistanceFuelRequest{FuelParams: domain.FuelParams{FuelPricePerLiter: 1.35, AverageSpeed: 10, FuelConsumptionPer100Km: 8.5}, Distance: 150}
	fast := slow
	fast.AverageSpeed = 130

	a := domain.CalculateFuel(slow)
	b := domain.CalculateFuel(fast)
	if a != b {
		t.Errorf("expected speed not to affect cost, got %v and %v", a, b)
	}
	if a.TotalCost != domain.CalculateFromDistance(150, 8.5, 1.35) {
		t.Errorf("unexpected cost %v", a.TotalCost)
	}
}

func TestCalculateFuel_ByPoints(t *testing.T) {
	pair := domain.PointPair{FirstPoint: moscow(), SecondPoint: spb()}
	req := domain.PointsFuelRequest{FuelParams: validParams(), PointsOnMap: &pair}

	got := domain.CalculateFuel(req)
	distance := domain.HaversineDistanceKm(*moscow(), *spb())
	want := domain.CalculateFromDistance(distance, 8.5, 1.35)
	if got.TotalCost != want {
		t.Errorf("expected %v, got %v", want, got.TotalCost)
	}
	if got != domain.CalculateFuel(req) {
		t.Error("expected identical output for identical input")
	}
}

// moscowSpbKm is the Haversine distance (R = 6371 km) between moscow() and spb().
const moscowSpbKm = 633.02

func TestTripDistanceKm(t *testing.T) {
	if got := domain.TripDistanceKm(domain.DistanceFuelRequest{Distance: 42}); got != 42 {
		t.Errorf("expected 42, got %v", got)
	}
	pair := domain.PointPair{FirstPoint: moscow(), SecondPoint: spb()}
	got := domain.TripDistanceKm(domain.PointsFuelRequest{PointsOnMap: &pair})
	if math.Abs(got-moscowSpbKm) > 0.01 {
		t.Errorf("expected ~%v km, got %v", moscowSpbKm, got)
	}
}

func TestCalculateDistance(t *testing.T) {
	a := domain.CalculateDistance(domain.PointPair{FirstPoint: moscow(), SecondPoint: spb()})
	b := domain.CalculateDistance(domain.PointPair{FirstPoint: spb(), SecondPoint: moscow()})
	if a != b {
		t.Errorf("expected symmetric result, got %v and %v", a, b)
	}
	if math.Abs(a.DistanceKm-moscowSpbKm) > 0.01 {
		t.Errorf("expected ~%v km, got %v", moscowSpbKm, a.DistanceKm)
	}
}

func TestHaversineDistanceKm_SamePoint(t *testing.T) {
	p := domain.GeoPoint{Latitude: -33.8688, Longitude: 151.2093}
	if d := domain.HaversineDistanceKm(p, p); d != 0 {
		t.Errorf("expected 0, got %v", d)
	}
}
