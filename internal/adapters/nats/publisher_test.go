package natsadapter

import (
	"testing"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
)

func TestEstimateSubject(t *testing.T) {
	cases := map[domain.EstimateKind]string{
		domain.EstimateFuelByDistance:   "fuel.estimate.fuel_by_distance",
		domain.EstimateFuelByPoints:     "fuel.estimate.fuel_by_points",
		domain.EstimateDistanceByPoints: "fuel.estimate.distance_by_points",
	}
	for kind, want := range cases {
		if got := EstimateSubject(kind); got != want {
			t.Errorf("EstimateSubject(%s) = %q, want %q", kind, got, want)
		}
	}
}
