package usecases_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
	"github.com/samirrijal/fuelcalc/internal/core/usecases"
)

func TestDistanceService_Between(t *testing.T) {
	pub := &fakePublisher{}
	svc := usecases.NewDistanceService(nil, pub, 0)

	res, err := svc.Between(context.Background(), *moscowSpb())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.DistanceKm-moscowSpbKm) > 0.01 {
		t.Errorf("expected ~%v km, got %v", moscowSpbKm, res.DistanceKm)
	}
	if len(pub.events) != 1 || pub.events[0].Kind != domain.EstimateDistanceByPoints || pub.events[0].TotalCost != nil {
		t.Errorf("unexpected events %+v", pub.events)
	}
}

func TestDistanceService_SamePoint(t *testing.T) {
	svc := usecases.NewDistanceService(nil, nil, 0)
	p := &domain.GeoPoint{Latitude: 43.263, Longitude: -2.935}

	_, err := svc.Between(context.Background(), domain.PointPair{FirstPoint: p, SecondPoint: p})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if got := verr.Messages(); len(got) != 1 || got[0] != "FirstPoint and SecondPoint cannot be the same." {
		t.Errorf("unexpected failures %v", got)
	}
}

func TestDistanceService_CachesResult(t *testing.T) {
	cache := newFakeCache()
	svc := usecases.NewDistanceService(cache, nil, 120)

	first, err := svc.Between(context.Background(), *moscowSpb())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cache.data) != 1 {
		t.Fatalf("expected 1 cached entry, got %d", len(cache.data))
	}
	for _, ttl := range cache.ttls {
		if ttl != 120 {
			t.Errorf("expected ttl 120, got %d", ttl)
		}
	}

	second, err := svc.Between(context.Background(), *moscowSpb())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *first != *second {
		t.Errorf("expected cached result %v to match %v", second, first)
	}
	if cache.gets != 2 {
		t.Errorf("expected 2 cache lookups, got %d", cache.gets)
	}
}

func TestDistanceService_CacheNotConsultedForInvalidInput(t *testing.T) {
	cache := newFakeCache()
	svc := usecases.NewDistanceService(cache, nil, 0)

	if _, err := svc.Between(context.Background(), domain.PointPair{}); err == nil {
		t.Fatal("expected validation error")
	}
	if cache.gets != 0 {
		t.Errorf("expected no cache lookups, got %d", cache.gets)
	}
}

func TestDistanceService_CacheWriteFailureIgnored(t *testing.T) {
	cache := newFakeCache()
	cache.setFn = func(key string, value []byte) error { return errors.New("valkey down") }
	svc := usecases.NewDistanceService(cache, nil, 0)

	if _, err := svc.Between(context.Background(), *moscowSpb()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
