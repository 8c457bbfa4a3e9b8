package domain

import "github.com/samirrijal/fuelcalc/internal/pkg/geospatial"

// GeoPoint represents a geographic coordinate in degrees (WGS 84).
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PointPair holds the two ends of a trip. A point is nil when the request omitted it.
type PointPair struct {
	FirstPoint  *GeoPoint `json:"firstPoint"`
	SecondPoint *GeoPoint `json:"secondPoint"`
}

// DistanceResult is the response of a distance-by-points calculation.
type DistanceResult struct {
	DistanceKm float64 `json:"distance"`
}

// HaversineDistanceKm returns the great-circle distance between p1 and p2 in kilometres.
// Range checks are the caller's job; any finite input gives a finite result.
func HaversineDistanceKm(p1, p2 GeoPoint) float64 {
	return geospatial.HaversineKm(p1.Latitude, p1.Longitude, p2.Latitude, p2.Longitude)
}

// DistanceKm measures the pair. Only call it on a pair that passed ValidatePointPair.
func (p PointPair) DistanceKm() float64 {
	return HaversineDistanceKm(*p.FirstPoint, *p.SecondPoint)
}

// CalculateDistance is the distance-by-points operation.
func CalculateDistance(pair PointPair) DistanceResult {
	return DistanceResult{DistanceKm: pair.DistanceKm()}
}
