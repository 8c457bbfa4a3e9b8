package domain

import "time"

// EstimateKind names the calculation that produced an estimate.
type EstimateKind string

const (
	EstimateFuelByDistance   EstimateKind = "fuel_by_distance"
	EstimateFuelByPoints     EstimateKind = "fuel_by_points"
	EstimateDistanceByPoints EstimateKind = "distance_by_points"
)

// EstimateEvent is published after a successful calculation.
type EstimateEvent struct {
	Kind       EstimateKind `json:"kind"`
	DistanceKm float64      `json:"distance_km"`
	TotalCost  *float64     `json:"total_cost,omitempty"`
	ComputedAt time.Time    `json:"computed_at"`
}
