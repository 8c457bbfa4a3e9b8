package domain

import (
	"fmt"
	"strings"
)

// ValidationFailure is one violated input rule.
type ValidationFailure struct {
	Message string `json:"message"`
}

// ValidationError carries every failure found for a request, in rule order.
type ValidationError struct {
	Failures []ValidationFailure
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), " ")
}

// Messages returns the failure messages in order.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Message
	}
	return msgs
}

// ValidatePointPair checks both points and reports every violation.
// An empty result means the pair can be measured.
func ValidatePointPair(pair PointPair) []ValidationFailure {
	var failures []ValidationFailure
	failures = checkPoint(failures, pair.FirstPoint, "FirstPoint")
	failures = checkPoint(failures, pair.SecondPoint, "SecondPoint")

	if pair.FirstPoint != nil && pair.SecondPoint != nil &&
		pair.FirstPoint.Latitude == pair.SecondPoint.Latitude &&
		pair.FirstPoint.Longitude == pair.SecondPoint.Longitude {
		failures = append(failures, ValidationFailure{Message: "FirstPoint and SecondPoint cannot be the same."})
	}
	return failures
}

// ValidateDistanceFuelRequest checks distance, consumption, price and speed.
func ValidateDistanceFuelRequest(r DistanceFuelRequest) []ValidationFailure {
	var failures []ValidationFailure
	failures = checkPositive(failures, r.Distance, "Distance")
	return checkFuelParams(failures, r.FuelParams)
}

// ValidatePointsFuelRequest checks the embedded pair first, then consumption, price and speed.
// A missing pair is reported as two missing points.
func ValidatePointsFuelRequest(r PointsFuelRequest) []ValidationFailure {
	var pair PointPair
	if r.PointsOnMap != nil {
		pair = *r.PointsOnMap
	}
	failures := ValidatePointPair(pair)
	return checkFuelParams(failures, r.FuelParams)
}

// ValidateFuelRequest dispatches on the request shape.
func ValidateFuelRequest(req FuelRequest) []ValidationFailure {
	switch r := req.(type) {
	case DistanceFuelRequest:
		return ValidateDistanceFuelRequest(r)
	case PointsFuelRequest:
		return ValidatePointsFuelRequest(r)
	}
	return []ValidationFailure{{Message: fmt.Sprintf("Unsupported fuel request %T.", req)}}
}

func checkPoint(failures []ValidationFailure, p *GeoPoint, name string) []ValidationFailure {
	if p == nil {
		return append(failures, ValidationFailure{Message: name + " cannot be null."})
	}
	if !IsValidLatitude(p.Latitude) {
		failures = append(failures, ValidationFailure{Message: "Latitude of " + name + " must be between -90 and 90."})
	}
	if !IsValidLongitude(p.Longitude) {
		failures = append(failures, ValidationFailure{Message: "Longitude of " + name + " must be between -180 and 180."})
	}
	return failures
}

func checkFuelParams(failures []ValidationFailure, p FuelParams) []ValidationFailure {
	failures = checkPositive(failures, p.FuelConsumptionPer100Km, "FuelConsumptionPer100Km")
	failures = checkPositive(failures, p.FuelPricePerLiter, "FuelPricePerLiter")
	return checkPositive(failures, p.AverageSpeed, "AverageSpeed")
}

func checkPositive(failures []ValidationFailure, v float64, field string) []ValidationFailure {
	if v <= 0 {
		failures = append(failures, ValidationFailure{Message: field + " must be greater than 0."})
	}
	return failures
}

// IsValidLatitude reports whether lat lies in [-90, 90].
func IsValidLatitude(lat float64) bool { return lat >= -90 && lat <= 90 }

// IsValidLongitude reports whether lon lies in [-180, 180].
func IsValidLongitude(lon float64) bool { return lon >= -180 && lon <= 180 }
