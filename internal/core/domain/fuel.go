package domain

// FuelParams are the vehicle and price inputs shared by every fuel request.
type FuelParams struct {
	FuelPricePerLiter float64 `json:"fuelPricePerLiter"`
	// AverageSpeed is validated but does not enter the cost formula.
	AverageSpeed            float64 `json:"averageSpeed"`
	FuelConsumptionPer100Km float64 `json:"fuelConsumptionPer100Km"`
}

// FuelRequest is the closed set of fuel request shapes:
// DistanceFuelRequest and PointsFuelRequest.
type FuelRequest interface {
	Params() FuelParams
	isFuelRequest()
}

// DistanceFuelRequest estimates fuel cost for a known distance in kilometres.
type DistanceFuelRequest struct {
	FuelParams
	Distance float64 `json:"distance"`
}

// PointsFuelRequest estimates fuel cost between two coordinates.
type PointsFuelRequest struct {
	FuelParams
	PointsOnMap *PointPair `json:"pointsOnMap"`
}

func (r DistanceFuelRequest) Params() FuelParams { return r.FuelParams }
func (r PointsFuelRequest) Params() FuelParams   { return r.FuelParams }

func (DistanceFuelRequest) isFuelRequest() {}
func (PointsFuelRequest) isFuelRequest()   {}

// FuelResult is the response of both fuel calculations.
type FuelResult struct {
	TotalCost float64 `json:"totalCost"`
}

// CalculateFromDistance applies the trip cost formula:
// (distanceKm / 100) * consumptionPer100Km * pricePerLiter.
func CalculateFromDistance(distanceKm, consumptionPer100Km, pricePerLiter float64) float64 {
	litres := (distanceKm / 100) * consumptionPer100Km
	return litres * pricePerLiter
}

// CalculateFromPoints measures the pair and applies the trip cost formula.
func CalculateFromPoints(pair PointPair, consumptionPer100Km, pricePerLiter float64) float64 {
	return CalculateFromDistance(pair.DistanceKm(), consumptionPer100Km, pricePerLiter)
}

// TripDistanceKm returns the distance a fuel request covers.
// The request must have passed ValidateFuelRequest.
func TripDistanceKm(req FuelRequest) float64 {
	switch r := req.(type) {
	case DistanceFuelRequest:
		return r.Distance
	case PointsFuelRequest:
		return r.PointsOnMap.DistanceKm()
	}
	return 0
}

// CalculateFuel computes the trip cost for either request shape.
// The request must have passed ValidateFuelRequest.
func CalculateFuel(req FuelRequest) FuelResult {
	p := req.Params()
	switch r := req.(type) {
	case DistanceFuelRequest:
		return FuelResult{TotalCost: CalculateFromDistance(r.Distance, p.FuelConsumptionPer100Km, p.FuelPricePerLiter)}
	case PointsFuelRequest:
		return FuelResult{TotalCost: CalculateFromPoints(*r.PointsOnMap, p.FuelConsumptionPer100Km, p.FuelPricePerLiter)}
	}
	return FuelResult{}
}
