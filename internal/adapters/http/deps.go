package http

import (
	"github.com/nats-io/nats.go"

	"github.com/samirrijal/fuelcalc/internal/adapters/valkey"
	"github.com/samirrijal/fuelcalc/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Fuel     *usecases.FuelService
	Distance *usecases.DistanceService
	NATS     *nats.Conn
	Cache    *valkey.Cache
	// DocsEnabled serves Swagger UI at /docs.
	DocsEnabled bool
	Version     string
}
