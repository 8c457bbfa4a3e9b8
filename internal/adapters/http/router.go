package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"github.com/gofiber/websocket/v2"

	"github.com/samirrijal/fuelcalc/internal/pkg/metrics"
)

const requestTimeout = 5 * time.Second

// SetupRoutes registers REST, GraphQL, docs and WebSocket routes.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(requestid.New())
	app.Use(RequestIDLogMiddleware())
	app.Use(AccessLogMiddleware())

	// Security headers + API version
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("X-API-Version", "1.0.0")
		return c.Next()
	})

	// Estimates depend on the request body only; never cache them.
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if c.Method() == fiber.MethodPost {
			c.Set(fiber.HeaderCacheControl, "no-store")
		}
		return err
	})

	app.Get("/v1/health", HealthHandler(deps))
	app.Get("/v1/ready", ReadyHandler(deps))

	byDistance := timeout.NewWithContext(FuelByDistanceHandler(deps), requestTimeout)
	byPoints := timeout.NewWithContext(FuelByPointsHandler(deps), requestTimeout)
	distance := timeout.NewWithContext(DistanceByPointsHandler(deps), requestTimeout)

	v1 := app.Group("/v1")
	v1.Post("/fuel/by-distance", byDistance)
	v1.Post("/fuel/by-points", byPoints)
	v1.Post("/distance/by-points", distance)

	// Legacy FuelCalculator paths
	legacy := map[string]fiber.Handler{
		"/api/FuelCalculator/ByDistance":       byDistance,
		"/api/FuelCalculator/ByPoints":         byPoints,
		"/api/FuelCalculator/DistanceByPoints": distance,
	}
	for _, d := range legacyRoutes {
		app.Post(d.Path, DeprecationMiddleware(d), legacy[d.Path])
	}

	app.Post("/graphql", GraphQLHandler(deps))

	if deps.DocsEnabled {
		SetupDocs(app)
	}

	// WebSocket relay needs NATS
	if deps.NATS != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		app.Get("/ws", websocket.New(WebSocketHandler(deps.NATS)))
	}
}
