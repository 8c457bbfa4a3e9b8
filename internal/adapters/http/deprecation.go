package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DeprecatedRoute describes a legacy endpoint kept for old clients.
type DeprecatedRoute struct {
	Path       string    // Legacy path
	Successor  string    // Path that replaces it
	SunsetDate time.Time // Date when the legacy path will be removed
}

var legacySunset = time.Date(2027, time.June, 30, 0, 0, 0, 0, time.UTC)

// legacyRoutes are the paths of the first FuelCalculator API release.
var legacyRoutes = []DeprecatedRoute{
	{Path: "/api/FuelCalculator/ByDistance", Successor: "/v1/fuel/by-distance", SunsetDate: legacySunset},
	{Path: "/api/FuelCalculator/ByPoints", Successor: "/v1/fuel/by-points", SunsetDate: legacySunset},
	{Path: "/api/FuelCalculator/DistanceByPoints", Successor: "/v1/distance/by-points", SunsetDate: legacySunset},
}

// DeprecationMiddleware adds Deprecation, Sunset, Link and Warning headers for d.
func DeprecationMiddleware(d DeprecatedRoute) fiber.Handler {
	sunset := d.SunsetDate.UTC().Format(time.RFC1123)
	link := fmt.Sprintf(`<%s>; rel="successor-version"`, d.Successor)

	return func(c *fiber.Ctx) error {
		c.Set("Deprecation", "true")
		c.Set("Sunset", sunset)
		c.Set("Link", link)

		days := time.Until(d.SunsetDate).Hours() / 24
		if days < 0 {
			days = 0
		}
		c.Set("Warning", fmt.Sprintf(`299 - "Deprecated API, will sunset in %.0f days"`, days))

		return c.Next()
	}
}
