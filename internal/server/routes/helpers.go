package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/open-dossier/archive/backend/internal/server/middleware"
	"github.com/open-dossier/archive/backend/pkg/cache"
	"github.com/open-dossier/archive/backend/pkg/logger"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate accepts RFC3339 timestamps or bare dates. Empty input means
// the filter bound is open-ended.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q, expected RFC3339 or YYYY-MM-DD", value)
}

// respondCached serves the request through the response cache: a fresh
// entry is returned as-is, otherwise compute runs and its result is cached
// for ttl. Failed computations return 500 and never populate the cache.
// The X-Cache header reports hit/miss without touching the payload.
func respondCached(
	c echo.Context,
	ttl time.Duration,
	compute func() (any, error),
) error {
	app := c.(*middleware.AppContext).App
	key := cache.Key(c.Request().URL.Path, c.QueryParams())

	if payload, ok := app.Cache.Get(key); ok {
		c.Response().Header().Set("X-Cache", "HIT")
		return c.JSON(http.StatusOK, payload)
	}

	payload, err := compute()
	if err != nil {
		logger.Error("Computation failed", "path", c.Request().URL.Path, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	app.Cache.Set(key, payload, ttl)
	c.Response().Header().Set("X-Cache", "MISS")
	return c.JSON(http.StatusOK, payload)
}
