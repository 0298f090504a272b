package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/open-dossier/archive/backend/internal/server/middleware"
)

// The auditor's junk and orphan counts are lossy heuristics: advisory
// signal for a quality dashboard, never ground truth for deletion.
func GetDataQualityHandler(c echo.Context) error {
	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	return respondCached(c, app.Config.AggregateTTL, func() (any, error) {
		return app.Engine.Auditor.DataQualityMetrics(ctx)
	})
}
