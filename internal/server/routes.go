package server

import (
	"github.com/labstack/echo/v4"

	"github.com/open-dossier/archive/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Entity routes
	apiRoutes.GET("/entities/:id", routes.GetEntityHandler)
	apiRoutes.GET("/entities/:id/relationships", routes.GetEntityRelationshipsHandler)
	apiRoutes.GET("/entities/:id/graph", routes.GetGraphSliceHandler)
	apiRoutes.GET("/entities/:id/confidence", routes.GetEntityConfidenceHandler)

	// Corpus analytics routes
	apiRoutes.GET("/analytics/top-connected", routes.GetTopConnectedHandler)
	apiRoutes.GET("/analytics/data-quality", routes.GetDataQualityHandler)

	// Red-flag classification route
	apiRoutes.GET("/red-flags/:rating", routes.GetRedFlagClassHandler)
}
