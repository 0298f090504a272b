package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/open-dossier/archive/backend/internal/server/middleware"
)

func GetEntityConfidenceHandler(c echo.Context) error {
	type confidenceParams struct {
		EntityID int64 `param:"id" validate:"required"`
	}

	params := new(confidenceParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	return respondCached(c, app.Config.EntityTTL, func() (any, error) {
		return app.Engine.Scorer.EntityConfidence(ctx, params.EntityID)
	})
}
