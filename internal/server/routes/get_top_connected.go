package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/open-dossier/archive/backend/internal/server/middleware"
)

const defaultTopConnectedLimit = 10

func GetTopConnectedHandler(c echo.Context) error {
	type topConnectedParams struct {
		Limit      *int   `query:"limit"`
		EntityType string `query:"entity_type"`
	}

	params := new(topConnectedParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	limit := defaultTopConnectedLimit
	if params.Limit != nil {
		limit = *params.Limit
	}
	if limit < 1 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be at least 1"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	entityType := params.EntityType
	if entityType == "" {
		entityType = app.Config.DefaultRankEntityType
	}

	return respondCached(c, app.Config.AggregateTTL, func() (any, error) {
		return app.Engine.Ranker.TopConnected(ctx, limit, entityType)
	})
}
