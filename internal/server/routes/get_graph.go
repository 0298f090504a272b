package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/open-dossier/archive/backend/internal/server/middleware"
	"github.com/open-dossier/archive/backend/pkg/common"
)

func GetGraphSliceHandler(c echo.Context) error {
	type graphParams struct {
		EntityID int64  `param:"id" validate:"required"`
		Depth    *int   `query:"depth"`
		DateFrom string `query:"date_from"`
		DateTo   string `query:"date_to"`
	}

	params := new(graphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	depth := 1
	if params.Depth != nil {
		depth = *params.Depth
	}
	if depth < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "depth must not be negative"})
	}

	dateFrom, err := parseDate(params.DateFrom)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	dateTo, err := parseDate(params.DateTo)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	return respondCached(c, app.Config.AggregateTTL, func() (any, error) {
		return app.Engine.Slicer.GraphSlice(ctx, params.EntityID, depth, common.RelationshipFilter{
			DateFrom: dateFrom,
			DateTo:   dateTo,
		})
	})
}
