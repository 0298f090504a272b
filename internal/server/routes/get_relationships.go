package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/open-dossier/archive/backend/internal/server/middleware"
	"github.com/open-dossier/archive/backend/pkg/common"
)

func GetEntityRelationshipsHandler(c echo.Context) error {
	type relationshipsParams struct {
		EntityID      int64    `param:"id" validate:"required"`
		MinWeight     *float64 `query:"min_weight"`
		MinConfidence *float64 `query:"min_confidence"`
		DateFrom      string   `query:"date_from"`
		DateTo        string   `query:"date_to"`
	}

	type relationshipsResponse struct {
		Relationships []common.Relationship `json:"relationships"`
	}

	params := new(relationshipsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
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

	return respondCached(c, app.Config.EntityTTL, func() (any, error) {
		relationships, err := app.Engine.Aggregator.Relationships(ctx, params.EntityID, common.RelationshipFilter{
			MinWeight:     params.MinWeight,
			MinConfidence: params.MinConfidence,
			DateFrom:      dateFrom,
			DateTo:        dateTo,
		})
		if err != nil {
			return nil, err
		}
		return relationshipsResponse{Relationships: relationships}, nil
	})
}
