package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/open-dossier/archive/backend/internal/server/middleware"
	"github.com/open-dossier/archive/backend/pkg/cache"
	"github.com/open-dossier/archive/backend/pkg/common"
	"github.com/open-dossier/archive/backend/pkg/engine"
)

func GetEntityHandler(c echo.Context) error {
	type entityParams struct {
		EntityID int64 `param:"id" validate:"required"`
	}

	type entityResponse struct {
		Entity  *common.Entity       `json:"entity"`
		RedFlag *engine.RedFlagClass `json:"red_flag,omitempty"`
	}

	params := new(entityParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	key := cache.Key(c.Request().URL.Path, c.QueryParams())

	if payload, ok := app.Cache.Get(key); ok {
		c.Response().Header().Set("X-Cache", "HIT")
		return c.JSON(http.StatusOK, payload)
	}

	entity, err := app.Store.GetEntity(ctx, params.EntityID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if entity == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Entity not found"})
	}

	resp := entityResponse{Entity: entity}
	if entity.RedFlagRating != nil {
		// Ratings come from ingestion and are trusted to be in range;
		// an out-of-range value is a data defect, rendered unclassified.
		if class, err := engine.ClassifyRedFlag(int(*entity.RedFlagRating)); err == nil {
			resp.RedFlag = &class
		}
	}

	app.Cache.Set(key, resp, app.Config.EntityTTL)
	c.Response().Header().Set("X-Cache", "MISS")
	return c.JSON(http.StatusOK, resp)
}
