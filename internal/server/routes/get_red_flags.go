package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/open-dossier/archive/backend/pkg/engine"
)

// Classification is a pure lookup; it is served uncached.
func GetRedFlagClassHandler(c echo.Context) error {
	type redFlagParams struct {
		Rating *int `param:"rating" validate:"required"`
	}

	params := new(redFlagParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	class, err := engine.ClassifyRedFlag(*params.Rating)
	if errors.Is(err, engine.ErrInvalidRating) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	c.Response().Header().Set("X-Cache", "BYPASS")
	return c.JSON(http.StatusOK, class)
}
