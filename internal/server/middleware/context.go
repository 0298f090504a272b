package middleware

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/open-dossier/archive/backend/internal/config"
	"github.com/open-dossier/archive/backend/pkg/cache"
	"github.com/open-dossier/archive/backend/pkg/engine"
	"github.com/open-dossier/archive/backend/pkg/store/base"
)

// App holds the process-wide dependencies every handler needs. It is
// constructed once at startup and injected through the request context;
// there is no package-level mutable state.
type App struct {
	DBConn *pgxpool.Pool
	Store  base.ArchiveStore
	Engine *engine.Engine
	Cache  *cache.Cache
	Config *config.Config
}

// AppContext wraps the echo context with the injected application state.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware wraps every request context with the shared App.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app})
		}
	}
}
