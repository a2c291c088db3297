package http

import (
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"casting-agency/internal/infrastructure/auth"
)

// Guard turns a required permission into route middleware. The production
// guard is *auth.Gate; tests and AUTH_MODE=none substitute their own.
type Guard interface {
	Require(p auth.Permission) echo.MiddlewareFunc
}

type Middleware struct {
	XRay          echo.MiddlewareFunc
	RequestLogger echo.MiddlewareFunc
}

// NewRouter binds each verb and resource to exactly one required
// permission. The mapping is fixed at startup and never consulted from
// request input.
func NewRouter(movies *MoviesHandler, actors *ActorsHandler, guard Guard, m Middleware) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{stdhttp.MethodGet, stdhttp.MethodPost, stdhttp.MethodPatch, stdhttp.MethodDelete, stdhttp.MethodOptions},
	}))
	if m.XRay != nil {
		e.Use(m.XRay)
	}
	if m.RequestLogger != nil {
		e.Use(m.RequestLogger)
	}

	e.GET("/movies", movies.List, guard.Require(auth.PermGetMovies))
	e.POST("/movies", movies.Create, guard.Require(auth.PermPostMovies))
	e.PATCH("/movies/:id", movies.Update, guard.Require(auth.PermPatchMovies))
	e.DELETE("/movies/:id", movies.Delete, guard.Require(auth.PermDeleteMovies))

	e.GET("/actors", actors.List, guard.Require(auth.PermGetActors))
	e.POST("/actors", actors.Create, guard.Require(auth.PermPostActors))
	e.PATCH("/actors/:id", actors.Update, guard.Require(auth.PermPatchActors))
	e.DELETE("/actors/:id", actors.Delete, guard.Require(auth.PermDeleteActors))

	return e
}
