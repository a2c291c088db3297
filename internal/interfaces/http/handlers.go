package http

import (
	"errors"
	stdhttp "net/http"
	"time"

	"github.com/labstack/echo/v4"

	"casting-agency/internal/application"
	"casting-agency/internal/domain"
)

func handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(stdhttp.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(stdhttp.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		return c.JSON(stdhttp.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

type MoviesHandler struct {
	service *application.MovieService
}

func NewMoviesHandler(service *application.MovieService) *MoviesHandler {
	return &MoviesHandler{service: service}
}

func (h *MoviesHandler) List(c echo.Context) error {
	movies, err := h.service.List(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stdhttp.StatusOK, movies)
}

func (h *MoviesHandler) Create(c echo.Context) error {
	var req struct {
		Title       string    `json:"title"`
		ReleaseDate time.Time `json:"release_date"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(stdhttp.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	movie, err := h.service.Create(c.Request().Context(), domain.Movie{Title: req.Title, ReleaseDate: req.ReleaseDate})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stdhttp.StatusCreated, movie)
}

func (h *MoviesHandler) Update(c echo.Context) error {
	var req domain.MovieUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(stdhttp.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	movie, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stdhttp.StatusOK, movie)
}

func (h *MoviesHandler) Delete(c echo.Context) error {
	movieID := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), movieID); err != nil {
		return handleError(c, err)
	}
	return c.JSON(stdhttp.StatusOK, map[string]string{"deleted": movieID})
}

type ActorsHandler struct {
	service *application.ActorService
}

func NewActorsHandler(service *application.ActorService) *ActorsHandler {
	return &ActorsHandler{service: service}
}

func (h *ActorsHandler) List(c echo.Context) error {
	actors, err := h.service.List(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stdhttp.StatusOK, actors)
}

func (h *ActorsHandler) Create(c echo.Context) error {
	var req struct {
		Name   string `json:"name"`
		Age    int    `json:"age"`
		Gender string `json:"gender"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(stdhttp.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	actor, err := h.service.Create(c.Request().Context(), domain.Actor{Name: req.Name, Age: req.Age, Gender: req.Gender})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stdhttp.StatusCreated, actor)
}

func (h *ActorsHandler) Update(c echo.Context) error {
	var req domain.ActorUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(stdhttp.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	actor, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stdhttp.StatusOK, actor)
}

func (h *ActorsHandler) Delete(c echo.Context) error {
	actorID := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), actorID); err != nil {
		return handleError(c, err)
	}
	return c.JSON(stdhttp.StatusOK, map[string]string{"deleted": actorID})
}
