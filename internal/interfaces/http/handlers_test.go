package http

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"casting-agency/internal/application"
	"casting-agency/internal/domain"
	"casting-agency/internal/infrastructure/auth"
)

type movieRepoMock struct{ mock.Mock }

func (m *movieRepoMock) Create(ctx context.Context, movie domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *movieRepoMock) Update(ctx context.Context, movie domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *movieRepoMock) GetByID(ctx context.Context, movieID string) (domain.Movie, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(domain.Movie), args.Error(1)
}

func (m *movieRepoMock) List(ctx context.Context) ([]domain.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Movie), args.Error(1)
}

func (m *movieRepoMock) Delete(ctx context.Context, movieID string) error {
	args := m.Called(ctx, movieID)
	return args.Error(0)
}

type actorRepoMock struct{ mock.Mock }

func (m *actorRepoMock) Create(ctx context.Context, actor domain.Actor) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

func (m *actorRepoMock) Update(ctx context.Context, actor domain.Actor) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

func (m *actorRepoMock) GetByID(ctx context.Context, actorID string) (domain.Actor, error) {
	args := m.Called(ctx, actorID)
	return args.Get(0).(domain.Actor), args.Error(1)
}

func (m *actorRepoMock) List(ctx context.Context) ([]domain.Actor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Actor), args.Error(1)
}

func (m *actorRepoMock) Delete(ctx context.Context, actorID string) error {
	args := m.Called(ctx, actorID)
	return args.Error(0)
}

type openGuard struct{}

func (openGuard) Require(auth.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return next
	}
}

func newTestRouter(movies *movieRepoMock, actors *actorRepoMock, guard Guard) *echo.Echo {
	return NewRouter(
		NewMoviesHandler(application.NewMovieService(movies)),
		NewActorsHandler(application.NewActorService(actors)),
		guard,
		Middleware{},
	)
}

func TestListMovies(t *testing.T) {
	movies := new(movieRepoMock)
	actors := new(actorRepoMock)
	movies.On("List", mock.Anything).Return([]domain.Movie{{ID: "m-1", Title: "Arrival"}}, nil)
	e := newTestRouter(movies, actors, openGuard{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/movies", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var got []domain.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "Arrival", got[0].Title)
}

func TestCreateMovie(t *testing.T) {
	movies := new(movieRepoMock)
	actors := new(actorRepoMock)
	movies.On("Create", mock.Anything, mock.MatchedBy(func(m domain.Movie) bool {
		return m.Title == "Dune" && m.ID != ""
	})).Return(nil)
	e := newTestRouter(movies, actors, openGuard{})

	body := `{"title":"Dune","release_date":"2021-10-22T00:00:00Z"}`
	req := httptest.NewRequest(stdhttp.MethodPost, "/movies", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	movies.AssertExpectations(t)
}

func TestCreateMovie_MissingFields(t *testing.T) {
	movies := new(movieRepoMock)
	actors := new(actorRepoMock)
	e := newTestRouter(movies, actors, openGuard{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/movies", strings.NewReader(`{"title":"No Date"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	movies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPatchActor_NotFound(t *testing.T) {
	movies := new(movieRepoMock)
	actors := new(actorRepoMock)
	actors.On("GetByID", mock.Anything, "missing").Return(domain.Actor{}, domain.ErrNotFound)
	e := newTestRouter(movies, actors, openGuard{})

	req := httptest.NewRequest(stdhttp.MethodPatch, "/actors/missing", strings.NewReader(`{"age":30}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
}

func TestDeleteActor(t *testing.T) {
	movies := new(movieRepoMock)
	actors := new(actorRepoMock)
	actors.On("Delete", mock.Anything, "a-1").Return(nil)
	e := newTestRouter(movies, actors, openGuard{})

	req := httptest.NewRequest(stdhttp.MethodDelete, "/actors/a-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted":"a-1"`)
	actors.AssertExpectations(t)
}

// Gated routing: the store must never be touched when the gate denies.
func TestRouter_DeniedRequestNeverReachesStore(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	gate := auth.NewGateWithKeys(staticKeys{key: &key.PublicKey}, "https://casting.test/", "casting-agency")

	movies := new(movieRepoMock)
	actors := new(actorRepoMock)
	e := newTestRouter(movies, actors, gate)

	// token grants reads only
	token := signTestToken(t, key, []string{"get:movies", "get:actors"})
	req := httptest.NewRequest(stdhttp.MethodPost, "/movies", strings.NewReader(`{"title":"Dune","release_date":"2021-10-22T00:00:00Z"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, stdhttp.StatusForbidden, rec.Code)
	movies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	// no credential at all
	req = httptest.NewRequest(stdhttp.MethodGet, "/movies", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	movies.AssertNotCalled(t, "List", mock.Anything)
}

func TestRouter_AllowedRequestReachesStore(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	gate := auth.NewGateWithKeys(staticKeys{key: &key.PublicKey}, "https://casting.test/", "casting-agency")

	movies := new(movieRepoMock)
	actors := new(actorRepoMock)
	movies.On("List", mock.Anything).Return([]domain.Movie{}, nil)
	e := newTestRouter(movies, actors, gate)

	token := signTestToken(t, key, []string{"get:movies"})
	req := httptest.NewRequest(stdhttp.MethodGet, "/movies", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	movies.AssertExpectations(t)
}

type staticKeys struct{ key *rsa.PublicKey }

func (s staticKeys) KeyForKid(string) (*rsa.PublicKey, error) { return s.key, nil }

func signTestToken(t *testing.T, key *rsa.PrivateKey, permissions []string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":         "https://casting.test/",
		"aud":         "casting-agency",
		"sub":         "user-1",
		"exp":         time.Now().Add(time.Hour).Unix(),
		"permissions": permissions,
	})
	token.Header["kid"] = "test-key"
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}
