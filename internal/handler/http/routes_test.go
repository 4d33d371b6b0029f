package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

// newRouter wires a full router with permissive auth and todo mocks, so
// tests exercise the middleware chain end to end.
func newRouter(t *testing.T) http.Handler {
	t.Helper()

	authSvc := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 1
			return u, nil
		},
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{UserID: 1, Username: "alice", IsActive: true}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("signed.jwt.token"), nil
		},
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return parsedToken(1, "alice", "user"), nil
		},
	}
	todoSvc := &mockTodoService{
		getAllFn: func(_ context.Context, _ int64) ([]models.Todo, error) {
			return []models.Todo{}, nil
		},
	}

	h := NewHandler(&service.Services{AuthService: authSvc, TodoService: todoSvc}, logger.Nop())
	return h.Init()
}

// ---- Routing ----

func TestRoutes_RegisterIsPublic(t *testing.T) {
	router := newRouter(t)

	body := `{"email": "a@b.c", "username": "alice", "password": "s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestRoutes_TodoRequiresAuth(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/todo/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_TodoWithBearerToken(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/todo/", nil)
	req.Header.Set("Authorization", "Bearer signed.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRoutes_TodoWithCookie(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/todo/", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "signed.jwt.token"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// TestRoutes_TraceIDHeaderIsSet verifies that every response carries the
// trace identifier assigned by the middleware chain.
func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

// TestRoutes_WrongMethodHidesRoute verifies that an unsupported method on a
// registered path yields 404 rather than 405.
func TestRoutes_WrongMethodHidesRoute(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/auth/register", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
