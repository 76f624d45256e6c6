package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newGuardedEcho(store Store) *echo.Echo {
	e := echo.New()
	e.GET("/guarded", func(c echo.Context) error {
		userID, ok := UserID(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		token, ok := Token(c)
		if !ok || token == "" {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, map[string]uint{"user_id": userID})
	}, Middleware(store))
	return e
}

func TestMiddleware_RejectsMissingCookie(t *testing.T) {
	e := newGuardedEcho(NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestMiddleware_RejectsUnknownToken(t *testing.T) {
	e := newGuardedEcho(NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "never-issued"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestMiddleware_PassesResolvedUser(t *testing.T) {
	store := NewMemoryStore()
	e := newGuardedEcho(store)

	token, err := store.Issue(context.Background(), 42)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":42}`, rec.Body.String())
}
