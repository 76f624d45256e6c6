package session

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "recipeshare/internal/errors"
)

// Context keys set by Middleware for downstream handlers.
const (
	ContextUserIDKey = "session_user_id"
	ContextTokenKey  = "session_token"
)

// Middleware resolves the session cookie against the store. Requests without
// a valid session are rejected with 401 before the handler runs; otherwise the
// bound user id and token are placed on the Echo context.
func Middleware(store Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, apierrors.ErrorResponse{Error: apierrors.ErrUnauthorized.Error()})
			}
			userID, ok, err := store.Resolve(c.Request().Context(), cookie.Value)
			if err != nil || !ok {
				return c.JSON(http.StatusUnauthorized, apierrors.ErrorResponse{Error: apierrors.ErrUnauthorized.Error()})
			}
			c.Set(ContextUserIDKey, userID)
			c.Set(ContextTokenKey, cookie.Value)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by Middleware.
func UserID(c echo.Context) (uint, bool) {
	userID, ok := c.Get(ContextUserIDKey).(uint)
	return userID, ok
}

// Token returns the session token set by Middleware.
func Token(c echo.Context) (string, bool) {
	token, ok := c.Get(ContextTokenKey).(string)
	return token, ok
}
