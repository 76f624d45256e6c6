package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apierrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
	"recipeshare/internal/service"
	"recipeshare/internal/session"
)

// AuthHandler handles signup, login, logout, and session checks.
type AuthHandler struct {
	users    service.UserService
	sessions session.Store
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users service.UserService, sessions session.Store) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// SignupRequest represents a signup request body.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

// LoginRequest represents a login request body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user. It never carries the password
// hash.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

func newUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		ImageURL: user.ImageURL,
		Bio:      user.Bio,
	}
}

// Signup registers a new user and starts a session for it.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.users.Signup(c.Request().Context(), req.Username, req.Password, req.ImageURL, req.Bio)
	if err != nil {
		if apierrors.IsValidation(err) {
			return c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationResponse(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, apierrors.NewValidationResponse("An error occurred: "+err.Error()))
	}

	token, err := h.sessions.Issue(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apierrors.NewValidationResponse("An error occurred: "+err.Error()))
	}
	setSessionCookie(c, token)

	return c.JSON(http.StatusCreated, newUserResponse(user))
}

// Login authenticates a user by username and password and starts a session.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.users.VerifyCredentials(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apierrors.ErrorResponse{Error: apierrors.ErrInvalidCredentials.Error()})
	}

	token, err := h.sessions.Issue(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apierrors.ErrorResponse{Error: err.Error()})
	}
	setSessionCookie(c, token)

	return c.JSON(http.StatusOK, newUserResponse(user))
}

// Logout revokes the current session. The session middleware has already
// rejected unauthenticated requests with 401.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := session.Token(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apierrors.ErrorResponse{Error: apierrors.ErrUnauthorized.Error()})
	}
	if err := h.sessions.Revoke(c.Request().Context(), token); err != nil {
		return c.JSON(http.StatusInternalServerError, apierrors.ErrorResponse{Error: err.Error()})
	}
	clearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// CheckSession returns the current user's public profile. A session bound to a
// user record that no longer exists yields 404.
func (h *AuthHandler) CheckSession(c echo.Context) error {
	userID, ok := session.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apierrors.ErrorResponse{Error: apierrors.ErrUnauthorized.Error()})
	}

	user, err := h.users.FindByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, apierrors.ErrorResponse{Error: apierrors.ErrUserNotFound.Error()})
		}
		return c.JSON(http.StatusInternalServerError, apierrors.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
