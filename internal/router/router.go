package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"recipeshare/internal/handler"
	"recipeshare/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions session.Store,
	authHandler *handler.AuthHandler,
	recipeHandler *handler.RecipeHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public routes
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// Session-guarded routes
	secured := e.Group("", session.Middleware(sessions))
	secured.GET("/check_session", authHandler.CheckSession)
	secured.DELETE("/logout", authHandler.Logout)
	secured.GET("/recipes", recipeHandler.List)
	secured.POST("/recipes", recipeHandler.Create)
}
