package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/mock"

	"recipeshare/internal/auth"
	"recipeshare/internal/model"
	"recipeshare/internal/service"
	"recipeshare/internal/session"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockRecipeRepository is a mock implementation of repository.RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// testApp wires real services and routes over mock repositories and an
// in-memory session store, mirroring the production wiring in cmd/server.
type testApp struct {
	e          *echo.Echo
	userRepo   *MockUserRepository
	recipeRepo *MockRecipeRepository
	sessions   *session.MemoryStore
	hasher     auth.PasswordHasher
}

func newTestApp() *testApp {
	app := &testApp{
		userRepo:   new(MockUserRepository),
		recipeRepo: new(MockRecipeRepository),
		sessions:   session.NewMemoryStore(),
		hasher:     auth.NewBcryptHasherWithCost(4),
	}

	userService := service.NewUserService(app.userRepo, app.hasher, nil)
	recipeService := service.NewRecipeService(app.recipeRepo)

	authHandler := NewAuthHandler(userService, app.sessions)
	recipeHandler := NewRecipeHandler(recipeService)

	app.e = echo.New()
	app.e.Use(middleware.Recover())

	app.e.POST("/signup", authHandler.Signup)
	app.e.POST("/login", authHandler.Login)

	secured := app.e.Group("", session.Middleware(app.sessions))
	secured.GET("/check_session", authHandler.CheckSession)
	secured.DELETE("/logout", authHandler.Logout)
	secured.GET("/recipes", recipeHandler.List)
	secured.POST("/recipes", recipeHandler.Create)

	return app
}

func (app *testApp) request(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	app.e.ServeHTTP(rec, req)
	return rec
}

// sessionCookie extracts the session cookie from a response.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	return nil
}
