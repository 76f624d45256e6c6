package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
	"recipeshare/internal/service"
	"recipeshare/internal/session"
)

// RecipeHandler handles owner-scoped recipe endpoints.
type RecipeHandler struct {
	recipes service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipes service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// CreateRecipeRequest represents a recipe creation request body.
type CreateRecipeRequest struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

// RecipeResponse is a recipe with its owner's public fields embedded.
type RecipeResponse struct {
	Title             string       `json:"title"`
	Instructions      string       `json:"instructions"`
	MinutesToComplete *int         `json:"minutes_to_complete"`
	User              UserResponse `json:"user"`
}

func newRecipeResponse(recipe *model.Recipe) RecipeResponse {
	return RecipeResponse{
		Title:             recipe.Title,
		Instructions:      recipe.Instructions,
		MinutesToComplete: recipe.MinutesToComplete,
		User:              newUserResponse(&recipe.User),
	}
}

// List returns the current user's recipes with embedded owner fields.
func (h *RecipeHandler) List(c echo.Context) error {
	userID, ok := session.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apierrors.ErrorResponse{Error: apierrors.ErrUnauthorized.Error()})
	}

	recipes, err := h.recipes.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apierrors.NewValidationResponse(err.Error()))
	}

	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, newRecipeResponse(&recipes[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Create validates and persists a recipe owned by the current user.
func (h *RecipeHandler) Create(c echo.Context) error {
	userID, ok := session.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apierrors.ErrorResponse{Error: apierrors.ErrUnauthorized.Error()})
	}

	var req CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	recipe, err := h.recipes.Create(c.Request().Context(), userID, req.Title, req.Instructions, req.MinutesToComplete)
	if err != nil {
		if apierrors.IsValidation(err) {
			return c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationResponse(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, apierrors.NewValidationResponse(err.Error()))
	}

	return c.JSON(http.StatusCreated, newRecipeResponse(recipe))
}
