package service

import (
	"context"
	"unicode/utf8"

	apierrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

const minInstructionsLength = 50

// RecipeService exposes owner-scoped recipe operations.
type RecipeService interface {
	// Create validates title and instructions before any write, then persists
	// the recipe for ownerID. The returned recipe has its owner loaded.
	Create(ctx context.Context, ownerID uint, title, instructions string, minutesToComplete *int) (*model.Recipe, error)
	// ListByOwner returns the recipes owned by userID, owners loaded.
	ListByOwner(ctx context.Context, userID uint) ([]model.Recipe, error)
}

type recipeService struct {
	repo repository.RecipeRepository
}

// NewRecipeService builds a RecipeService.
func NewRecipeService(repo repository.RecipeRepository) RecipeService {
	return &recipeService{repo: repo}
}

func (s *recipeService) Create(ctx context.Context, ownerID uint, title, instructions string, minutesToComplete *int) (*model.Recipe, error) {
	if title == "" {
		return nil, apierrors.ErrTitleRequired
	}
	if utf8.RuneCountInString(instructions) < minInstructionsLength {
		return nil, apierrors.ErrInstructionsInvalid
	}

	recipe := &model.Recipe{
		Title:             title,
		Instructions:      instructions,
		MinutesToComplete: minutesToComplete,
		UserID:            ownerID,
	}
	if err := s.repo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) ListByOwner(ctx context.Context, userID uint) ([]model.Recipe, error) {
	return s.repo.ListByOwner(ctx, userID)
}
