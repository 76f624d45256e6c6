package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apierrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
)

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	ListByOwner(ctx context.Context, userID uint) ([]model.Recipe, error)
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository builds a GORM-backed repository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create inserts the recipe and loads its owner. A foreign-key violation means
// the owning user does not exist; the write rolls back and is reported as a
// validation failure.
func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apierrors.ErrRecipeInvalid
		}
		return err
	}
	return r.db.WithContext(ctx).Preload("User").First(recipe, recipe.ID).Error
}

func (r *recipeRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
