package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"recipeshare/internal/auth"
	"recipeshare/internal/config"
	"recipeshare/internal/db"
	apierrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

type seedUser struct {
	Username string
	Password string
	ImageURL string
	Bio      string
	Recipes  []seedRecipe
}

type seedRecipe struct {
	Title             string
	Instructions      string
	MinutesToComplete int
}

var seedUsers = []seedUser{
	{
		Username: "marta",
		Password: "caramelized-onions",
		ImageURL: "https://example.com/avatars/marta.png",
		Bio:      "Weeknight cook, weekend baker.",
		Recipes: []seedRecipe{
			{
				Title:             "Shakshuka",
				Instructions:      "Soften onions and peppers in olive oil, add garlic and spices, simmer crushed tomatoes until thick, then poach the eggs directly in the sauce and finish with parsley.",
				MinutesToComplete: 35,
			},
			{
				Title:             "Overnight Oats",
				Instructions:      "Combine rolled oats with milk and yogurt in a jar, stir in maple syrup and a pinch of salt, refrigerate overnight, and top with fruit before serving.",
				MinutesToComplete: 10,
			},
		},
	},
	{
		Username: "devon",
		Password: "stock-not-broth",
		ImageURL: "https://example.com/avatars/devon.png",
		Bio:      "Soup enthusiast. Will ferment anything.",
		Recipes: []seedRecipe{
			{
				Title:             "Miso Ramen",
				Instructions:      "Simmer a rich stock for several hours, whisk in miso paste off the heat, cook noodles separately, and assemble with soft eggs, scallions, and chili oil to taste.",
				MinutesToComplete: 180,
			},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Recipe{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)
	hasher := auth.NewBcryptHasherWithCost(cfg.BcryptCost)

	ctx := context.Background()
	created, skipped := 0, 0
	for _, su := range seedUsers {
		user, err := seedOne(ctx, userRepo, recipeRepo, hasher, su)
		if err != nil {
			if errors.Is(err, apierrors.ErrUsernameTaken) {
				log.Printf("User %q already exists, skipping", su.Username)
				skipped++
				continue
			}
			log.Fatalf("Failed to seed user %q: %v", su.Username, err)
		}
		log.Printf("Seeded user %q (id=%d) with %d recipes", user.Username, user.ID, len(su.Recipes))
		created++
	}
	log.Printf("Seed complete: %d users created, %d skipped", created, skipped)
}

func seedOne(
	ctx context.Context,
	userRepo repository.UserRepository,
	recipeRepo repository.RecipeRepository,
	hasher auth.PasswordHasher,
	su seedUser,
) (*model.User, error) {
	if existing, err := userRepo.FindByUsername(ctx, su.Username); err == nil && existing != nil {
		return nil, apierrors.ErrUsernameTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	digest, err := hasher.Hash(su.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     su.Username,
		PasswordHash: digest,
		ImageURL:     su.ImageURL,
		Bio:          su.Bio,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	for _, sr := range su.Recipes {
		minutes := sr.MinutesToComplete
		recipe := &model.Recipe{
			Title:             sr.Title,
			Instructions:      sr.Instructions,
			MinutesToComplete: &minutes,
			UserID:            user.ID,
		}
		if err := recipeRepo.Create(ctx, recipe); err != nil {
			return nil, err
		}
	}
	return user, nil
}
