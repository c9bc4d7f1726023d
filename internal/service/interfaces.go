package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/coolpotato/backend/internal/models"
	"github.com/coolpotato/backend/internal/platform/spoonacular"
	"github.com/coolpotato/backend/internal/types"
)

// IngredientIdentifier turns a base64 JPEG into the vision model's raw
// comma separated answer.
type IngredientIdentifier interface {
	IdentifyIngredients(ctx context.Context, base64Image string) (string, error)
}

// RecipeAPI executes a built query against the recipe provider.
type RecipeAPI interface {
	Do(ctx context.Context, q spoonacular.Query) (json.RawMessage, error)
}

// DietaryLookup reads the diabetic flag of a user.
type DietaryLookup interface {
	DietaryFlag(ctx context.Context, userID uuid.UUID) (types.DietaryFlag, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(userID uuid.UUID) (string, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	DietaryLookup
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.UserProfile, error)
}

// IRecipeService defines the recipe discovery entry points
type IRecipeService interface {
	ProcessImage(ctx context.Context, userID uuid.UUID, base64Image string) (json.RawMessage, error)
	SearchByName(ctx context.Context, userID uuid.UUID, name string) (json.RawMessage, error)
	SearchByIngredients(ctx context.Context, userID uuid.UUID, csv string) (json.RawMessage, error)
	Featured(ctx context.Context, userID uuid.UUID) (json.RawMessage, error)
	Popular(ctx context.Context, userID uuid.UUID) (json.RawMessage, error)
	RecipeByID(ctx context.Context, recipeID string) (json.RawMessage, error)
}

// IFavoriteService defines the interface for favorite operations
type IFavoriteService interface {
	Add(ctx context.Context, userID uuid.UUID, recipeID string) error
	Remove(ctx context.Context, userID uuid.UUID, recipeID string) error
	List(ctx context.Context, userID uuid.UUID) ([]json.RawMessage, error)
	Count(ctx context.Context, recipeID string) (int64, error)
}

// IRatingService defines the interface for rating operations
type IRatingService interface {
	Rate(ctx context.Context, userID uuid.UUID, recipeID string, value int) error
	Average(ctx context.Context, recipeID string) (types.RatingSummary, error)
}

// INotificationService defines the interface for notification operations
type INotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	Create(ctx context.Context, title, message string) (*models.Notification, error)
}
