package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/database"
	"github.com/coolpotato/backend/internal/models"
	"github.com/coolpotato/backend/internal/platform/spoonacular"
)

// FavoriteService stores favorites and resolves them against the recipe API.
type FavoriteService struct {
	db          *gorm.DB
	recipes     RecipeAPI
	concurrency int
}

var _ IFavoriteService = (*FavoriteService)(nil)

func NewFavoriteService(db *gorm.DB, recipes RecipeAPI, concurrency int) *FavoriteService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &FavoriteService{db: db, recipes: recipes, concurrency: concurrency}
}

// Add relies on the (user_id, recipe_id) unique index; there is no
// read-before-write.
func (s *FavoriteService) Add(ctx context.Context, userID uuid.UUID, recipeID string) error {
	id, err := ParseRecipeID(recipeID)
	if err != nil {
		return err
	}
	fav := models.FavoriteRecipe{UserID: userID, RecipeID: formatRecipeID(id)}
	if err := s.db.WithContext(ctx).Create(&fav).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Conflict("Recipe already in favorites")
		}
		return apperrors.Internal("failed to add favorite", err)
	}
	return nil
}

// Remove is idempotent.
func (s *FavoriteService) Remove(ctx context.Context, userID uuid.UUID, recipeID string) error {
	id, err := ParseRecipeID(recipeID)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, formatRecipeID(id)).
		Delete(&models.FavoriteRecipe{}).Error
	if err != nil {
		return apperrors.Internal("failed to remove favorite", err)
	}
	return nil
}

// List fetches the details of every favorite concurrently, in the order the
// favorites were added. It is all-or-nothing: the first failed fetch cancels
// the rest and fails the call.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]json.RawMessage, error) {
	var favs []models.FavoriteRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&favs).Error
	if err != nil {
		return nil, apperrors.Internal("failed to list favorites", err)
	}

	details := make([]json.RawMessage, len(favs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, fav := range favs {
		i, fav := i, fav
		g.Go(func() error {
			id, err := ParseRecipeID(fav.RecipeID)
			if err != nil {
				return apperrors.Internal("stored favorite has invalid recipe id", err)
			}
			body, err := s.recipes.Do(gctx, spoonacular.Information(id))
			if err != nil {
				return err
			}
			details[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		favoriteFetches.WithLabelValues(outcomeError).Inc()
		if apperrors.KindOf(err) == apperrors.KindInternal {
			return nil, err
		}
		if apperrors.KindOf(err) != apperrors.KindUpstreamRecipeAPI {
			err = apperrors.UpstreamRecipeAPI(err)
		}
		return nil, err
	}
	favoriteFetches.WithLabelValues(outcomeOK).Inc()
	return details, nil
}

func (s *FavoriteService) Count(ctx context.Context, recipeID string) (int64, error) {
	id, err := ParseRecipeID(recipeID)
	if err != nil {
		return 0, err
	}
	var count int64
	err = s.db.WithContext(ctx).
		Model(&models.FavoriteRecipe{}).
		Where("recipe_id = ?", formatRecipeID(id)).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Internal("failed to count favorites", err)
	}
	return count, nil
}
