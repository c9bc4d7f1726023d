package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/models"
	"github.com/coolpotato/backend/internal/types"
)

// RatingService stores one rating per user and recipe.
type RatingService struct {
	db *gorm.DB
}

var _ IRatingService = (*RatingService)(nil)

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// Rate inserts or replaces the caller's rating in a single statement.
func (s *RatingService) Rate(ctx context.Context, userID uuid.UUID, recipeID string, value int) error {
	id, err := ParseRecipeID(recipeID)
	if err != nil {
		return err
	}
	if value < 1 || value > 5 {
		return apperrors.Validation("Rating must be between 1 and 5")
	}

	rating := models.Rating{
		UserID:    userID,
		RecipeID:  formatRecipeID(id),
		Rating:    value,
		UpdatedAt: time.Now(),
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(&rating).Error
	if err != nil {
		return apperrors.Internal("failed to save rating", err)
	}
	return nil
}

// Average returns {0, 0} for an unrated recipe.
func (s *RatingService) Average(ctx context.Context, recipeID string) (types.RatingSummary, error) {
	id, err := ParseRecipeID(recipeID)
	if err != nil {
		return types.RatingSummary{}, err
	}

	var row struct {
		Total int64
		Count int64
	}
	err = s.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(SUM(rating), 0) AS total, COUNT(*) AS count").
		Where("recipe_id = ?", formatRecipeID(id)).
		Scan(&row).Error
	if err != nil {
		return types.RatingSummary{}, apperrors.Internal("failed to aggregate ratings", err)
	}
	if row.Count == 0 {
		return types.RatingSummary{}, nil
	}
	return types.RatingSummary{
		Average: float64(row.Total) / float64(row.Count),
		Count:   row.Count,
	}, nil
}

func formatRecipeID(id int) string {
	return strconv.Itoa(id)
}
