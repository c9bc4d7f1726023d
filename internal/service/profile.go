package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/models"
	"github.com/coolpotato/backend/internal/types"
)

var ErrUserNotFound = apperrors.NotFound("User not found")

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// DietaryFlag reads only the is_diabetic column of the user.
func (s *ProfileService) DietaryFlag(ctx context.Context, userID uuid.UUID) (types.DietaryFlag, error) {
	var row struct {
		IsDiabetic *bool
	}
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Select("is_diabetic").
		Where("id = ?", userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.DietaryUnset, ErrUserNotFound
	}
	if err != nil {
		return types.DietaryUnset, apperrors.Internal("failed to read dietary profile", err)
	}
	return types.DietaryFlagFromPtr(row.IsDiabetic), nil
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	user, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

// UpdateProfile writes the provided fields and leaves the rest untouched.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.UserProfile, error) {
	user, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FastFoodFrequency != nil {
		if !validFrequency(*req.FastFoodFrequency) {
			return nil, apperrors.Validation("Invalid fastFoodFrequency value")
		}
		updates["fast_food_frequency"] = *req.FastFoodFrequency
	}
	if req.Lifestyle != nil {
		updates["lifestyle"] = *req.Lifestyle
	}
	if req.IsDiabetic != nil {
		updates["is_diabetic"] = *req.IsDiabetic
	}
	if len(updates) == 0 {
		return user.Profile(), nil
	}

	if err := s.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
		return nil, apperrors.Internal("failed to update profile", err)
	}
	return s.GetProfile(ctx, userID)
}

func (s *ProfileService) find(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.Internal("failed to load user", err)
	}
	return &user, nil
}

func validFrequency(v string) bool {
	for _, f := range types.FastFoodFrequencies {
		if f == v {
			return true
		}
	}
	return false
}
