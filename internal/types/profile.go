package types

import (
	"github.com/google/uuid"
)

// Fast food frequency answers accepted on profile update.
var FastFoodFrequencies = []string{"Occasionally", "Frequently", "Rarely", "Never"}

// UserProfile is the public view of a user
type UserProfile struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone,omitempty"`
	ProfilePicture    string      `json:"profilePicture,omitempty"`
	FastFoodFrequency string      `json:"fastFoodFrequency,omitempty"`
	Lifestyle         string      `json:"lifestyle,omitempty"`
	IsDiabetic        DietaryFlag `json:"isDiabetic"`
}

// UpdateProfileRequest represents a request to update a user's profile.
// Nil fields are left untouched.
type UpdateProfileRequest struct {
	FastFoodFrequency *string `json:"fastFoodFrequency,omitempty" binding:"omitempty,oneof=Occasionally Frequently Rarely Never"`
	Lifestyle         *string `json:"lifestyle,omitempty" binding:"omitempty,max=255"`
	IsDiabetic        *bool   `json:"isDiabetic,omitempty"`
}
