package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coolpotato/backend/internal/types"
)

type User struct {
	ID                uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Name              string    `gorm:"not null" json:"name"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone             *string   `gorm:"uniqueIndex" json:"phone,omitempty"`
	ProfilePicture    string    `gorm:"size:255" json:"profile_picture"`
	PasswordHash      string    `gorm:"not null" json:"-"`
	FastFoodFrequency string    `gorm:"size:20" json:"fast_food_frequency"`
	Lifestyle         string    `gorm:"size:255" json:"lifestyle"`
	// IsDiabetic is NULL until the user answers; see types.DietaryFlag.
	IsDiabetic *bool `json:"is_diabetic"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an id when the caller did not.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Profile returns the public view of the user.
func (u *User) Profile() *types.UserProfile {
	p := &types.UserProfile{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		ProfilePicture:    u.ProfilePicture,
		FastFoodFrequency: u.FastFoodFrequency,
		Lifestyle:         u.Lifestyle,
		IsDiabetic:        types.DietaryFlagFromPtr(u.IsDiabetic),
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	return p
}
