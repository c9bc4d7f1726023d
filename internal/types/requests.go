package types

import "encoding/json"

// SignUpRequest represents the request body for registering a user
type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// SignInRequest represents the request body for signing in
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by sign up and sign in
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// RecipeByImageRequest carries a base64 encoded JPEG
type RecipeByImageRequest struct {
	Image string `json:"image" binding:"required"`
}

// AddFavoriteRequest represents the request body for favoriting a recipe
type AddFavoriteRequest struct {
	RecipeID RecipeRef `json:"recipeId" binding:"required"`
}

// RecipeRef is a recipe id sent either as a JSON string or as a JSON number,
// since the recipe API itself returns numeric ids.
type RecipeRef string

func (r *RecipeRef) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = RecipeRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = RecipeRef(n.String())
	return nil
}

// AddRatingRequest represents the request body for rating a recipe
type AddRatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// CreateNotificationRequest represents the request body for adding a notification
type CreateNotificationRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=2000"`
}

// RatingSummary is the aggregate rating of a recipe. Average is 0 when
// Count is 0.
type RatingSummary struct {
	Average float64 `json:"averageRating"`
	Count   int64   `json:"totalRatings"`
}
