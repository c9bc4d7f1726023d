package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/middleware"
	"github.com/coolpotato/backend/internal/models"
	"github.com/coolpotato/backend/internal/service"
	"github.com/coolpotato/backend/internal/types"
)

type AuthHandler struct {
	authService    service.IAuthService
	profileService service.IProfileService
}

func NewAuthHandler(authService service.IAuthService, profileService service.IProfileService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/signin", h.SignIn)
		auth.PUT("/update-profile/:userId", requireAuth, h.UpdateProfile)
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req types.SignUpRequest
	if !bindJSON(c, &req, "Name, a valid email and a password of at least 6 characters are required") {
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse("User created successfully", user, token))
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req types.SignInRequest
	if !bindJSON(c, &req, "Email and password are required") {
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse("Signed in successfully", user, token))
}

// UpdateProfile only lets callers update their own profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	callerID, ok := currentUser(c)
	if !ok {
		return
	}
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil || targetID != callerID {
		middleware.WriteError(c, apperrors.Auth("Not allowed to update this profile"))
		return
	}

	var req types.UpdateProfileRequest
	if !bindJSON(c, &req, "Invalid profile update") {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), callerID, &req)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": profile})
}

func authResponse(message string, user *models.User, token string) types.AuthResponse {
	return types.AuthResponse{
		Message: message,
		Token:   token,
		UserID:  user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
	}
}
