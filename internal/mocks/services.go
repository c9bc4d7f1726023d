package mocks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/coolpotato/backend/internal/models"
	"github.com/coolpotato/backend/internal/types"
)

// MockAuthService is a mock implementation of the auth service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

func (m *MockAuthService) GenerateToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

// MockRecipeService is a mock implementation of the recipe discovery service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) raw(args mock.Arguments) (json.RawMessage, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockRecipeService) ProcessImage(ctx context.Context, userID uuid.UUID, base64Image string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, userID, base64Image))
}

func (m *MockRecipeService) SearchByName(ctx context.Context, userID uuid.UUID, name string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, userID, name))
}

func (m *MockRecipeService) SearchByIngredients(ctx context.Context, userID uuid.UUID, csv string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, userID, csv))
}

func (m *MockRecipeService) Featured(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, userID))
}

func (m *MockRecipeService) Popular(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, userID))
}

func (m *MockRecipeService) RecipeByID(ctx context.Context, recipeID string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, recipeID))
}

// MockFavoriteService is a mock implementation of the favorites service
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, userID uuid.UUID, recipeID string) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *MockFavoriteService) Remove(ctx context.Context, userID uuid.UUID, recipeID string) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *MockFavoriteService) List(ctx context.Context, userID uuid.UUID) ([]json.RawMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func (m *MockFavoriteService) Count(ctx context.Context, recipeID string) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}
