package mocks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/coolpotato/backend/internal/platform/spoonacular"
	"github.com/coolpotato/backend/internal/types"
)

// MockIdentifier is a mock ingredient identifier
type MockIdentifier struct {
	mock.Mock
}

func (m *MockIdentifier) IdentifyIngredients(ctx context.Context, base64Image string) (string, error) {
	args := m.Called(ctx, base64Image)
	return args.String(0), args.Error(1)
}

// MockRecipeAPI is a mock recipe API client
type MockRecipeAPI struct {
	mock.Mock
}

func (m *MockRecipeAPI) Do(ctx context.Context, q spoonacular.Query) (json.RawMessage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockDietaryLookup is a mock dietary profile lookup
type MockDietaryLookup struct {
	mock.Mock
}

func (m *MockDietaryLookup) DietaryFlag(ctx context.Context, userID uuid.UUID) (types.DietaryFlag, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(types.DietaryFlag), args.Error(1)
}
