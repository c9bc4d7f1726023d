package service_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/mocks"
	"github.com/coolpotato/backend/internal/platform/spoonacular"
	"github.com/coolpotato/backend/internal/service"
	"github.com/coolpotato/backend/internal/types"
)

var fakeImage = base64.StdEncoding.EncodeToString([]byte("not really a jpeg"))

type pipeline struct {
	identifier *mocks.MockIdentifier
	recipes    *mocks.MockRecipeAPI
	dietary    *mocks.MockDietaryLookup
	svc        *service.RecipeService
}

func newPipeline() *pipeline {
	p := &pipeline{
		identifier: &mocks.MockIdentifier{},
		recipes:    &mocks.MockRecipeAPI{},
		dietary:    &mocks.MockDietaryLookup{},
	}
	p.svc = service.NewRecipeService(p.identifier, p.recipes, p.dietary, 0)
	return p
}

func queryMatching(path string, params map[string]string) interface{} {
	return mock.MatchedBy(func(q spoonacular.Query) bool {
		if q.Path != path || q.Params.Has("apiKey") {
			return false
		}
		for k, v := range params {
			if q.Params.Get(k) != v {
				return false
			}
		}
		return true
	})
}

func TestProcessImage_DiabeticUser(t *testing.T) {
	p := newPipeline()
	userID := uuid.New()
	body := json.RawMessage(`{"results":[]}`)

	p.dietary.On("DietaryFlag", mock.Anything, userID).Return(types.DietaryDiabetic, nil)
	p.identifier.On("IdentifyIngredients", mock.Anything, fakeImage).Return("tomato, Onion ,  unknown", nil)
	p.recipes.On("Do", mock.Anything, queryMatching("/recipes/complexSearch", map[string]string{
		"includeIngredients": "tomato,Onion,unknown",
		"diet":               "ketogenic",
		"maxSugar":           "5",
		"maxCarbs":           "30",
	})).Return(body, nil)

	got, err := p.svc.ProcessImage(context.Background(), userID, fakeImage)
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[]}`, string(got))
	p.recipes.AssertExpectations(t)
}

func TestProcessImage_UnknownUserIsUnset(t *testing.T) {
	p := newPipeline()
	userID := uuid.New()

	p.dietary.On("DietaryFlag", mock.Anything, userID).Return(types.DietaryUnset, service.ErrUserNotFound)
	p.identifier.On("IdentifyIngredients", mock.Anything, fakeImage).Return("egg", nil)
	p.recipes.On("Do", mock.Anything, queryMatching("/recipes/findByIngredients", map[string]string{
		"ingredients": "egg",
	})).Return(json.RawMessage(`[]`), nil)

	_, err := p.svc.ProcessImage(context.Background(), userID, fakeImage)
	require.NoError(t, err)
	p.recipes.AssertExpectations(t)
}

func TestProcessImage_EmptyIdentificationStillQueries(t *testing.T) {
	p := newPipeline()
	userID := uuid.New()

	p.dietary.On("DietaryFlag", mock.Anything, userID).Return(types.DietaryNotDiabetic, nil)
	p.identifier.On("IdentifyIngredients", mock.Anything, fakeImage).Return("", nil)
	p.recipes.On("Do", mock.Anything, queryMatching("/recipes/findByIngredients", map[string]string{
		"ingredients": "",
	})).Return(json.RawMessage(`[]`), nil)

	_, err := p.svc.ProcessImage(context.Background(), userID, fakeImage)
	require.NoError(t, err)
	p.recipes.AssertNumberOfCalls(t, "Do", 1)
}

func TestProcessImage_VisionFailureStopsPipeline(t *testing.T) {
	p := newPipeline()
	userID := uuid.New()

	p.dietary.On("DietaryFlag", mock.Anything, userID).Return(types.DietaryUnset, nil)
	p.identifier.On("IdentifyIngredients", mock.Anything, fakeImage).Return("", errors.New("model overloaded"))

	_, err := p.svc.ProcessImage(context.Background(), userID, fakeImage)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamModel)
	p.recipes.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestProcessImage_RecipeAPIFailure(t *testing.T) {
	p := newPipeline()
	userID := uuid.New()

	p.dietary.On("DietaryFlag", mock.Anything, userID).Return(types.DietaryUnset, nil)
	p.identifier.On("IdentifyIngredients", mock.Anything, fakeImage).Return("rice", nil)
	p.recipes.On("Do", mock.Anything, mock.Anything).Return(nil, errors.New("status 402"))

	_, err := p.svc.ProcessImage(context.Background(), userID, fakeImage)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamRecipeAPI)
	assert.Equal(t, "An error occurred", apperrors.PublicMessage(err))
}

func TestProcessImage_LookupFailureAborts(t *testing.T) {
	p := newPipeline()
	userID := uuid.New()

	p.dietary.On("DietaryFlag", mock.Anything, userID).
		Return(types.DietaryUnset, apperrors.Internal("db down", errors.New("conn refused")))

	_, err := p.svc.ProcessImage(context.Background(), userID, fakeImage)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
	p.identifier.AssertNotCalled(t, "IdentifyIngredients", mock.Anything, mock.Anything)
}

func TestProcessImage_InvalidImage(t *testing.T) {
	p := newPipeline()
	userID := uuid.New()
	p.dietary.On("DietaryFlag", mock.Anything, userID).Return(types.DietaryUnset, nil)

	_, err := p.svc.ProcessImage(context.Background(), userID, "@@not-base64@@")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	p.identifier.AssertNotCalled(t, "IdentifyIngredients", mock.Anything, mock.Anything)
}

func TestDiscoveryEntryPointsApplyFilter(t *testing.T) {
	diabeticFilter := map[string]string{"diet": "ketogenic", "maxSugar": "5", "maxCarbs": "30"}
	tests := []struct {
		name string
		path string
		call func(svc *service.RecipeService, userID uuid.UUID) (json.RawMessage, error)
	}{
		{"by name", "/recipes/complexSearch", func(svc *service.RecipeService, id uuid.UUID) (json.RawMessage, error) {
			return svc.SearchByName(context.Background(), id, "soup")
		}},
		{"by ingredients", "/recipes/complexSearch", func(svc *service.RecipeService, id uuid.UUID) (json.RawMessage, error) {
			return svc.SearchByIngredients(context.Background(), id, "egg, milk")
		}},
		{"featured", "/recipes/complexSearch", func(svc *service.RecipeService, id uuid.UUID) (json.RawMessage, error) {
			return svc.Featured(context.Background(), id)
		}},
		{"popular", "/recipes/complexSearch", func(svc *service.RecipeService, id uuid.UUID) (json.RawMessage, error) {
			return svc.Popular(context.Background(), id)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPipeline()
			userID := uuid.New()
			p.dietary.On("DietaryFlag", mock.Anything, userID).Return(types.DietaryDiabetic, nil)
			p.recipes.On("Do", mock.Anything, queryMatching(tt.path, diabeticFilter)).Return(json.RawMessage(`{}`), nil)

			_, err := tt.call(p.svc, userID)
			require.NoError(t, err)
			p.recipes.AssertExpectations(t)
		})
	}
}

func TestSearchValidation(t *testing.T) {
	p := newPipeline()
	userID := uuid.New()

	_, err := p.svc.SearchByName(context.Background(), userID, "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = p.svc.SearchByIngredients(context.Background(), userID, " , ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = p.svc.RecipeByID(context.Background(), "abc")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	p.recipes.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestRecipeByID(t *testing.T) {
	p := newPipeline()
	p.recipes.On("Do", mock.Anything, queryMatching("/recipes/716429/information", nil)).
		Return(json.RawMessage(`{"id":716429}`), nil)

	got, err := p.svc.RecipeByID(context.Background(), "716429")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":716429}`, string(got))
}
