package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/ingredients"
	"github.com/coolpotato/backend/internal/logger"
	"github.com/coolpotato/backend/internal/platform/spoonacular"
	"github.com/coolpotato/backend/internal/types"
)

// RecipeService runs the discovery pipeline:
// dietary lookup, identify, parse, build, execute.
type RecipeService struct {
	identifier  IngredientIdentifier
	recipes     RecipeAPI
	dietary     DietaryLookup
	imageMaxDim uint
}

var _ IRecipeService = (*RecipeService)(nil)

func NewRecipeService(identifier IngredientIdentifier, recipes RecipeAPI, dietary DietaryLookup, imageMaxDim uint) *RecipeService {
	return &RecipeService{
		identifier:  identifier,
		recipes:     recipes,
		dietary:     dietary,
		imageMaxDim: imageMaxDim,
	}
}

// ProcessImage identifies the ingredients in an image and searches recipes
// that use them. An empty identification still queries.
func (s *RecipeService) ProcessImage(ctx context.Context, userID uuid.UUID, base64Image string) (json.RawMessage, error) {
	flag, err := s.dietaryFlag(ctx, userID)
	if err != nil {
		return nil, err
	}

	img, err := ingredients.PrepareImage(base64Image, s.imageMaxDim)
	if err != nil {
		return nil, err
	}

	text, err := s.identifier.IdentifyIngredients(ctx, img)
	if err != nil {
		upstreamCalls.WithLabelValues(upstreamVision, outcomeError).Inc()
		if apperrors.KindOf(err) != apperrors.KindUpstreamModel && apperrors.KindOf(err) != apperrors.KindValidation {
			err = apperrors.UpstreamModel(err)
		}
		return nil, err
	}
	upstreamCalls.WithLabelValues(upstreamVision, outcomeOK).Inc()

	list := ingredients.Parse(text)
	identifiedIngredients.Observe(float64(len(list)))
	logger.Debug("identified ingredients",
		zap.String("user_id", userID.String()),
		zap.Strings("ingredients", list),
		zap.Stringer("dietary", flag),
	)

	return s.execute(ctx, spoonacular.ByIngredients(list, flag))
}

func (s *RecipeService) SearchByName(ctx context.Context, userID uuid.UUID, name string) (json.RawMessage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("Query parameter is required")
	}
	flag, err := s.dietaryFlag(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, spoonacular.ByName(name, flag))
}

func (s *RecipeService) SearchByIngredients(ctx context.Context, userID uuid.UUID, csv string) (json.RawMessage, error) {
	list := ingredients.Parse(csv)
	if len(list) == 0 {
		return nil, apperrors.Validation("Ingredients parameter is required")
	}
	flag, err := s.dietaryFlag(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, spoonacular.ByIngredients(list, flag))
}

func (s *RecipeService) Featured(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	flag, err := s.dietaryFlag(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, spoonacular.Featured(flag))
}

func (s *RecipeService) Popular(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	flag, err := s.dietaryFlag(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, spoonacular.Popular(flag))
}

func (s *RecipeService) RecipeByID(ctx context.Context, recipeID string) (json.RawMessage, error) {
	id, err := ParseRecipeID(recipeID)
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, spoonacular.Information(id))
}

// dietaryFlag treats an unknown user as having no restriction. Any other
// lookup failure aborts the request.
func (s *RecipeService) dietaryFlag(ctx context.Context, userID uuid.UUID) (types.DietaryFlag, error) {
	flag, err := s.dietary.DietaryFlag(ctx, userID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return types.DietaryUnset, nil
	}
	if err != nil {
		return types.DietaryUnset, err
	}
	return flag, nil
}

func (s *RecipeService) execute(ctx context.Context, q spoonacular.Query) (json.RawMessage, error) {
	body, err := s.recipes.Do(ctx, q)
	if err != nil {
		upstreamCalls.WithLabelValues(upstreamRecipeAPI, outcomeError).Inc()
		if apperrors.KindOf(err) != apperrors.KindUpstreamRecipeAPI {
			err = apperrors.UpstreamRecipeAPI(err)
		}
		return nil, err
	}
	upstreamCalls.WithLabelValues(upstreamRecipeAPI, outcomeOK).Inc()
	return body, nil
}

// ParseRecipeID accepts positive integer recipe ids only.
func ParseRecipeID(recipeID string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(recipeID))
	if err != nil || id <= 0 {
		return 0, apperrors.Validation("Invalid recipe id")
	}
	return id, nil
}
