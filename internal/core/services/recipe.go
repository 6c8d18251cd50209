package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
	"github.com/custodia-labs/feedme/internal/core/ports/driving"
	"github.com/custodia-labs/feedme/internal/logger"
	"github.com/custodia-labs/feedme/internal/measure"
)

// Ensure RecipeService implements the interface.
var _ driving.RecipeService = (*RecipeService)(nil)

// RecipeService manages recipes.
type RecipeService struct {
	recipeStore driven.RecipeStore
	parser      *measure.Parser
}

// NewRecipeService creates a new recipe service. The catalog is only used
// to flag quantities that will not aggregate; nil uses the built-in units.
func NewRecipeService(recipeStore driven.RecipeStore, catalog *measure.Catalog) *RecipeService {
	return &RecipeService{
		recipeStore: recipeStore,
		parser:      measure.NewParser(catalog),
	}
}

// Create validates and stores a recipe.
func (s *RecipeService) Create(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	if s.recipeStore == nil {
		return nil, domain.ErrNotImplemented
	}

	cleaned, err := s.validate(recipe)
	if err != nil {
		return nil, err
	}

	id, err := s.recipeStore.Create(ctx, cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}
	logger.Info("saved recipe %d %q with %d ingredients", id, cleaned.Name, len(cleaned.Ingredients))

	return s.recipeStore.Get(ctx, id)
}

// validate trims the recipe and rejects missing names and duplicate
// ingredients.
func (s *RecipeService) validate(recipe domain.Recipe) (domain.Recipe, error) {
	recipe.Name = strings.TrimSpace(recipe.Name)
	recipe.Instructions = strings.TrimSpace(recipe.Instructions)
	if recipe.Name == "" {
		return recipe, fmt.Errorf("recipe name is required: %w", domain.ErrInvalidInput)
	}

	seenIDs := make(map[int64]bool)
	seenNames := make(map[string]bool)
	rows := make([]domain.RecipeIngredient, 0, len(recipe.Ingredients))

	for _, ri := range recipe.Ingredients {
		ri.IngredientName = strings.TrimSpace(ri.IngredientName)
		ri.QuantityUnit = strings.TrimSpace(ri.QuantityUnit)
		ri.Notes = strings.TrimSpace(ri.Notes)

		if ri.IngredientID == 0 && ri.IngredientName == "" {
			return recipe, fmt.Errorf("ingredient name is required: %w", domain.ErrInvalidInput)
		}
		if ri.IngredientID != 0 {
			if seenIDs[ri.IngredientID] {
				return recipe, fmt.Errorf("duplicate ingredient %d: %w", ri.IngredientID, domain.ErrInvalidInput)
			}
			seenIDs[ri.IngredientID] = true
		}
		if ri.IngredientName != "" {
			key := strings.ToLower(ri.IngredientName)
			if seenNames[key] {
				return recipe, fmt.Errorf("duplicate ingredient %q: %w", ri.IngredientName, domain.ErrInvalidInput)
			}
			seenNames[key] = true
		}

		if q := s.parser.Parse(ri.QuantityUnit); !q.IsResolved() && ri.QuantityUnit != "" {
			logger.Warn("%s: %q has no known unit and will be listed as written", ri.IngredientName, ri.QuantityUnit)
		}
		rows = append(rows, ri)
	}

	recipe.Ingredients = rows
	return recipe, nil
}

// Get retrieves a recipe by ID.
func (s *RecipeService) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	if s.recipeStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.recipeStore.Get(ctx, id)
}

// List returns all recipe summaries.
func (s *RecipeService) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	if s.recipeStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.recipeStore.List(ctx)
}
