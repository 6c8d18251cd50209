package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
	"github.com/custodia-labs/feedme/internal/core/ports/driving"
)

// Ensure IngredientService implements the interface.
var _ driving.IngredientService = (*IngredientService)(nil)

// IngredientService manages the ingredient list.
type IngredientService struct {
	ingredientStore driven.IngredientStore
}

// NewIngredientService creates a new ingredient service.
func NewIngredientService(ingredientStore driven.IngredientStore) *IngredientService {
	return &IngredientService{ingredientStore: ingredientStore}
}

// Create adds a new ingredient.
func (s *IngredientService) Create(ctx context.Context, name string) (*domain.Ingredient, error) {
	if s.ingredientStore == nil {
		return nil, domain.ErrNotImplemented
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.ingredientStore.Create(ctx, name)
}

// Get retrieves an ingredient by ID.
func (s *IngredientService) Get(ctx context.Context, id int64) (*domain.Ingredient, error) {
	if s.ingredientStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.ingredientStore.Get(ctx, id)
}

// FindByName retrieves an ingredient by name.
func (s *IngredientService) FindByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	if s.ingredientStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.ingredientStore.GetByName(ctx, strings.TrimSpace(name))
}

// List returns all ingredients ordered by name.
func (s *IngredientService) List(ctx context.Context) ([]domain.Ingredient, error) {
	if s.ingredientStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.ingredientStore.List(ctx)
}
