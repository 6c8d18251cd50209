package mcp

import (
	"context"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// mockRecipeService is a mock implementation of driving.RecipeService.
type mockRecipeService struct {
	recipe    *domain.Recipe
	summaries []domain.RecipeSummary
	err       error
}

func (m *mockRecipeService) Create(_ context.Context, r domain.Recipe) (*domain.Recipe, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &r, nil
}

func (m *mockRecipeService) Get(_ context.Context, _ int64) (*domain.Recipe, error) {
	return m.recipe, m.err
}

func (m *mockRecipeService) List(_ context.Context) ([]domain.RecipeSummary, error) {
	return m.summaries, m.err
}

// mockGroceryService is a mock implementation of driving.GroceryService.
type mockGroceryService struct {
	list    *domain.GroceryList
	lastReq domain.GroceryRequest
	err     error
}

func (m *mockGroceryService) Aggregate(_ []domain.RecipeIngredientEntry) []domain.AggregatedLine {
	if m.list == nil {
		return nil
	}
	return m.list.Lines
}

func (m *mockGroceryService) BuildList(_ context.Context, req domain.GroceryRequest) (*domain.GroceryList, error) {
	m.lastReq = req
	return m.list, m.err
}
