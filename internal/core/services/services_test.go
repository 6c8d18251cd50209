package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/feedme/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/feedme/internal/core/domain"
)

// testStores bundles the in-memory stores used across service tests.
type testStores struct {
	ingredients *memory.IngredientStore
	recipes     *memory.RecipeStore
	pantry      *memory.PantryStore
}

func newTestStores() testStores {
	ingredients := memory.NewIngredientStore()
	return testStores{
		ingredients: ingredients,
		recipes:     memory.NewRecipeStore(ingredients),
		pantry:      memory.NewPantryStore(ingredients),
	}
}

func mustCreateRecipe(t *testing.T, stores testStores, recipe domain.Recipe) int64 {
	t.Helper()
	id, err := stores.recipes.Create(context.Background(), recipe)
	require.NoError(t, err)
	return id
}
