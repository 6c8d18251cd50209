// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/feedme/internal/core/domain"
)

// IngredientsLoaded carries the known ingredients used to decide whether
// a typed name needs confirmation.
type IngredientsLoaded struct {
	Ingredients []domain.Ingredient
	Err         error
}

// RecipeCompleted is sent when the wizard has collected a full recipe.
type RecipeCompleted struct {
	Recipe domain.Recipe
}

// RecipeSaved carries the stored recipe back to the app.
type RecipeSaved struct {
	Recipe *domain.Recipe
	Err    error
}

// Cancelled signals the user abandoned the recipe.
type Cancelled struct{}
