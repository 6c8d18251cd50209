// Package tui provides the interactive recipe wizard for feedme.
// It is a driving adapter built on Bubbletea.
package tui

import (
	"github.com/custodia-labs/feedme/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Quantity previews quantities while they are typed.
	Quantity driving.QuantityService

	// Recipe stores the finished recipe.
	Recipe driving.RecipeService

	// Ingredient lists known ingredients so new ones can be confirmed.
	Ingredient driving.IngredientService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Quantity == nil {
		return ErrMissingQuantityService
	}
	if p.Recipe == nil {
		return ErrMissingRecipeService
	}
	if p.Ingredient == nil {
		return ErrMissingIngredientService
	}
	return nil
}
