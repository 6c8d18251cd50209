package mcp

import (
	"github.com/custodia-labs/feedme/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the MCP server.
type Ports struct {
	// Quantity parses and converts quantities. Required.
	Quantity driving.QuantityService

	// Grocery aggregates ingredients and builds grocery lists.
	Grocery driving.GroceryService

	// Recipe reads stored recipes.
	Recipe driving.RecipeService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Quantity == nil {
		return ErrMissingQuantityService
	}
	return nil
}
