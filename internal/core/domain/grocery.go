package domain

import (
	"strings"
	"time"
)

// GroceryRequest selects the recipes to shop for.
type GroceryRequest struct {
	// RecipeIDs are processed in order; ingredient order on the list
	// follows first appearance across these recipes.
	RecipeIDs []int64

	// SubtractPantry removes on-hand pantry amounts from the list.
	SubtractPantry bool
}

// GroceryList is the result of aggregating the selected recipes.
type GroceryList struct {
	// ID identifies this generated list.
	ID string `json:"id"`

	RecipeIDs []int64          `json:"recipe_ids"`
	Lines     []AggregatedLine `json:"lines"`
	CreatedAt time.Time        `json:"created_at"`
}

// String renders one line per ingredient.
func (g *GroceryList) String() string {
	var b strings.Builder
	for _, line := range g.Lines {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return b.String()
}
