package driving

import (
	"context"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// GroceryService merges ingredient rows into grocery lists.
type GroceryService interface {
	// Aggregate merges already-parsed entries. It never fails.
	Aggregate(entries []domain.RecipeIngredientEntry) []domain.AggregatedLine

	// BuildList loads the requested recipes and aggregates their rows,
	// optionally subtracting pantry amounts.
	BuildList(ctx context.Context, req domain.GroceryRequest) (*domain.GroceryList, error)
}
