package driven

import (
	"context"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// PantryStore persists on-hand quantities, one per ingredient.
type PantryStore interface {
	// Set stores or replaces the on-hand quantity text for an ingredient.
	Set(ctx context.Context, ingredientID int64, quantityUnit string) error

	// Get retrieves the pantry entry for an ingredient.
	// Returns domain.ErrNotFound if there is none.
	Get(ctx context.Context, ingredientID int64) (*domain.PantryItem, error)

	// List returns all pantry entries ordered by ingredient name.
	List(ctx context.Context) ([]domain.PantryItem, error)

	// Delete removes the pantry entry for an ingredient.
	// Returns domain.ErrNotFound if there is none.
	Delete(ctx context.Context, ingredientID int64) error
}
