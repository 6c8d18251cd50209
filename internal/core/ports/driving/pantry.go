package driving

import (
	"context"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// PantryService manages on-hand quantities.
type PantryService interface {
	// Set records how much of an ingredient is on hand.
	Set(ctx context.Context, ingredientID int64, quantityText string) (*domain.PantryItem, error)

	// List returns all pantry entries.
	List(ctx context.Context) ([]domain.PantryItem, error)

	// Remove clears the pantry entry for an ingredient.
	Remove(ctx context.Context, ingredientID int64) error
}
