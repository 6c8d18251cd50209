package driven

import (
	"context"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// IngredientStore persists ingredients. Names are unique.
type IngredientStore interface {
	// Create stores a new ingredient.
	// Returns domain.ErrAlreadyExists if the name is taken.
	Create(ctx context.Context, name string) (*domain.Ingredient, error)

	// Get retrieves an ingredient by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id int64) (*domain.Ingredient, error)

	// GetByName retrieves an ingredient by exact name.
	// Returns domain.ErrNotFound if it does not exist.
	GetByName(ctx context.Context, name string) (*domain.Ingredient, error)

	// List returns all ingredients ordered by name.
	List(ctx context.Context) ([]domain.Ingredient, error)
}
