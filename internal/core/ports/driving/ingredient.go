package driving

import (
	"context"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// IngredientService manages the ingredient list.
type IngredientService interface {
	// Create adds a new ingredient. Fails if the name exists.
	Create(ctx context.Context, name string) (*domain.Ingredient, error)

	// Get retrieves an ingredient by ID.
	Get(ctx context.Context, id int64) (*domain.Ingredient, error)

	// FindByName retrieves an ingredient by name.
	FindByName(ctx context.Context, name string) (*domain.Ingredient, error)

	// List returns all ingredients ordered by name.
	List(ctx context.Context) ([]domain.Ingredient, error)
}
