package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
	"github.com/custodia-labs/feedme/internal/core/ports/driving"
	"github.com/custodia-labs/feedme/internal/logger"
	"github.com/custodia-labs/feedme/internal/measure"
)

// Ensure PantryService implements the interface.
var _ driving.PantryService = (*PantryService)(nil)

// PantryService manages on-hand quantities.
type PantryService struct {
	pantryStore driven.PantryStore
	parser      *measure.Parser
}

// NewPantryService creates a new pantry service.
func NewPantryService(pantryStore driven.PantryStore, catalog *measure.Catalog) *PantryService {
	return &PantryService{
		pantryStore: pantryStore,
		parser:      measure.NewParser(catalog),
	}
}

// Set records how much of an ingredient is on hand.
func (s *PantryService) Set(ctx context.Context, ingredientID int64, quantityText string) (*domain.PantryItem, error) {
	if s.pantryStore == nil {
		return nil, domain.ErrNotImplemented
	}
	quantityText = strings.TrimSpace(quantityText)
	if quantityText == "" {
		return nil, fmt.Errorf("quantity is required: %w", domain.ErrInvalidInput)
	}

	if q := s.parser.Parse(quantityText); !q.IsResolved() {
		logger.Warn("pantry quantity %q has no known unit and will not be subtracted", quantityText)
	}

	if err := s.pantryStore.Set(ctx, ingredientID, quantityText); err != nil {
		return nil, fmt.Errorf("failed to update pantry: %w", err)
	}
	return s.pantryStore.Get(ctx, ingredientID)
}

// List returns all pantry entries.
func (s *PantryService) List(ctx context.Context) ([]domain.PantryItem, error) {
	if s.pantryStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.pantryStore.List(ctx)
}

// Remove clears the pantry entry for an ingredient.
func (s *PantryService) Remove(ctx context.Context, ingredientID int64) error {
	if s.pantryStore == nil {
		return domain.ErrNotImplemented
	}
	return s.pantryStore.Delete(ctx, ingredientID)
}
