package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
)

// Ensure PantryStore implements the interface.
var _ driven.PantryStore = (*PantryStore)(nil)

type pantryEntry struct {
	quantityUnit string
	updatedAt    time.Time
}

// PantryStore is an in-memory implementation of driven.PantryStore.
type PantryStore struct {
	mu          sync.RWMutex
	entries     map[int64]pantryEntry
	ingredients *IngredientStore
}

// NewPantryStore creates a new in-memory pantry store.
func NewPantryStore(ingredients *IngredientStore) *PantryStore {
	return &PantryStore{
		entries:     make(map[int64]pantryEntry),
		ingredients: ingredients,
	}
}

// Set stores or replaces the on-hand quantity for an ingredient.
func (s *PantryStore) Set(ctx context.Context, ingredientID int64, quantityUnit string) error {
	if _, err := s.ingredients.Get(ctx, ingredientID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[ingredientID] = pantryEntry{quantityUnit: quantityUnit, updatedAt: time.Now()}
	return nil
}

// Get retrieves the pantry entry for an ingredient.
func (s *PantryStore) Get(ctx context.Context, ingredientID int64) (*domain.PantryItem, error) {
	s.mu.RLock()
	entry, ok := s.entries[ingredientID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	ing, err := s.ingredients.Get(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	return &domain.PantryItem{Ingredient: *ing, QuantityUnit: entry.quantityUnit, UpdatedAt: entry.updatedAt}, nil
}

// List returns all pantry entries ordered by ingredient name.
func (s *PantryStore) List(ctx context.Context) ([]domain.PantryItem, error) {
	s.mu.RLock()
	ids := make([]int64, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	result := make([]domain.PantryItem, 0, len(ids))
	for _, id := range ids {
		item, err := s.Get(ctx, id)
		if err != nil {
			continue
		}
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Ingredient.Name < result[j].Ingredient.Name
	})
	return result, nil
}

// Delete removes the pantry entry for an ingredient.
func (s *PantryStore) Delete(_ context.Context, ingredientID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[ingredientID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.entries, ingredientID)
	return nil
}
