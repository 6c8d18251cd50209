package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
)

// Ensure IngredientStore implements the interface.
var _ driven.IngredientStore = (*IngredientStore)(nil)

// IngredientStore is an in-memory implementation of driven.IngredientStore.
type IngredientStore struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.Ingredient
	byName map[string]int64
}

// NewIngredientStore creates a new in-memory ingredient store.
func NewIngredientStore() *IngredientStore {
	return &IngredientStore{
		nextID: 1,
		byID:   make(map[int64]domain.Ingredient),
		byName: make(map[string]int64),
	}
}

// Create stores a new ingredient.
func (s *IngredientStore) Create(_ context.Context, name string) (*domain.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ing, err := s.createLocked(name)
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (s *IngredientStore) createLocked(name string) (domain.Ingredient, error) {
	if _, ok := s.byName[name]; ok {
		return domain.Ingredient{}, domain.ErrAlreadyExists
	}
	ing := domain.Ingredient{ID: s.nextID, Name: name, CreatedAt: time.Now()}
	s.nextID++
	s.byID[ing.ID] = ing
	s.byName[name] = ing.ID
	return ing, nil
}

// findOrCreate returns the ingredient with the given name, creating it if
// needed.
func (s *IngredientStore) findOrCreate(name string) domain.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.byName[name]; ok {
		return s.byID[id]
	}
	ing, _ := s.createLocked(name)
	return ing
}

// Get retrieves an ingredient by ID.
func (s *IngredientStore) Get(_ context.Context, id int64) (*domain.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ing, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ing, nil
}

// GetByName retrieves an ingredient by exact name.
func (s *IngredientStore) GetByName(_ context.Context, name string) (*domain.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byName[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	ing := s.byID[id]
	return &ing, nil
}

// List returns all ingredients ordered by name.
func (s *IngredientStore) List(_ context.Context) ([]domain.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Ingredient, 0, len(s.byID))
	for _, ing := range s.byID {
		result = append(result, ing)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}
