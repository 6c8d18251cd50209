package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
)

// pantryStore implements driven.PantryStore.
type pantryStore struct {
	store *Store
}

var _ driven.PantryStore = (*pantryStore)(nil)

// Set stores or replaces the on-hand quantity for an ingredient.
func (s *pantryStore) Set(ctx context.Context, ingredientID int64, quantityUnit string) error {
	if _, err := ingredientName(ctx, s.store.db, ingredientID); err != nil {
		return err
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO pantry (ingredient_id, quantity_unit, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(ingredient_id) DO UPDATE SET
			quantity_unit = excluded.quantity_unit,
			updated_at = excluded.updated_at
	`, ingredientID, quantityUnit, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving pantry item: %w", err)
	}
	return nil
}

// Get retrieves the pantry entry for an ingredient.
func (s *pantryStore) Get(ctx context.Context, ingredientID int64) (*domain.PantryItem, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT i.id, i.name, i.created_at, p.quantity_unit, p.updated_at
		FROM pantry p
		JOIN ingredients i ON i.id = p.ingredient_id
		WHERE p.ingredient_id = ?
	`, ingredientID)

	item, err := scanPantryItem(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return item, err
}

// List returns all pantry entries ordered by ingredient name.
func (s *pantryStore) List(ctx context.Context) ([]domain.PantryItem, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT i.id, i.name, i.created_at, p.quantity_unit, p.updated_at
		FROM pantry p
		JOIN ingredients i ON i.id = p.ingredient_id
		ORDER BY i.name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying pantry: %w", err)
	}
	defer rows.Close()

	var items []domain.PantryItem //nolint:prealloc // size unknown from query
	for rows.Next() {
		item, err := scanPantryItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// Delete removes the pantry entry for an ingredient.
func (s *pantryStore) Delete(ctx context.Context, ingredientID int64) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM pantry WHERE ingredient_id = ?", ingredientID)
	if err != nil {
		return fmt.Errorf("deleting pantry item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting pantry item: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPantryItem(scan func(dest ...any) error) (*domain.PantryItem, error) {
	var item domain.PantryItem
	var createdAt, updatedAt sql.NullTime
	if err := scan(&item.Ingredient.ID, &item.Ingredient.Name, &createdAt, &item.QuantityUnit, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning pantry item: %w", err)
	}
	if createdAt.Valid {
		item.Ingredient.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		item.UpdatedAt = updatedAt.Time
	}
	return &item, nil
}
