// Package grocery merges parsed recipe ingredient rows into a grocery list.
//
// Rows are grouped by ingredient ID in first-seen order. Within an
// ingredient, resolved quantities of the same unit family are converted to
// the family base unit and summed; custom units merge only with the same
// symbol; opaque text merges only with identical text and is counted.
// Nothing here fails outward: a row that cannot be merged is carried as an
// opaque entry so the rest of the list still renders.
package grocery
