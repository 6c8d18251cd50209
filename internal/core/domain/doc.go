// Package domain defines the core business entities for feedme.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Ingredient: A named ingredient referenced by stable ID
//   - Unit: A measurement unit and its family
//   - Quantity: A parsed amount and unit, or opaque raw text
//   - Recipe: A recipe with its ingredient rows
//   - PantryItem: An on-hand quantity of an ingredient
//   - AggregatedLine: One merged grocery list line
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
