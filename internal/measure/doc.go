// Package measure parses, classifies and converts ingredient quantities.
//
// It provides the three leaf components of grocery aggregation:
//
//   - Catalog: the immutable registry of units and their families
//   - Parser: free-form quantity text to domain.Quantity, never failing
//   - Convert: same-family unit conversion
//
// Everything here is a pure computation over caller-supplied data. A Catalog
// is read-only after construction and may be shared across goroutines.
package measure
