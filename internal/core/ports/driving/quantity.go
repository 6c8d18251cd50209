package driving

import "github.com/custodia-labs/feedme/internal/core/domain"

// QuantityService parses and converts quantity text.
type QuantityService interface {
	// ParseQuantity parses free-form quantity text. It never fails;
	// unrecognised text comes back opaque.
	ParseQuantity(raw string) domain.Quantity

	// Convert expresses q in the unit named by targetSymbol.
	Convert(q domain.Quantity, targetSymbol string) (domain.Quantity, error)

	// Units returns every registered unit.
	Units() []domain.Unit
}
