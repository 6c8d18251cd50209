package services

import (
	"fmt"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/ports/driving"
	"github.com/custodia-labs/feedme/internal/logger"
	"github.com/custodia-labs/feedme/internal/measure"
)

// Ensure QuantityService implements the interface.
var _ driving.QuantityService = (*QuantityService)(nil)

// QuantityService parses and converts quantities against a unit catalog.
type QuantityService struct {
	catalog *measure.Catalog
	parser  *measure.Parser
}

// NewQuantityService creates a quantity service. A nil catalog uses the
// built-in units.
func NewQuantityService(catalog *measure.Catalog) *QuantityService {
	if catalog == nil {
		catalog = measure.Default()
	}
	return &QuantityService{
		catalog: catalog,
		parser:  measure.NewParser(catalog),
	}
}

// ParseQuantity parses free-form quantity text.
func (s *QuantityService) ParseQuantity(raw string) domain.Quantity {
	q := s.parser.Parse(raw)
	if q.IsResolved() {
		logger.Debug("parsed %q as %s (%s)", raw, q.String(), q.Unit.Family)
	} else {
		logger.Debug("kept %q as text", raw)
	}
	return q
}

// Convert expresses q in the unit named by targetSymbol.
func (s *QuantityService) Convert(q domain.Quantity, targetSymbol string) (domain.Quantity, error) {
	target, err := s.catalog.Lookup(targetSymbol)
	if err != nil {
		return domain.Quantity{}, err
	}
	converted, err := measure.Convert(q, target)
	if err != nil {
		return domain.Quantity{}, fmt.Errorf("failed to convert: %w", err)
	}
	return converted, nil
}

// Units returns every registered unit.
func (s *QuantityService) Units() []domain.Unit {
	return s.catalog.Units()
}
