package measure

import (
	"fmt"
	"math"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// Epsilon is the tolerance for comparing converted amounts.
const Epsilon = 1e-9

// Convert expresses q in the target unit.
//
// It fails with domain.ErrUnresolvedUnit for opaque quantities and with
// domain.ErrIncompatibleFamily when the families differ. Custom units only
// convert to the identical symbol.
func Convert(q domain.Quantity, target domain.Unit) (domain.Quantity, error) {
	if !q.IsResolved() {
		return domain.Quantity{}, fmt.Errorf("%w: %q has no unit", domain.ErrUnresolvedUnit, q.Raw)
	}

	from := *q.Unit
	if from.Family != target.Family {
		return domain.Quantity{}, fmt.Errorf("%w: cannot convert %s (%s) to %s (%s)",
			domain.ErrIncompatibleFamily, from.Symbol, from.Family, target.Symbol, target.Family)
	}

	if !from.Family.Convertible() {
		if !from.SameAs(target) {
			return domain.Quantity{}, fmt.Errorf("%w: custom units %s and %s do not convert",
				domain.ErrIncompatibleFamily, from.Symbol, target.Symbol)
		}
		return domain.Resolved(q.Amount, target), nil
	}

	if from.FactorToBase <= 0 || target.FactorToBase <= 0 {
		return domain.Quantity{}, fmt.Errorf("converting %s to %s: missing factor: %w",
			from.Symbol, target.Symbol, domain.ErrInvalidInput)
	}

	amount := q.Amount * from.FactorToBase / target.FactorToBase
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return domain.Quantity{}, fmt.Errorf("converting %s to %s: amount out of range: %w",
			from.Symbol, target.Symbol, domain.ErrInvalidInput)
	}
	return domain.Resolved(amount, target), nil
}

// ToBase converts q into its family base unit. Custom quantities are
// returned unchanged.
func (c *Catalog) ToBase(q domain.Quantity) (domain.Quantity, error) {
	if !q.IsResolved() {
		return domain.Quantity{}, fmt.Errorf("%w: %q has no unit", domain.ErrUnresolvedUnit, q.Raw)
	}
	if !q.Unit.Family.Convertible() {
		return domain.Resolved(q.Amount, *q.Unit), nil
	}
	base, err := c.FamilyBase(q.Unit.Family)
	if err != nil {
		return domain.Quantity{}, err
	}
	return Convert(q, base)
}

// ApproxEqual compares amounts with a combined absolute and relative
// tolerance.
func ApproxEqual(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Epsilon*scale
}

// IsZero reports whether an amount is zero within tolerance.
func IsZero(amount float64) bool {
	return math.Abs(amount) <= Epsilon
}
