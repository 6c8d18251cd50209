package grocery

import (
	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/measure"
)

// Subtract removes on-hand quantities from an aggregated line. Each on-hand
// quantity is converted into the unit of the first compatible resolved
// bucket and subtracted from it, clamping at zero. Opaque buckets are never
// reduced. Buckets that reach zero are dropped; the second result reports
// whether anything is left to buy.
func Subtract(line domain.AggregatedLine, onHand []domain.Quantity) (domain.AggregatedLine, bool) {
	quantities := make([]domain.LineQuantity, len(line.Quantities))
	copy(quantities, line.Quantities)

	for _, have := range onHand {
		if !have.IsResolved() || have.Amount <= 0 {
			continue
		}
		for i := range quantities {
			lq := &quantities[i]
			if !lq.IsResolved() {
				continue
			}
			converted, err := measure.Convert(have, *lq.Unit)
			if err != nil {
				continue
			}
			lq.Quantity = domain.Resolved(max(lq.Amount-converted.Amount, 0), *lq.Unit)
			break
		}
	}

	out := line
	out.Quantities = nil
	for _, lq := range quantities {
		if lq.IsResolved() && measure.IsZero(lq.Amount) {
			continue
		}
		out.Quantities = append(out.Quantities, lq)
	}
	return out, len(out.Quantities) > 0
}
