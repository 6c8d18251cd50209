package grocery

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/logger"
	"github.com/custodia-labs/feedme/internal/measure"
)

// Aggregator merges recipe ingredient entries into grocery lines.
// It holds no mutable state and is safe for concurrent use.
type Aggregator struct {
	catalog *measure.Catalog
}

// NewAggregator creates an aggregator using the given catalog for base
// units. A nil catalog uses measure.Default().
func NewAggregator(catalog *measure.Catalog) *Aggregator {
	if catalog == nil {
		catalog = measure.Default()
	}
	return &Aggregator{catalog: catalog}
}

// group collects the entries of one ingredient.
type group struct {
	ingredient domain.Ingredient
	notes      string
	quantities []domain.Quantity
}

// Aggregate merges entries into one line per ingredient, ordered by first
// appearance. Buckets that sum to zero are dropped, as are ingredients left
// with nothing to buy.
func (a *Aggregator) Aggregate(entries []domain.RecipeIngredientEntry) []domain.AggregatedLine {
	groups := groupEntries(entries)

	lines := make([]domain.AggregatedLine, 0, len(groups))
	for _, g := range groups {
		if line, ok := a.mergeGroup(g); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// AggregateParallel produces the same result as Aggregate, merging
// ingredient groups across up to workers goroutines. It only fails when ctx
// is cancelled.
func (a *Aggregator) AggregateParallel(
	ctx context.Context,
	entries []domain.RecipeIngredientEntry,
	workers int,
) ([]domain.AggregatedLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	groups := groupEntries(entries)
	if workers <= 1 || len(groups) < 2 {
		return a.Aggregate(entries), nil
	}
	if workers > len(groups) {
		workers = len(groups)
	}

	merged := make([]domain.AggregatedLine, len(groups))
	keep := make([]bool, len(groups))
	shard := (len(groups) + workers - 1) / workers

	eg, egCtx := errgroup.WithContext(ctx)
	for start := 0; start < len(groups); start += shard {
		end := min(start+shard, len(groups))
		eg.Go(func() error {
			for i := start; i < end; i++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				merged[i], keep[i] = a.mergeGroup(groups[i])
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	lines := make([]domain.AggregatedLine, 0, len(groups))
	for i := range merged {
		if keep[i] {
			lines = append(lines, merged[i])
		}
	}
	return lines, nil
}

// groupEntries groups entries by ingredient ID in first-seen order.
func groupEntries(entries []domain.RecipeIngredientEntry) []*group {
	var groups []*group
	index := make(map[int64]*group)

	for _, e := range entries {
		g, ok := index[e.Ingredient.ID]
		if !ok {
			g = &group{ingredient: e.Ingredient}
			index[e.Ingredient.ID] = g
			groups = append(groups, g)
		}
		if g.notes == "" {
			g.notes = e.Notes
		}
		g.quantities = append(g.quantities, e.Quantity)
	}
	return groups
}

type bucketKind int

const (
	bucketFamily bucketKind = iota
	bucketCustom
	bucketOpaque
)

type bucketKey struct {
	kind   bucketKind
	family domain.UnitFamily
	text   string
}

// bucket accumulates one merge target.
type bucket struct {
	key bucketKey

	// sum is in unit: the family base, or the custom unit itself.
	sum  float64
	unit domain.Unit

	// first is the unit of the first contributor; sameUnit stays true while
	// every contributor used it.
	first    domain.Unit
	sameUnit bool

	// opaque buckets only.
	raw    string
	amount float64

	count int
}

// mergeGroup merges one ingredient's quantities. It reports false when
// nothing is left to buy.
func (a *Aggregator) mergeGroup(g *group) (domain.AggregatedLine, bool) {
	var order []*bucket
	buckets := make(map[bucketKey]*bucket)

	get := func(key bucketKey) (*bucket, bool) {
		b, ok := buckets[key]
		if !ok {
			b = &bucket{key: key, sameUnit: true}
			buckets[key] = b
			order = append(order, b)
		}
		return b, ok
	}

	// overflows reports whether adding amount to the bucket at key would
	// leave the float range.
	overflows := func(key bucketKey, amount float64) bool {
		b, ok := buckets[key]
		return ok && math.IsInf(b.sum+amount, 0)
	}

	addOpaque := func(raw string, amount float64) {
		b, existed := get(bucketKey{kind: bucketOpaque, text: raw})
		if !existed {
			b.raw = raw
			b.amount = amount
		}
		b.count++
	}

	for _, q := range g.quantities {
		if !q.IsResolved() {
			addOpaque(q.Raw, q.Amount)
			continue
		}

		if q.Amount < 0 || math.IsNaN(q.Amount) || math.IsInf(q.Amount, 0) {
			logger.Warn("ingredient %d: invalid amount in %q, keeping as text", g.ingredient.ID, displayText(q))
			addOpaque(displayText(q), 0)
			continue
		}

		unit := *q.Unit
		if !unit.Family.Convertible() {
			key := bucketKey{kind: bucketCustom, family: unit.Family, text: unit.Symbol}
			if overflows(key, q.Amount) {
				logger.Warn("ingredient %d: sum out of range, keeping %q as text", g.ingredient.ID, displayText(q))
				addOpaque(displayText(q), q.Amount)
				continue
			}
			b, existed := get(key)
			if !existed {
				b.unit, b.first = unit, unit
			}
			b.sum += q.Amount
			b.count++
			continue
		}

		base, err := a.catalog.ToBase(q)
		if err != nil {
			logger.Warn("ingredient %d: %v, keeping %q as text", g.ingredient.ID, err, displayText(q))
			addOpaque(displayText(q), q.Amount)
			continue
		}

		key := bucketKey{kind: bucketFamily, family: unit.Family}
		if overflows(key, base.Amount) {
			logger.Warn("ingredient %d: sum out of range, keeping %q as text", g.ingredient.ID, displayText(q))
			addOpaque(displayText(q), q.Amount)
			continue
		}
		b, existed := get(key)
		if !existed {
			b.unit, b.first = *base.Unit, unit
		} else if !b.first.SameAs(unit) {
			b.sameUnit = false
		}
		b.sum += base.Amount
		b.count++
	}

	line := domain.AggregatedLine{Ingredient: g.ingredient, Notes: g.notes}
	for _, b := range order {
		if lq, ok := b.result(); ok {
			line.Quantities = append(line.Quantities, lq)
		}
	}
	return line, len(line.Quantities) > 0
}

// result renders a bucket. Resolved buckets that sum to zero are dropped.
func (b *bucket) result() (domain.LineQuantity, bool) {
	if b.key.kind == bucketOpaque {
		return domain.LineQuantity{Quantity: domain.Opaque(b.raw, b.amount), Count: b.count}, true
	}

	if measure.IsZero(b.sum) {
		return domain.LineQuantity{}, false
	}

	q := domain.Resolved(b.sum, b.unit)
	if b.key.kind == bucketFamily && b.sameUnit && !b.first.SameAs(b.unit) {
		if back, err := measure.Convert(q, b.first); err == nil {
			q = back
		}
	}
	return domain.LineQuantity{Quantity: q, Count: b.count}, true
}

// displayText is the text kept when a resolved quantity is demoted.
func displayText(q domain.Quantity) string {
	if q.Raw != "" {
		return q.Raw
	}
	return q.String()
}
