package grocery

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/measure"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	flour  = domain.Ingredient{ID: 1, Name: "flour"}
	eggs   = domain.Ingredient{ID: 2, Name: "eggs"}
	salt   = domain.Ingredient{ID: 3, Name: "salt"}
	garlic = domain.Ingredient{ID: 4, Name: "garlic"}
	milk   = domain.Ingredient{ID: 5, Name: "milk"}
)

func entry(ing domain.Ingredient, raw string) domain.RecipeIngredientEntry {
	return domain.RecipeIngredientEntry{Ingredient: ing, Quantity: measure.Parse(raw)}
}

// approx compares amounts within a tolerance that absorbs float noise
// from base-unit round trips.
var approx = cmpopts.EquateApprox(0, 1e-9)

func TestAggregate_SameUnitSums(t *testing.T) {
	agg := NewAggregator(nil)

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		entry(flour, "1 cup"),
		entry(flour, "1/2 cup"),
	})

	require.Len(t, lines, 1)
	require.Len(t, lines[0].Quantities, 1)
	q := lines[0].Quantities[0]
	assert.Equal(t, "cup", q.Symbol())
	assert.InDelta(t, 1.5, q.Amount, 1e-9)
	assert.Equal(t, 2, q.Count)
	assert.Equal(t, "flour: 1.5 cup", lines[0].String())
}

func TestAggregate_MixedUnitsUseBase(t *testing.T) {
	agg := NewAggregator(nil)

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		entry(milk, "1 cup"),
		entry(milk, "2 tbsp"),
	})

	require.Len(t, lines, 1)
	require.Len(t, lines[0].Quantities, 1)
	q := lines[0].Quantities[0]
	assert.Equal(t, "ml", q.Symbol())
	assert.InDelta(t, 236.5882365+2*14.78676478125, q.Amount, 1e-6)
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	agg := NewAggregator(nil)

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		entry(eggs, "2"),
		entry(flour, "1 cup"),
		entry(eggs, "1"),
	})

	require.Len(t, lines, 2)
	assert.Equal(t, "eggs", lines[0].Ingredient.Name)
	assert.Equal(t, "flour", lines[1].Ingredient.Name)

	require.Len(t, lines[0].Quantities, 1)
	assert.Equal(t, "item", lines[0].Quantities[0].Symbol())
	assert.InDelta(t, 3, lines[0].Quantities[0].Amount, 1e-9)
}

func TestAggregate_OpaqueMergedByText(t *testing.T) {
	agg := NewAggregator(nil)

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		entry(salt, "a pinch"),
		entry(salt, "a pinch"),
		entry(salt, "to taste"),
	})

	require.Len(t, lines, 1)
	want := []domain.LineQuantity{
		{Quantity: domain.Opaque("a pinch", 0), Count: 2},
		{Quantity: domain.Opaque("to taste", 0), Count: 1},
	}
	if diff := cmp.Diff(want, lines[0].Quantities); diff != "" {
		t.Errorf("quantities mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "salt: 2x a pinch, to taste", lines[0].String())
}

func TestAggregate_OpaqueNotMergedWithResolved(t *testing.T) {
	agg := NewAggregator(nil)

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		entry(flour, "1 cup"),
		entry(flour, "some"),
		entry(flour, "2 cup"),
	})

	require.Len(t, lines, 1)
	require.Len(t, lines[0].Quantities, 2)
	assert.InDelta(t, 3, lines[0].Quantities[0].Amount, 1e-9)
	assert.Equal(t, "cup", lines[0].Quantities[0].Symbol())
	assert.False(t, lines[0].Quantities[1].IsResolved())
	assert.Equal(t, "some", lines[0].Quantities[1].Raw)
}

func TestAggregate_IncompatibleFamiliesKeptApart(t *testing.T) {
	agg := NewAggregator(nil)

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		entry(flour, "1 cup"),
		entry(flour, "100 g"),
		entry(flour, "1 tbsp"),
	})

	require.Len(t, lines, 1)
	require.Len(t, lines[0].Quantities, 2)
	assert.Equal(t, "ml", lines[0].Quantities[0].Symbol())
	assert.Equal(t, 2, lines[0].Quantities[0].Count)
	assert.Equal(t, "g", lines[0].Quantities[1].Symbol())
	assert.InDelta(t, 100, lines[0].Quantities[1].Amount, 1e-9)
}

func TestAggregate_CustomUnitsPerSymbol(t *testing.T) {
	agg := NewAggregator(nil)

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		entry(garlic, "2 cloves"),
		entry(garlic, "1 head"),
		entry(garlic, "1 clove"),
	})

	require.Len(t, lines, 1)
	require.Len(t, lines[0].Quantities, 2)
	assert.Equal(t, "clove", lines[0].Quantities[0].Symbol())
	assert.InDelta(t, 3, lines[0].Quantities[0].Amount, 1e-9)
	assert.Equal(t, "head", lines[0].Quantities[1].Symbol())
	assert.InDelta(t, 1, lines[0].Quantities[1].Amount, 1e-9)
}

func TestAggregate_ZeroBucketsDropped(t *testing.T) {
	agg := NewAggregator(nil)

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		entry(flour, "0 cup"),
		entry(eggs, "0"),
		entry(eggs, "a few"),
		entry(salt, "1 tsp"),
	})

	require.Len(t, lines, 2)
	assert.Equal(t, "eggs", lines[0].Ingredient.Name)
	require.Len(t, lines[0].Quantities, 1)
	assert.Equal(t, "a few", lines[0].Quantities[0].Raw)
	assert.Equal(t, "salt", lines[1].Ingredient.Name)
}

func TestAggregate_GroupsByIDNotName(t *testing.T) {
	agg := NewAggregator(nil)

	renamed := domain.Ingredient{ID: flour.ID, Name: "Flour"}
	other := domain.Ingredient{ID: 99, Name: "flour"}

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		entry(flour, "1 cup"),
		entry(renamed, "1 cup"),
		entry(other, "1 cup"),
	})

	require.Len(t, lines, 2)
	assert.Equal(t, flour.ID, lines[0].Ingredient.ID)
	assert.Equal(t, "flour", lines[0].Ingredient.Name)
	assert.InDelta(t, 2, lines[0].Quantities[0].Amount, 1e-9)
	assert.Equal(t, int64(99), lines[1].Ingredient.ID)
}

func TestAggregate_NotesFromFirstNonEmpty(t *testing.T) {
	agg := NewAggregator(nil)

	first := entry(flour, "1 cup")
	second := entry(flour, "1 cup")
	second.Notes = "sifted"
	third := entry(flour, "1 cup")
	third.Notes = "unbleached"

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{first, second, third})

	require.Len(t, lines, 1)
	assert.Equal(t, "sifted", lines[0].Notes)
}

func TestAggregate_InvalidAmountKeptAsText(t *testing.T) {
	agg := NewAggregator(nil)

	bad := entry(flour, "1 cup")
	bad.Quantity.Amount = -1

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{bad, entry(flour, "1 cup")})

	require.Len(t, lines, 1)
	require.Len(t, lines[0].Quantities, 2)
	assert.False(t, lines[0].Quantities[0].IsResolved())
	assert.Equal(t, "1 cup", lines[0].Quantities[0].Raw)
	assert.Equal(t, "cup", lines[0].Quantities[1].Symbol())
}

func TestAggregate_ConversionFailureKeptAsText(t *testing.T) {
	agg := NewAggregator(nil)

	jar := domain.Unit{Symbol: "jar", Family: domain.FamilyVolume}
	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		{Ingredient: flour, Quantity: domain.Resolved(1, jar)},
		entry(flour, "1 cup"),
		entry(flour, "1 cup"),
		entry(salt, "1 tsp"),
	})

	require.Len(t, lines, 2)
	require.Len(t, lines[0].Quantities, 2)

	demoted := lines[0].Quantities[0]
	assert.False(t, demoted.IsResolved())
	assert.Equal(t, "1 jar", demoted.Raw)
	assert.Equal(t, 1, demoted.Count)

	cups := lines[0].Quantities[1]
	assert.Equal(t, "cup", cups.Symbol())
	assert.InDelta(t, 2, cups.Amount, 1e-9)
	assert.Equal(t, "flour: 1 jar, 2 cup", lines[0].String())

	assert.Equal(t, "salt: 1 tsp", lines[1].String())
}

func TestAggregate_HugeAmountKeptAsText(t *testing.T) {
	agg := NewAggregator(nil)

	huge := "1" + strings.Repeat("0", 305) + " gallon"
	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		entry(flour, huge),
		entry(flour, "1 cup"),
		entry(salt, "a pinch"),
	})

	require.Len(t, lines, 2)
	require.Len(t, lines[0].Quantities, 2)
	assert.False(t, lines[0].Quantities[0].IsResolved())
	assert.Equal(t, huge, lines[0].Quantities[0].Raw)
	assert.Equal(t, "cup", lines[0].Quantities[1].Symbol())
	assert.InDelta(t, 1, lines[0].Quantities[1].Amount, 1e-9)

	_, err := json.Marshal(&domain.GroceryList{Lines: lines})
	assert.NoError(t, err)
}

func TestAggregate_SumOverflowKeptAsText(t *testing.T) {
	agg := NewAggregator(nil)

	ml, err := measure.Default().Lookup("ml")
	require.NoError(t, err)
	clove, err := measure.Default().Lookup("clove")
	require.NoError(t, err)

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		{Ingredient: milk, Quantity: domain.Resolved(1e308, ml)},
		{Ingredient: milk, Quantity: domain.Resolved(1e308, ml)},
		{Ingredient: garlic, Quantity: domain.Resolved(1e308, clove)},
		{Ingredient: garlic, Quantity: domain.Resolved(1e308, clove)},
	})

	require.Len(t, lines, 2)
	for _, line := range lines {
		require.Len(t, line.Quantities, 2, line.Ingredient.Name)
		assert.True(t, line.Quantities[0].IsResolved())
		assert.Equal(t, 1e308, line.Quantities[0].Amount)
		assert.False(t, line.Quantities[1].IsResolved())
	}

	_, err = json.Marshal(&domain.GroceryList{Lines: lines})
	assert.NoError(t, err)
}

func TestAggregate_Empty(t *testing.T) {
	agg := NewAggregator(nil)
	assert.Empty(t, agg.Aggregate(nil))
}

func TestAggregate_CustomCatalog(t *testing.T) {
	catalog, err := measure.NewCatalog(domain.Unit{Symbol: "scoop", Family: domain.FamilyCustom})
	require.NoError(t, err)

	agg := NewAggregator(catalog)
	parser := measure.NewParser(catalog)

	lines := agg.Aggregate([]domain.RecipeIngredientEntry{
		{Ingredient: flour, Quantity: parser.Parse("2 scoops")},
		{Ingredient: flour, Quantity: parser.Parse("1 scoop")},
	})

	require.Len(t, lines, 1)
	assert.Equal(t, "flour: 3 scoop", lines[0].String())
}

func largeEntries(n int) []domain.RecipeIngredientEntry {
	raws := []string{"1 cup", "2 tbsp", "100 g", "a pinch", "3", "2 cloves", "0 ml", "to taste"}
	entries := make([]domain.RecipeIngredientEntry, 0, n)
	for i := 0; i < n; i++ {
		ing := domain.Ingredient{ID: int64(i % 37), Name: fmt.Sprintf("ingredient-%d", i%37)}
		entries = append(entries, entry(ing, raws[i%len(raws)]))
	}
	return entries
}

func TestAggregateParallel_MatchesSequential(t *testing.T) {
	agg := NewAggregator(nil)
	entries := largeEntries(500)

	want := agg.Aggregate(entries)

	for _, workers := range []int{0, 1, 2, 4, 16, 100} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, err := agg.AggregateParallel(context.Background(), entries, workers)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got, approx); diff != "" {
				t.Errorf("parallel result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregateParallel_Cancelled(t *testing.T) {
	agg := NewAggregator(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lines, err := agg.AggregateParallel(ctx, largeEntries(50), 4)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, lines)
}
