package measure

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// unitDef is a seed table row.
type unitDef struct {
	unit    domain.Unit
	aliases []string
}

func volume(symbol string, factor float64, aliases ...string) unitDef {
	return unitDef{unit: domain.Unit{Symbol: symbol, Family: domain.FamilyVolume, FactorToBase: factor}, aliases: aliases}
}

func weight(symbol string, factor float64, aliases ...string) unitDef {
	return unitDef{unit: domain.Unit{Symbol: symbol, Family: domain.FamilyWeight, FactorToBase: factor}, aliases: aliases}
}

func count(symbol string, factor float64, aliases ...string) unitDef {
	return unitDef{unit: domain.Unit{Symbol: symbol, Family: domain.FamilyCount, FactorToBase: factor}, aliases: aliases}
}

func custom(symbol string, aliases ...string) unitDef {
	return unitDef{unit: domain.Unit{Symbol: symbol, Family: domain.FamilyCustom}, aliases: aliases}
}

// seedUnits is the built-in unit table. Volume factors use US customary
// measures.
var seedUnits = []unitDef{
	volume("ml", 1, "milliliter", "millilitre", "cc"),
	volume("l", 1000, "liter", "litre"),
	volume("tsp", 4.92892159375, "teaspoon"),
	volume("tbsp", 14.78676478125, "tablespoon", "tbs", "tbl"),
	volume("fl oz", 29.5735295625, "fluid ounce", "floz"),
	volume("cup", 236.5882365, "c"),
	volume("pint", 473.176473, "pt"),
	volume("quart", 946.352946, "qt"),
	volume("gallon", 3785.411784, "gal"),
	volume("dash", 0.616115),
	volume("drop", 0.05),

	weight("mg", 0.001, "milligram"),
	weight("g", 1, "gram", "gr"),
	weight("kg", 1000, "kilogram", "kilo"),
	weight("oz", 28.349523125, "ounce"),
	weight("lb", 453.59237, "pound"),

	count("item", 1, "each", "ea"),
	count("whole", 1),
	count("piece", 1, "pc"),
	count("dozen", 12, "doz"),

	custom("pinch"),
	custom("sprig"),
	custom("clove"),
	custom("can", "tin"),
	custom("head"),
	custom("bunch"),
	custom("slice"),
	custom("stick"),
	custom("handful"),
	custom("package", "pkg", "packet"),
	custom("box"),
	custom("leaf"),
}

// familyBases names the merge target for each convertible family.
var familyBases = map[domain.UnitFamily]string{
	domain.FamilyVolume: "ml",
	domain.FamilyWeight: "g",
	domain.FamilyCount:  "item",
}

// Catalog is an immutable registry of units.
type Catalog struct {
	units []domain.Unit
	index map[string]domain.Unit
	bases map[domain.UnitFamily]domain.Unit
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(fmt.Sprintf("measure: invalid seed table: %v", err))
	}
	return c
})

// Default returns the process-wide catalog built from the seed table.
func Default() *Catalog {
	return defaultCatalog()
}

// NewCatalog builds a catalog from the seed table plus extra units.
// Extra units are usually custom units read from configuration. A symbol
// or alias that is already registered is rejected.
func NewCatalog(extra ...domain.Unit) (*Catalog, error) {
	c := &Catalog{
		index: make(map[string]domain.Unit),
		bases: make(map[domain.UnitFamily]domain.Unit),
	}

	for _, def := range seedUnits {
		if err := c.register(def.unit, def.aliases...); err != nil {
			return nil, err
		}
	}

	for _, u := range extra {
		if u.Family == "" {
			u.Family = domain.FamilyCustom
		}
		if err := validateUnit(u); err != nil {
			return nil, err
		}
		if !u.Family.Convertible() {
			u.FactorToBase = 0
		}
		if err := c.register(u); err != nil {
			return nil, err
		}
	}

	for family, symbol := range familyBases {
		base, ok := c.index[symbol]
		if !ok {
			return nil, fmt.Errorf("base unit %q for %s: %w", symbol, family, domain.ErrNotFound)
		}
		c.bases[family] = base
	}

	return c, nil
}

func validateUnit(u domain.Unit) error {
	if strings.TrimSpace(u.Symbol) == "" {
		return fmt.Errorf("unit symbol is empty: %w", domain.ErrInvalidInput)
	}
	switch u.Family {
	case domain.FamilyVolume, domain.FamilyWeight, domain.FamilyCount:
		if u.FactorToBase <= 0 {
			return fmt.Errorf("unit %q needs a positive factor: %w", u.Symbol, domain.ErrInvalidInput)
		}
	case domain.FamilyCustom:
	default:
		return fmt.Errorf("unit %q has unknown family %q: %w", u.Symbol, u.Family, domain.ErrInvalidInput)
	}
	return nil
}

// register adds a unit under its symbol and aliases.
func (c *Catalog) register(u domain.Unit, aliases ...string) error {
	u.Symbol = normalizeSymbol(u.Symbol)
	for _, name := range append([]string{u.Symbol}, aliases...) {
		key := normalizeSymbol(name)
		if _, exists := c.index[key]; exists {
			return fmt.Errorf("unit %q: %w", key, domain.ErrAlreadyExists)
		}
		c.index[key] = u
	}
	c.units = append(c.units, u)
	return nil
}

// Lookup resolves a unit symbol. Matching ignores case, periods and
// surrounding whitespace, and accepts common plural forms ("cups",
// "leaves", "pinches").
func (c *Catalog) Lookup(symbol string) (domain.Unit, error) {
	key := normalizeSymbol(symbol)
	if key == "" {
		return domain.Unit{}, fmt.Errorf("%w: empty symbol", domain.ErrUnknownUnit)
	}

	for _, candidate := range singularForms(key) {
		if u, ok := c.index[candidate]; ok {
			return u, nil
		}
	}

	return domain.Unit{}, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, symbol)
}

// FamilyBase returns the unit a family is merged into.
// Custom units have no base.
func (c *Catalog) FamilyBase(family domain.UnitFamily) (domain.Unit, error) {
	base, ok := c.bases[family]
	if !ok {
		return domain.Unit{}, fmt.Errorf("%w: family %q has no base unit", domain.ErrIncompatibleFamily, family)
	}
	return base, nil
}

// Units returns all registered units in registration order.
func (c *Catalog) Units() []domain.Unit {
	out := make([]domain.Unit, len(c.units))
	copy(out, c.units)
	return out
}

// normalizeSymbol case-folds, drops periods and collapses whitespace.
// A new Caser is used per call; casers are not safe for concurrent use.
func normalizeSymbol(s string) string {
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.Join(strings.Fields(s), " ")
	return cases.Fold().String(s)
}

// singularForms returns the key followed by plausible singular spellings.
func singularForms(key string) []string {
	forms := []string{key}
	switch {
	case strings.HasSuffix(key, "ies") && len(key) > 3:
		forms = append(forms, strings.TrimSuffix(key, "ies")+"y")
	case strings.HasSuffix(key, "ves") && len(key) > 3:
		forms = append(forms, strings.TrimSuffix(key, "ves")+"f")
	}
	if strings.HasSuffix(key, "es") && len(key) > 2 {
		forms = append(forms, strings.TrimSuffix(key, "es"))
	}
	if strings.HasSuffix(key, "s") && len(key) > 1 {
		forms = append(forms, strings.TrimSuffix(key, "s"))
	}
	return forms
}
