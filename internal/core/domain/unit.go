package domain

// UnitFamily groups units that can be converted into one another.
type UnitFamily string

// Unit families.
const (
	// FamilyVolume covers liquid and dry volume measures. Base unit: ml.
	FamilyVolume UnitFamily = "volume"

	// FamilyWeight covers mass measures. Base unit: g.
	FamilyWeight UnitFamily = "weight"

	// FamilyCount covers discrete counts. Base unit: item.
	FamilyCount UnitFamily = "count"

	// FamilyCustom covers kitchen measures with no fixed size
	// (pinch, sprig, clove). Custom units never convert.
	FamilyCustom UnitFamily = "custom"
)

// Convertible reports whether units of this family carry a conversion factor.
func (f UnitFamily) Convertible() bool {
	switch f {
	case FamilyVolume, FamilyWeight, FamilyCount:
		return true
	default:
		return false
	}
}

// Unit is a registered measurement unit.
type Unit struct {
	// Symbol is the canonical spelling, e.g. "cup", "g", "pinch".
	Symbol string `json:"symbol"`

	// Family is the unit family used for merge eligibility.
	Family UnitFamily `json:"family"`

	// FactorToBase scales an amount in this unit to the family base unit.
	// Zero for custom units.
	FactorToBase float64 `json:"factor_to_base,omitempty"`
}

// String returns the unit symbol.
func (u Unit) String() string {
	return u.Symbol
}

// SameAs reports whether two units are the identical registered unit.
func (u Unit) SameAs(other Unit) bool {
	return u.Symbol == other.Symbol && u.Family == other.Family
}
