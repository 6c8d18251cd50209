package domain

import (
	"strconv"
	"strings"
)

// Quantity is an amount of some unit, parsed from free-form recipe text.
//
// A Quantity is either resolved (Unit is set) or opaque (Unit is nil).
// Opaque quantities keep the original text in Raw so it can be shown
// verbatim. An opaque quantity may still carry the Amount recovered from
// its numeric prefix when only the unit was unrecognised.
type Quantity struct {
	// Amount is never negative.
	Amount float64 `json:"amount"`

	// Unit is nil for opaque quantities.
	Unit *Unit `json:"unit,omitempty"`

	// Raw is the original text, retained verbatim.
	Raw string `json:"raw,omitempty"`
}

// Resolved returns a quantity of a known unit.
func Resolved(amount float64, unit Unit) Quantity {
	u := unit
	return Quantity{Amount: amount, Unit: &u}
}

// Opaque returns an unresolved quantity that preserves raw text.
func Opaque(raw string, amount float64) Quantity {
	return Quantity{Amount: amount, Raw: raw}
}

// IsResolved reports whether the quantity has a known unit.
func (q Quantity) IsResolved() bool {
	return q.Unit != nil
}

// Symbol returns the unit symbol, or "" for opaque quantities.
func (q Quantity) Symbol() string {
	if q.Unit == nil {
		return ""
	}
	return q.Unit.Symbol
}

// String renders "amount symbol" for resolved quantities using the shortest
// amount representation that parses back to the same value. Opaque
// quantities render as their raw text.
func (q Quantity) String() string {
	if q.Unit == nil {
		return q.Raw
	}
	return FormatAmount(q.Amount) + " " + q.Unit.Symbol
}

// Display renders the quantity for people, rounding the amount to two
// decimal places.
func (q Quantity) Display() string {
	if q.Unit == nil {
		return q.Raw
	}
	return DisplayAmount(q.Amount) + " " + q.Unit.Symbol
}

// FormatAmount renders an amount exactly, without a trailing ".0".
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// DisplayAmount renders an amount rounded to two decimals with trailing
// zeros trimmed.
func DisplayAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
