package measure

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// fractionSlash is U+2044, produced by NFKC for vulgar fractions ("½").
const fractionSlash = '⁄'

// Parser turns free-form quantity text into quantities.
type Parser struct {
	catalog *Catalog
}

// NewParser creates a parser backed by the given catalog.
// A nil catalog uses Default().
func NewParser(catalog *Catalog) *Parser {
	if catalog == nil {
		catalog = Default()
	}
	return &Parser{catalog: catalog}
}

// Parse reads quantity text such as "2.5 cups", "1 1/2 tbsp", "½ tsp",
// "500g" or "3 whole".
//
// Parse never fails. Text without a leading number ("a pinch") becomes an
// opaque quantity with amount 0. Text whose unit is not in the catalog
// ("2 large") becomes an opaque quantity that keeps the recovered amount.
// A bare number counts items. The original text is always kept in Raw.
func (p *Parser) Parse(raw string) domain.Quantity {
	work := normalizeText(raw)

	amount, rest, ok := readAmount(work)
	if !ok {
		return domain.Opaque(raw, 0)
	}

	token := strings.TrimSpace(rest)
	token = strings.TrimSpace(strings.TrimPrefix(token, "of "))
	token = strings.TrimSpace(strings.TrimSuffix(token, " of"))
	if token == "" || token == "of" {
		base, err := p.catalog.FamilyBase(domain.FamilyCount)
		if err != nil {
			return domain.Opaque(raw, amount)
		}
		return resolved(raw, amount, base)
	}

	unit, err := p.catalog.Lookup(token)
	if err != nil {
		return domain.Opaque(raw, amount)
	}
	return resolved(raw, amount, unit)
}

func resolved(raw string, amount float64, unit domain.Unit) domain.Quantity {
	q := domain.Resolved(amount, unit)
	q.Raw = raw
	return q
}

// Parse parses text with the default catalog.
func Parse(raw string) domain.Quantity {
	return NewParser(nil).Parse(raw)
}

// normalizeText trims, splits vulgar fractions off the preceding digits,
// applies NFKC and case folding, and collapses whitespace.
func normalizeText(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if r > unicode.MaxASCII {
			if d := norm.NFKC.String(string(r)); strings.ContainsRune(d, fractionSlash) {
				b.WriteByte(' ')
				b.WriteString(d)
				continue
			}
		}
		b.WriteRune(r)
	}

	s := norm.NFKC.String(b.String())
	s = strings.ReplaceAll(s, string(fractionSlash), "/")
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}

// readAmount reads a leading integer, decimal, fraction or mixed number.
// It returns the remaining text and false when there is no valid number.
func readAmount(s string) (float64, string, bool) {
	whole, rest := scanDecimal(s)
	if whole == "" {
		return 0, s, false
	}

	value, err := strconv.ParseFloat(whole, 64)
	if err != nil || math.IsInf(value, 0) {
		return 0, s, false
	}

	// Simple fraction: "1/2".
	if strings.HasPrefix(rest, "/") {
		if strings.Contains(whole, ".") {
			return 0, s, false
		}
		frac, after, ok := readDenominator(value, rest[1:])
		if !ok {
			return 0, s, false
		}
		return frac, after, true
	}

	// Mixed number: "1 1/2". Only integers take a fractional part.
	if !strings.Contains(whole, ".") && strings.HasPrefix(rest, " ") {
		num, after := scanDigits(rest[1:])
		if num != "" && strings.HasPrefix(after, "/") {
			n, err := strconv.ParseFloat(num, 64)
			if err == nil {
				if frac, tail, ok := readDenominator(n, after[1:]); ok && !math.IsInf(value+frac, 0) {
					return value + frac, tail, true
				}
				return 0, s, false
			}
		}
	}

	return value, rest, true
}

// readDenominator divides numerator by the digits at the start of s.
func readDenominator(numerator float64, s string) (float64, string, bool) {
	den, rest := scanDigits(s)
	if den == "" {
		return 0, s, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, s, false
	}
	return numerator / d, rest, true
}

// scanDecimal splits a leading "12", "1.5" or ".5" from s.
func scanDecimal(s string) (string, string) {
	intPart, rest := scanDigits(s)
	if strings.HasPrefix(rest, ".") {
		fracPart, after := scanDigits(rest[1:])
		if fracPart != "" {
			return intPart + "." + fracPart, after
		}
	}
	return intPart, rest
}

func scanDigits(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}
