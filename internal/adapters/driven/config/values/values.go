// Package values coerces loosely typed configuration values.
//
// TOML decoding yields int64 and []any, the memory store holds whatever
// Go value was set, and "feedme config set" may store strings. Both
// config stores read through these helpers so a key reads the same
// whichever store holds it. A value of the wrong shape reads as the zero
// value.
package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

// CheckKey rejects empty keys and keys with an empty dot segment at
// either end, which cannot be written back as TOML tables.
func CheckKey(key string) error {
	if key == "" || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return fmt.Errorf("invalid config key %q: %w", key, domain.ErrInvalidInput)
	}
	return nil
}

// String returns v if it is a string.
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Int accepts any integer kind, floats (truncated) and decimal strings.
func Int(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// Bool accepts bools and the strings strconv.ParseBool understands.
func Bool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return err == nil && parsed
	default:
		return false
	}
}

// Strings accepts []string and []any, skipping non-string elements.
func Strings(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
