package values

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/feedme/internal/core/domain"
)

func TestCheckKey(t *testing.T) {
	assert.NoError(t, CheckKey("grocery.workers"))
	assert.NoError(t, CheckKey("workers"))

	for _, key := range []string{"", ".workers", "grocery."} {
		assert.ErrorIs(t, CheckKey(key), domain.ErrInvalidInput, "key %q", key)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{4, 4},
		{int64(8), 8},
		{int32(2), 2},
		{float64(3.9), 3},
		{"12", 12},
		{" 5 ", 5},
		{"five", 0},
		{true, 0},
		{nil, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Int(tt.in), "Int(%#v)", tt.in)
	}
}

func TestBool(t *testing.T) {
	assert.True(t, Bool(true))
	assert.True(t, Bool("true"))
	assert.True(t, Bool("1"))
	assert.False(t, Bool("yes"))
	assert.False(t, Bool(1))
	assert.False(t, Bool(nil))
}

func TestString(t *testing.T) {
	assert.Equal(t, "dir", String("dir"))
	assert.Equal(t, "", String(3))
	assert.Equal(t, "", String(nil))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Strings([]string{"a", "b"}))
	assert.Equal(t, []string{"scoop", "knob"}, Strings([]any{"scoop", 3, "knob"}))
	assert.Empty(t, Strings([]any{}))
	assert.Nil(t, Strings("scoop"))
	assert.Nil(t, Strings(nil))
}
