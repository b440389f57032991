package orderkey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerLength(t *testing.T) {
	tests := []struct {
		head byte
		want int
	}{
		{'a', 2},
		{'b', 3},
		{'z', 27},
		{'Z', 2},
		{'Y', 3},
		{'A', 27},
	}
	for _, tt := range tests {
		t.Run(string(tt.head), func(t *testing.T) {
			got, err := IntegerLength(tt.head)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntegerLength_InvalidHead(t *testing.T) {
	for _, head := range []byte{'0', '9', '-', ' ', '{', '@'} {
		_, err := IntegerLength(head)
		assert.True(t, IsInvalidKey(err), "head %q", head)
	}
}

func TestValidateInteger(t *testing.T) {
	assert.NoError(t, ValidateInteger("a0"))
	assert.NoError(t, ValidateInteger("b12"))
	assert.NoError(t, ValidateInteger("Zz"))
	assert.NoError(t, ValidateInteger(Smallest))

	for _, bad := range []string{"", "a", "a00", "b12x", "Z", "0a", "a-"} {
		err := ValidateInteger(bad)
		assert.True(t, IsInvalidKey(err), "ValidateInteger(%q) = %v", bad, err)
	}
}

func TestIncrementInteger(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a0", "a1"},
		{"a9", "aA"},
		{"aZ", "aa"},
		{"az", "b00"},
		{"b0z", "b10"},
		{"Zy", "Zz"},
		{"Zz", "a0"},
		{"Yzz", "Z0"},
		{"A" + strings.Repeat("z", 26), "B" + strings.Repeat("0", 25)},
		{"y" + strings.Repeat("z", 25), "z" + strings.Repeat("0", 26)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok, err := IncrementInteger(tt.in)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIncrementInteger_Largest(t *testing.T) {
	got, ok, err := IncrementInteger(strings.Repeat("z", 27))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestDecrementInteger(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a1", "a0"},
		{"a0", "Zz"},
		{"b00", "az"},
		{"b10", "b0z"},
		{"Z0", "Yzz"},
		{"B" + strings.Repeat("0", 25), "A" + strings.Repeat("z", 26)},
		{"A" + strings.Repeat("0", 25) + "1", Smallest},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok, err := DecrementInteger(tt.in)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecrementInteger_Smallest(t *testing.T) {
	got, ok, err := DecrementInteger(Smallest)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestIncrementDecrement_Invalid(t *testing.T) {
	_, _, err := IncrementInteger("a00")
	assert.True(t, IsInvalidKey(err))
	_, _, err = DecrementInteger("!")
	assert.True(t, IsInvalidKey(err))
}

// Walks several thousand integers on each side of zero, crossing head
// boundaries in both directions, and checks increment and decrement undo
// each other.
func TestIncrementDecrement_RoundTrip(t *testing.T) {
	const steps = 5000

	x := Zero
	for i := 0; i < steps; i++ {
		next, ok, err := IncrementInteger(x)
		require.NoError(t, err)
		require.True(t, ok)
		require.Greater(t, next, x)

		back, ok, err := DecrementInteger(next)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, x, back, "decrement(increment(%q))", x)
		x = next
	}
	assert.Equal(t, byte('c'), x[0])

	x = Zero
	for i := 0; i < steps; i++ {
		prev, ok, err := DecrementInteger(x)
		require.NoError(t, err)
		require.True(t, ok)
		require.Less(t, prev, x)

		back, ok, err := IncrementInteger(prev)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, x, back, "increment(decrement(%q))", x)
		x = prev
	}
	assert.Equal(t, byte('X'), x[0])
}

func TestIncrementDecrement_RoundTripAtExtremes(t *testing.T) {
	for _, x := range []string{
		Smallest,
		"A" + strings.Repeat("z", 26),
		"y" + strings.Repeat("z", 25),
		"z" + strings.Repeat("0", 26),
		strings.Repeat("z", 26) + "y",
	} {
		next, ok, err := IncrementInteger(x)
		require.NoError(t, err)
		require.True(t, ok, x)
		back, ok, err := DecrementInteger(next)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, x, back)
	}
}

func TestIntegerPart(t *testing.T) {
	got, err := IntegerPart("a0V")
	require.NoError(t, err)
	assert.Equal(t, "a0", got)

	got, err = IntegerPart("b12")
	require.NoError(t, err)
	assert.Equal(t, "b12", got)

	_, err = IntegerPart("b1")
	assert.True(t, IsInvalidKey(err))

	_, err = IntegerPart("")
	assert.True(t, IsInvalidKey(err))
}
