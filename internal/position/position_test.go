package position

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ordkey/orderkey"
)

func TestBounds(t *testing.T) {
	siblings := []string{"a0", "a1", "a2"}

	tests := []struct {
		index         int
		before, after string
	}{
		{0, "", "a0"},
		{1, "a0", "a1"},
		{3, "a2", ""},
	}
	for _, tt := range tests {
		before, after, err := Bounds(siblings, tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.before, before)
		assert.Equal(t, tt.after, after)
	}

	_, _, err := Bounds(siblings, 4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, _, err = Bounds(siblings, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	before, after, err := Bounds(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, before)
	assert.Empty(t, after)
}

func TestCheckSorted(t *testing.T) {
	assert.NoError(t, CheckSorted(nil))
	assert.NoError(t, CheckSorted([]string{"Zz", "a0", "a0V", "a1"}))

	err := CheckSorted([]string{"a1", "a0"})
	assert.ErrorIs(t, err, ErrUnsorted)

	err = CheckSorted([]string{"a0", "a0"})
	assert.ErrorIs(t, err, ErrUnsorted)

	err = CheckSorted([]string{"a0", "a00"})
	assert.True(t, orderkey.IsInvalidKey(err))
}

func TestInsert(t *testing.T) {
	siblings := []string{"a0", "a1", "a2"}

	keys, err := Insert(siblings, 1, 3)
	require.NoError(t, err)
	require.Len(t, keys, 3)

	merged := slices.Concat(siblings[:1], keys, siblings[1:])
	assert.True(t, slices.IsSorted(merged))
	assert.Len(t, slices.Compact(slices.Clone(merged)), len(merged))

	first, err := InsertOne(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, orderkey.Zero, first)

	_, err = Insert(siblings, 9, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Insert([]string{"a1", "a0"}, 0, 1)
	assert.ErrorIs(t, err, ErrUnsorted)
}

func TestMove(t *testing.T) {
	siblings := []string{"a0", "a1", "a2", "a3"}

	tests := []struct {
		name     string
		from, to int
		want     []int // resulting order as original indexes
	}{
		{"down one", 0, 1, []int{1, 0, 2, 3}},
		{"to end", 0, 3, []int{1, 2, 3, 0}},
		{"to start", 3, 0, []int{3, 0, 1, 2}},
		{"up one", 2, 1, []int{0, 2, 1, 3}},
		{"middle", 1, 2, []int{0, 2, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := Move(siblings, tt.from, tt.to)
			require.NoError(t, err)

			keys := slices.Clone(siblings)
			keys[tt.from] = k
			idx := []int{0, 1, 2, 3}
			slices.SortFunc(idx, func(x, y int) int { return orderkey.Compare(keys[x], keys[y]) })
			if diff := cmp.Diff(tt.want, idx); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMove_SameIndex(t *testing.T) {
	k, err := Move([]string{"a0", "a1"}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "a1", k)
}

func TestMove_OutOfRange(t *testing.T) {
	_, err := Move([]string{"a0"}, 1, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = Move([]string{"a0"}, 0, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
