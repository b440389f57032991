// Package position translates sibling indexes into order-key bounds.
//
// Drag-and-drop layers speak in indexes ("card moved to slot 3 of 7");
// the order-key engine speaks in neighbouring keys. This package is the
// bridge: it takes the current sibling keys in ascending order and returns
// the key(s) an inserted or moved item should carry.
package position

import (
	"errors"
	"fmt"
	"slices"

	"github.com/roach88/ordkey/orderkey"
)

var (
	// ErrIndexOutOfRange indicates an index outside the sibling list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnsorted indicates siblings are not strictly ascending.
	ErrUnsorted = errors.New("siblings not in ascending key order")
)

// CheckSorted verifies siblings are valid keys in strictly ascending order.
func CheckSorted(siblings []string) error {
	for i, k := range siblings {
		if err := orderkey.Validate(k); err != nil {
			return fmt.Errorf("sibling %d: %w", i, err)
		}
		if i > 0 && siblings[i-1] >= k {
			return fmt.Errorf("%w: %q at %d is not after %q", ErrUnsorted, k, i, siblings[i-1])
		}
	}
	return nil
}

// Bounds returns the keys on either side of insertion slot index.
// Slot 0 is before the first sibling, slot len(siblings) after the last.
// A missing neighbour is returned as "".
func Bounds(siblings []string, index int) (before, after string, err error) {
	if index < 0 || index > len(siblings) {
		return "", "", fmt.Errorf("%w: slot %d of %d", ErrIndexOutOfRange, index, len(siblings))
	}
	if index > 0 {
		before = siblings[index-1]
	}
	if index < len(siblings) {
		after = siblings[index]
	}
	return before, after, nil
}

// Insert returns n ascending keys for items inserted at slot index.
func Insert(siblings []string, index, n int) ([]string, error) {
	if err := CheckSorted(siblings); err != nil {
		return nil, err
	}
	before, after, err := Bounds(siblings, index)
	if err != nil {
		return nil, err
	}
	return orderkey.NKeysBetween(before, after, n)
}

// InsertOne returns the key for a single item inserted at slot index.
func InsertOne(siblings []string, index int) (string, error) {
	keys, err := Insert(siblings, index, 1)
	if err != nil {
		return "", err
	}
	return keys[0], nil
}

// Move returns the new key for the sibling at from so that it ends up at
// index to once the move is complete. Moving an item onto its own index
// returns its current key.
func Move(siblings []string, from, to int) (string, error) {
	if from < 0 || from >= len(siblings) {
		return "", fmt.Errorf("%w: item %d of %d", ErrIndexOutOfRange, from, len(siblings))
	}
	if to < 0 || to >= len(siblings) {
		return "", fmt.Errorf("%w: target %d of %d", ErrIndexOutOfRange, to, len(siblings))
	}
	if err := CheckSorted(siblings); err != nil {
		return "", err
	}
	if from == to {
		return siblings[from], nil
	}
	rest := slices.Delete(slices.Clone(siblings), from, from+1)
	before, after, err := Bounds(rest, to)
	if err != nil {
		return "", err
	}
	return orderkey.KeyBetween(before, after)
}
