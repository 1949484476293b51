package model

import "fmt"

// Index is a position in a displayed list. Users address items one-based;
// slices are accessed zero-based.
type Index struct {
	zeroBased int
}

// FromOneBased creates an Index from a user-facing position.
func FromOneBased(n int) (Index, error) {
	if n < 1 {
		return Index{}, fmt.Errorf("one-based index must be at least 1, got %d", n)
	}
	return Index{zeroBased: n - 1}, nil
}

// FromZeroBased creates an Index from a slice position.
func FromZeroBased(n int) (Index, error) {
	if n < 0 {
		return Index{}, fmt.Errorf("zero-based index must not be negative, got %d", n)
	}
	return Index{zeroBased: n}, nil
}

// MustOneBased is FromOneBased for constants and tests; it panics on n < 1.
func MustOneBased(n int) Index {
	idx, err := FromOneBased(n)
	if err != nil {
		panic(err)
	}
	return idx
}

func (i Index) OneBased() int  { return i.zeroBased + 1 }
func (i Index) ZeroBased() int { return i.zeroBased }

func (i Index) String() string {
	return fmt.Sprintf("%d", i.OneBased())
}
