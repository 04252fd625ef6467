package array

import (
	"cmp"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Sort sorts a into ascending logical order.
func Sort[T constraints.Ordered](a *Array[T]) {
	a.SortFunc(cmp.Compare[T])
}

// SortFunc sorts the elements so that reading forward yields ascending order
// under compare. The sort is not stable.
//
// The live part of the buffer is sorted in place. When the Array is reversed
// the buffer is sorted descending instead, and the reversed flag is left alone.
func (a *Array[T]) SortFunc(compare func(x, y T) int) {
	live := a.buf[a.offset : a.offset+a.size]
	if a.reversed {
		slices.SortFunc(live, func(x, y T) int { return compare(y, x) })
		return
	}
	slices.SortFunc(live, compare)
}
