// Package array implements a double-ended growable array.
//
// Elements live in a single buffer with free slots on both sides of the live
// region, so Append and Prepend are both amortized O(1). Reverse only flips a
// flag that changes how logical indices map to buffer slots.
package array

import (
	"github.com/RichieSams/containers/util"
	"github.com/sirupsen/logrus"
)

// Array is a growable array with O(1) amortized insertion at both ends and
// O(1) reversal.
//
// Create Arrays with New or NewWithOptions; the zero value is not usable. An
// Array is not safe for concurrent use.
type Array[T comparable] struct {
	buf      []T
	offset   int
	size     int
	reversed bool

	log *logrus.Logger
}

// New creates an empty Array with DefaultCapacity slots.
func New[T comparable]() *Array[T] {
	return newArray[T](defaultOptions())
}

// NewWithOptions creates an empty Array configured by opts.
func NewWithOptions[T comparable](opts ...Option) (*Array[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return newArray[T](o), nil
}

func newArray[T comparable](o options) *Array[T] {
	return &Array[T]{
		buf:    make([]T, o.capacity),
		offset: o.capacity / 2,
		log:    o.log,
	}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the number of slots in the buffer.
func (a *Array[T]) Cap() int { return len(a.buf) }

// IsEmpty reports whether the Array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// IsFull reports whether every slot is in use, so the next insert must grow.
func (a *Array[T]) IsFull() bool { return a.size == len(a.buf) }

// Reversed reports whether logical order currently runs against buffer order.
func (a *Array[T]) Reversed() bool { return a.reversed }

// physical maps a logical index to its buffer slot. The caller checks bounds.
func (a *Array[T]) physical(i int) int {
	if a.reversed {
		return a.offset + a.size - 1 - i
	}
	return a.offset + i
}

func (a *Array[T]) inRange(i int) bool {
	return i >= 0 && i < a.size
}

// Get returns the element at logical index i. ok is false if i is out of range.
func (a *Array[T]) Get(i int) (t T, ok bool) {
	if !a.inRange(i) {
		return
	}
	return a.buf[a.physical(i)], true
}

// Set replaces the element at logical index i. It returns false and leaves
// the Array untouched if i is out of range.
func (a *Array[T]) Set(i int, t T) bool {
	if !a.inRange(i) {
		return false
	}
	a.buf[a.physical(i)] = t
	return true
}

// Append adds t after the last element.
func (a *Array[T]) Append(t T) {
	a.insert(a.reversed, t)
}

// Prepend adds t before the first element.
func (a *Array[T]) Prepend(t T) {
	a.insert(!a.reversed, t)
}

// insert writes t just outside the live region. front selects the low end of
// the buffer, not the logical front.
func (a *Array[T]) insert(front bool, t T) {
	if front {
		if a.offset == 0 {
			a.grow(true)
		}
		a.offset--
		a.buf[a.offset] = t
	} else {
		if a.offset+a.size == len(a.buf) {
			a.grow(false)
		}
		a.buf[a.offset+a.size] = t
	}
	a.size++
}

// grow doubles the buffer and centers the live region in it, leaving slack on
// both sides. Buffer order is kept, so the reversed flag stays valid. When the
// free slots can't be split evenly the extra one goes to the side being grown.
func (a *Array[T]) grow(front bool) {
	newCap := 2 * len(a.buf)
	slack := newCap - a.size
	newOffset := slack / 2
	if front {
		newOffset = (slack + 1) / 2
	}

	a.log.WithFields(logrus.Fields{
		"oldCapacity": len(a.buf),
		"newCapacity": newCap,
		"size":        a.size,
		"oldOffset":   a.offset,
		"newOffset":   newOffset,
	}).Debug("Growing array")

	newBuf := make([]T, newCap)
	copy(newBuf[newOffset:], a.buf[a.offset:a.offset+a.size])

	a.buf = newBuf
	a.offset = newOffset
}

// Reverse reverses the logical order of the elements in O(1).
func (a *Array[T]) Reverse() {
	a.reversed = !a.reversed
}

// RemoveAt removes and returns the element at logical index i. ok is false and
// the Array is unchanged if i is out of range.
//
// Whichever side of the gap holds fewer elements is moved to close it.
func (a *Array[T]) RemoveAt(i int) (t T, ok bool) {
	if !a.inRange(i) {
		return
	}

	var zero T
	p := a.physical(i)
	t = a.buf[p]

	end := a.offset + a.size
	if p-a.offset < end-1-p {
		copy(a.buf[a.offset+1:p+1], a.buf[a.offset:p])
		a.buf[a.offset] = zero
		a.offset++
	} else {
		copy(a.buf[p:end-1], a.buf[p+1:end])
		a.buf[end-1] = zero
	}
	a.size--

	return t, true
}

// Remove removes the first element equal to t, searching in logical order.
// Nothing happens if no element matches.
func (a *Array[T]) Remove(t T) {
	if i := a.Index(t); i >= 0 {
		a.RemoveAt(i)
	}
}

// Index returns the logical index of the first element equal to t, or -1.
func (a *Array[T]) Index(t T) int {
	for i := 0; i < a.size; i++ {
		if a.buf[a.physical(i)] == t {
			return i
		}
	}
	return -1
}

// Shift moves every element dist places toward index 0 (toward the back if
// dist is negative). Elements moved past either end are dropped and vacated
// slots are set to the zero value. Len is unchanged.
func (a *Array[T]) Shift(dist int) {
	var zero T
	n := a.size

	switch {
	case dist >= n || -dist >= n:
		for i := 0; i < n; i++ {
			a.buf[a.physical(i)] = zero
		}
	case dist > 0:
		for i := 0; i < n; i++ {
			if i+dist < n {
				a.buf[a.physical(i)] = a.buf[a.physical(i+dist)]
			} else {
				a.buf[a.physical(i)] = zero
			}
		}
	case dist < 0:
		for i := n - 1; i >= 0; i-- {
			if i+dist >= 0 {
				a.buf[a.physical(i)] = a.buf[a.physical(i+dist)]
			} else {
				a.buf[a.physical(i)] = zero
			}
		}
	}
}

// Rotate moves every element dist places toward index 0 (toward the back if
// dist is negative). Elements moved past one end come back in at the other.
func (a *Array[T]) Rotate(dist int) {
	n := a.size
	if n == 0 {
		return
	}
	k := ((dist % n) + n) % n
	if k == 0 {
		return
	}

	a.reverseRange(0, k)
	a.reverseRange(k, n)
	a.reverseRange(0, n)
}

// reverseRange reverses the logical range [lo, hi) in place.
func (a *Array[T]) reverseRange(lo, hi int) {
	for i, j := lo, hi-1; i < j; i, j = i+1, j-1 {
		pi, pj := a.physical(i), a.physical(j)
		a.buf[pi], a.buf[pj] = a.buf[pj], a.buf[pi]
	}
}

// Values returns a copy of the elements in logical order.
func (a *Array[T]) Values() []T {
	values := make([]T, a.size)
	for i := range values {
		values[i] = a.buf[a.physical(i)]
	}
	return values
}

func (a *Array[T]) String() string {
	return util.Format(a.size, func(i int) T { return a.buf[a.physical(i)] })
}
