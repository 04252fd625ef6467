package bitvector

import (
	"fmt"

	"github.com/RichieSams/containers/array"
	"github.com/RichieSams/containers/util"
	"github.com/sirupsen/logrus"
)

const bitsPerWord = 64

// BitVector is a growable sequence of bits packed 64 to a word.
//
// Bits can be added at either end in amortized O(1). Reverse and FlipAll are
// O(1); they only toggle flags that every read and write goes through.
//
// Positions are tracked in the "forward frame", the order the bits would have
// if the vector were not reversed. offset is where bit 0 of the forward frame
// sits inside the first forward word. Reverse also reverses the word array, so
// the word array's logical order always matches the forward frame when the
// vector isn't reversed and runs against it when it is.
type BitVector struct {
	words    *array.Array[uint64]
	size     int
	offset   int
	reversed bool
	inverted bool

	log *logrus.Logger
}

// New creates an empty BitVector with one word already allocated.
func New() *BitVector {
	return newBitVector(array.New[uint64](), util.DiscardLogger())
}

// NewWithOptions creates an empty BitVector configured by opts.
func NewWithOptions(opts ...Option) (*BitVector, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	words, err := array.NewWithOptions[uint64](array.WithCapacity(o.wordCapacity), array.WithLogger(o.log))
	if err != nil {
		return nil, fmt.Errorf("Failed to create word storage - %w", err)
	}

	return newBitVector(words, o.log), nil
}

func newBitVector(words *array.Array[uint64], log *logrus.Logger) *BitVector {
	// Start in the middle of a word so either end can take bits before a new
	// word is needed
	words.Append(0)

	return &BitVector{
		words:  words,
		offset: bitsPerWord / 2,
		log:    log,
	}
}

// Len returns the number of bits.
func (bv *BitVector) Len() int { return bv.size }

// locate maps logical bit i to the index of its word in bv.words and the mask
// selecting it inside that word. The caller checks bounds.
func (bv *BitVector) locate(i int) (int, uint64) {
	pos := bv.offset + i
	if bv.reversed {
		pos = bv.offset + bv.size - 1 - i
	}

	word := pos / bitsPerWord
	if bv.reversed {
		word = bv.words.Len() - 1 - word
	}

	return word, 1 << (pos % bitsPerWord)
}

func (bv *BitVector) read(i int) bool {
	w, mask := bv.locate(i)
	word, _ := bv.words.Get(w)
	return (word&mask != 0) != bv.inverted
}

func (bv *BitVector) write(i int, bit bool) {
	w, mask := bv.locate(i)
	word, _ := bv.words.Get(w)

	if bit != bv.inverted {
		word |= mask
	} else {
		word &^= mask
	}

	bv.words.Set(w, word)
}

func (bv *BitVector) inRange(i int) bool {
	return i >= 0 && i < bv.size
}

// Get returns the bit at index i as 0 or 1. ok is false if i is out of range.
func (bv *BitVector) Get(i int) (bit int, ok bool) {
	if !bv.inRange(i) {
		return
	}
	if bv.read(i) {
		return 1, true
	}
	return 0, true
}

// Set sets the bit at index i to 1. It returns false if i is out of range.
func (bv *BitVector) Set(i int) bool {
	return bv.SetTo(i, 1)
}

// Unset sets the bit at index i to 0. It returns false if i is out of range.
func (bv *BitVector) Unset(i int) bool {
	return bv.SetTo(i, 0)
}

// SetTo sets the bit at index i to 1 if bit is non-zero and 0 otherwise. It
// returns false and leaves the vector untouched if i is out of range.
func (bv *BitVector) SetTo(i int, bit int) bool {
	if !bv.inRange(i) {
		return false
	}
	bv.write(i, bit != 0)
	return true
}

// Append adds a bit after the last one. Any non-zero bit is stored as 1.
func (bv *BitVector) Append(bit int) {
	if bv.reversed {
		bv.growFront()
	} else {
		bv.growBack()
	}
	bv.write(bv.size-1, bit != 0)
}

// Prepend adds a bit before the first one. Any non-zero bit is stored as 1.
func (bv *BitVector) Prepend(bit int) {
	if bv.reversed {
		bv.growBack()
	} else {
		bv.growFront()
	}
	bv.write(0, bit != 0)
}

// growFront makes room for one bit at the front of the forward frame.
func (bv *BitVector) growFront() {
	if bv.offset == 0 {
		bv.addWord(true)
		bv.offset = bitsPerWord
	}
	bv.offset--
	bv.size++
}

// growBack makes room for one bit at the back of the forward frame.
func (bv *BitVector) growBack() {
	if bv.offset+bv.size == bv.words.Len()*bitsPerWord {
		bv.addWord(false)
	}
	bv.size++
}

// shrinkFront drops the bit at the front of the forward frame.
func (bv *BitVector) shrinkFront() {
	bv.offset++
	bv.size--
	if bv.offset == bitsPerWord {
		bv.removeWord(true)
		bv.offset = 0
	}
}

// shrinkBack drops the bit at the back of the forward frame.
func (bv *BitVector) shrinkBack() {
	bv.size--
	if bv.words.Len() > 0 && bv.offset+bv.size <= (bv.words.Len()-1)*bitsPerWord {
		bv.removeWord(false)
	}
}

// addWord adds an empty word at the front or back of the forward frame.
func (bv *BitVector) addWord(front bool) {
	bv.log.WithFields(logrus.Fields{
		"front": front,
		"words": bv.words.Len(),
		"size":  bv.size,
	}).Debug("Adding bit vector word")

	if front != bv.reversed {
		bv.words.Prepend(0)
	} else {
		bv.words.Append(0)
	}
}

// removeWord releases the word at the front or back of the forward frame.
func (bv *BitVector) removeWord(front bool) {
	bv.log.WithFields(logrus.Fields{
		"front": front,
		"words": bv.words.Len(),
		"size":  bv.size,
	}).Debug("Releasing bit vector word")

	if front != bv.reversed {
		bv.words.RemoveAt(0)
	} else {
		bv.words.RemoveAt(bv.words.Len() - 1)
	}
}

// RemoveAt removes the bit at index i and returns it. ok is false and the
// vector is unchanged if i is out of range.
func (bv *BitVector) RemoveAt(i int) (bit int, ok bool) {
	if bit, ok = bv.Get(i); !ok {
		return
	}

	if i < bv.size-1-i {
		for j := i; j > 0; j-- {
			bv.write(j, bv.read(j-1))
		}
		if bv.reversed {
			bv.shrinkBack()
		} else {
			bv.shrinkFront()
		}
	} else {
		for j := i; j < bv.size-1; j++ {
			bv.write(j, bv.read(j+1))
		}
		if bv.reversed {
			bv.shrinkFront()
		} else {
			bv.shrinkBack()
		}
	}

	return bit, true
}

// Reverse reverses the order of the bits in O(1).
func (bv *BitVector) Reverse() {
	bv.reversed = !bv.reversed
	bv.words.Reverse()
}

// FlipAll inverts every bit in O(1).
func (bv *BitVector) FlipAll() {
	bv.inverted = !bv.inverted
}

// Shift moves every bit dist places toward index 0 (toward the back if dist is
// negative). Bits moved past either end are dropped and vacated bits become 0.
func (bv *BitVector) Shift(dist int) {
	n := bv.size

	switch {
	case dist >= n || -dist >= n:
		for i := 0; i < n; i++ {
			bv.write(i, false)
		}
	case dist > 0:
		for i := 0; i < n; i++ {
			bv.write(i, i+dist < n && bv.read(i+dist))
		}
	case dist < 0:
		for i := n - 1; i >= 0; i-- {
			bv.write(i, i+dist >= 0 && bv.read(i+dist))
		}
	}
}

// Rotate moves every bit dist places toward index 0 (toward the back if dist is
// negative). Bits moved past one end come back in at the other.
func (bv *BitVector) Rotate(dist int) {
	n := bv.size
	if n == 0 {
		return
	}
	k := ((dist % n) + n) % n
	if k == 0 {
		return
	}

	bv.reverseRange(0, k)
	bv.reverseRange(k, n)
	bv.reverseRange(0, n)
}

func (bv *BitVector) reverseRange(lo, hi int) {
	for i, j := lo, hi-1; i < j; i, j = i+1, j-1 {
		bi, bj := bv.read(i), bv.read(j)
		if bi != bj {
			bv.write(i, bj)
			bv.write(j, bi)
		}
	}
}

// Count returns the number of bits set to 1.
func (bv *BitVector) Count() int {
	count := 0
	for i := 0; i < bv.size; i++ {
		if bv.read(i) {
			count++
		}
	}
	return count
}

func (bv *BitVector) String() string {
	return util.Format(bv.size, func(i int) int {
		bit, _ := bv.Get(i)
		return bit
	})
}
