package bitvector

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

var (
	// ErrInvalidSize is returned when a vector is requested with a negative length.
	ErrInvalidSize = errors.New("size must not be negative")
	// ErrPositionOutOfRange is returned when a bitmap holds a position the vector can't address.
	ErrPositionOutOfRange = errors.New("position out of range")
)

// ToRoaring returns a bitmap holding the index of every bit set to 1.
func (bv *BitVector) ToRoaring() *roaring.Bitmap {
	bm := roaring.New()
	for i := 0; i < bv.size; i++ {
		if bv.read(i) {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// FromRoaring creates a vector of size bits where bit i is 1 if bm contains i.
func FromRoaring(bm *roaring.Bitmap, size int, opts ...Option) (*BitVector, error) {
	if size < 0 {
		return nil, fmt.Errorf("Cannot create a vector of %d bits - %w", size, ErrInvalidSize)
	}
	if !bm.IsEmpty() && uint64(bm.Maximum()) >= uint64(size) {
		return nil, fmt.Errorf("Bitmap position %d does not fit in a vector of %d bits - %w", bm.Maximum(), size, ErrPositionOutOfRange)
	}

	bv, err := NewWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	for i := 0; i < size; i++ {
		bv.Append(0)
	}

	it := bm.Iterator()
	for it.HasNext() {
		bv.write(int(it.Next()), true)
	}

	return bv, nil
}
