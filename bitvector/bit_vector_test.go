package bitvector

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/RichieSams/containers/array"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bits(bv *BitVector) []int {
	out := make([]int, bv.Len())
	for i := range out {
		out[i], _ = bv.Get(i)
	}
	return out
}

func fromBits(values ...int) *BitVector {
	bv := New()
	for _, v := range values {
		bv.Append(v)
	}
	return bv
}

func TestBitVectorScenario(t *testing.T) {
	bv := fromBits(1, 0, 1)
	require.Equal(t, "[1 0 1]", bv.String())

	bv.Rotate(-1)
	require.Equal(t, []int{1, 1, 0}, bits(bv))

	bv.Shift(1)
	require.Equal(t, []int{1, 0, 0}, bits(bv))
}

func TestBitVectorNew(t *testing.T) {
	bv := New()

	require.Equal(t, 0, bv.Len())
	require.Equal(t, 1, bv.words.Len())
	require.Equal(t, "[]", bv.String())
}

func TestBitVectorNewWithOptions(t *testing.T) {
	bv, err := NewWithOptions(WithWordCapacity(2), WithLogger(nil))
	require.NoError(t, err)
	require.Equal(t, 2, bv.words.Cap())

	_, err = NewWithOptions(WithWordCapacity(-1))
	require.ErrorIs(t, err, array.ErrInvalidCapacity)
}

func TestBitVectorGetOutOfBounds(t *testing.T) {
	bv := fromBits(1, 1)

	for _, i := range []int{-1, 2, 64} {
		_, ok := bv.Get(i)
		assert.False(t, ok, "index %d", i)
		assert.False(t, bv.Set(i), "index %d", i)
		assert.False(t, bv.Unset(i), "index %d", i)

		_, ok = bv.RemoveAt(i)
		assert.False(t, ok, "index %d", i)
	}

	require.Equal(t, []int{1, 1}, bits(bv))
}

func TestBitVectorSetUnset(t *testing.T) {
	bv := New()
	for i := 0; i < 200; i++ {
		bv.Prepend(0)
	}

	require.True(t, bv.Set(3))
	require.True(t, bv.Set(150))
	v, _ := bv.Get(3)
	require.Equal(t, 1, v)
	v, _ = bv.Get(150)
	require.Equal(t, 1, v)
	v, _ = bv.Get(4)
	require.Equal(t, 0, v)

	require.True(t, bv.Unset(3))
	v, _ = bv.Get(3)
	require.Equal(t, 0, v)
	require.Equal(t, 1, bv.Count())
}

func TestBitVectorSetToTreatsNonZeroAsOne(t *testing.T) {
	bv := fromBits(0, 7, -2)
	require.Equal(t, []int{0, 1, 1}, bits(bv))

	require.True(t, bv.SetTo(0, 5))
	require.True(t, bv.SetTo(1, 0))
	require.Equal(t, []int{1, 0, 1}, bits(bv))
}

func TestBitVectorCrossesWordBoundaries(t *testing.T) {
	bv := New()
	model := []int{}

	// 32 bits of slack on each side of the first word, then new words
	for i := 0; i < 150; i++ {
		bit := i % 3 % 2
		bv.Append(bit)
		model = append(model, bit)

		bit = i % 5 % 2
		bv.Prepend(bit)
		model = append([]int{bit}, model...)
	}

	require.Equal(t, model, bits(bv))
	require.Less(t, bv.offset, bitsPerWord)
	require.Equal(t, (bv.offset+bv.size+bitsPerWord-1)/bitsPerWord, bv.words.Len())
}

func TestBitVectorReverse(t *testing.T) {
	bv := fromBits(1, 1, 0, 1, 0, 0)
	for i := 0; i < 70; i++ {
		bv.Prepend(1)
	}
	before := bits(bv)

	bv.Reverse()
	after := bits(bv)
	for i := range before {
		require.Equal(t, before[i], after[len(after)-1-i])
	}

	bv.Reverse()
	require.Equal(t, before, bits(bv))
}

func TestBitVectorReverseMatchesWordArray(t *testing.T) {
	bv := New()
	bv.Reverse()
	require.True(t, bv.words.Reversed())

	bv.Reverse()
	require.False(t, bv.words.Reversed())
}

func TestBitVectorAppendUnderReversal(t *testing.T) {
	bv := fromBits(1, 0)
	bv.Reverse()

	bv.Append(1)
	bv.Prepend(0)
	require.Equal(t, []int{0, 0, 1, 1}, bits(bv))

	// Enough to force new words on both sides while reversed
	for i := 0; i < 100; i++ {
		bv.Append(1)
		bv.Prepend(0)
	}
	bv.Reverse()

	got := bits(bv)
	require.Len(t, got, 204)
	for i := 0; i < 100; i++ {
		require.Equal(t, 1, got[i])
		require.Equal(t, 0, got[len(got)-1-i])
	}
	require.Equal(t, []int{1, 1, 0, 0}, got[100:104])
}

func TestBitVectorAppendRemoveRoundTrip(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		bv := New()
		for i := 0; i < 100; i++ {
			bv.Append(i % 2)
		}
		if reversed {
			bv.Reverse()
		}
		before := bits(bv)
		words := bv.words.Len()

		bv.Append(1)
		bit, ok := bv.RemoveAt(bv.Len() - 1)
		require.True(t, ok)
		require.Equal(t, 1, bit)
		require.Equal(t, before, bits(bv))

		bv.Prepend(1)
		bit, ok = bv.RemoveAt(0)
		require.True(t, ok)
		require.Equal(t, 1, bit)
		require.Equal(t, before, bits(bv))
		require.Equal(t, words, bv.words.Len())
	}
}

func TestBitVectorRemoveReleasesWords(t *testing.T) {
	bv := New()
	for i := 0; i < 300; i++ {
		bv.Append(1)
	}
	require.Greater(t, bv.words.Len(), 4)

	for bv.Len() > 0 {
		_, ok := bv.RemoveAt(0)
		require.True(t, ok)
	}
	require.LessOrEqual(t, bv.words.Len(), 1)

	bv.Prepend(1)
	bv.Append(0)
	require.Equal(t, []int{1, 0}, bits(bv))
}

func TestBitVectorFlipAll(t *testing.T) {
	bv := fromBits(1, 0, 0, 1)

	bv.FlipAll()
	require.Equal(t, []int{0, 1, 1, 0}, bits(bv))

	// Writes are interpreted through the inversion
	bv.Set(0)
	bv.Append(1)
	bv.Prepend(0)
	require.Equal(t, []int{0, 1, 1, 1, 0, 1}, bits(bv))

	bv.FlipAll()
	require.Equal(t, []int{1, 0, 0, 0, 1, 0}, bits(bv))
}

func TestBitVectorShift(t *testing.T) {
	tests := []struct {
		name string
		dist int
		want []int
	}{
		{"zero", 0, []int{1, 1, 0, 1, 1}},
		{"left", 2, []int{0, 1, 1, 0, 0}},
		{"right", -1, []int{0, 1, 1, 0, 1}},
		{"left past end", 5, []int{0, 0, 0, 0, 0}},
		{"right past end", -6, []int{0, 0, 0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bv := fromBits(1, 1, 0, 1, 1)
			bv.Shift(tc.dist)
			require.Equal(t, tc.want, bits(bv))
		})
	}
}

func TestBitVectorShiftInverted(t *testing.T) {
	bv := fromBits(0, 0, 1)
	bv.FlipAll()

	bv.Shift(1)
	require.Equal(t, []int{1, 0, 0}, bits(bv))
}

func TestBitVectorRotateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bv := New()
	for i := 0; i < 130; i++ {
		bv.Prepend(rng.Intn(2))
	}
	bv.Reverse()
	before := bits(bv)

	for _, k := range []int{0, 1, 63, 64, 65, 129, 130, 400, -7} {
		bv.Rotate(k)
		bv.Rotate(-k)
		require.Equal(t, before, bits(bv), "k=%d", k)

		bv.Rotate(k)
		bv.Rotate(bv.Len() - k%bv.Len())
		require.Equal(t, before, bits(bv), "k=%d", k)
	}
}

func TestBitVectorWordEventsLogged(t *testing.T) {
	var out bytes.Buffer
	log := logrus.New()
	log.Out = &out
	log.Level = logrus.DebugLevel

	bv, err := NewWithOptions(WithLogger(log))
	require.NoError(t, err)
	for i := 0; i < 40; i++ {
		bv.Prepend(1)
	}

	require.Contains(t, out.String(), "Adding bit vector word")
}

func TestBitVectorMatchesModel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bv := New()
	model := []int{}

	reverseModel := func() {
		for l, r := 0, len(model)-1; l < r; l, r = l+1, r-1 {
			model[l], model[r] = model[r], model[l]
		}
	}

	for step := 0; step < 20000; step++ {
		bit := rng.Intn(2)
		switch op := rng.Intn(20); {
		case op < 6:
			bv.Append(bit)
			model = append(model, bit)
		case op < 12:
			bv.Prepend(bit)
			model = append([]int{bit}, model...)
		case op < 13:
			bv.Reverse()
			reverseModel()
		case op < 14:
			bv.FlipAll()
			for i := range model {
				model[i] ^= 1
			}
		case op < 17:
			if len(model) == 0 {
				continue
			}
			i := rng.Intn(len(model))
			require.True(t, bv.SetTo(i, bit))
			model[i] = bit
		default:
			if len(model) == 0 {
				continue
			}
			i := rng.Intn(len(model))
			got, ok := bv.RemoveAt(i)
			require.True(t, ok)
			require.Equal(t, model[i], got)
			model = append(model[:i], model[i+1:]...)
		}
	}

	require.Equal(t, len(model), bv.Len())
	require.Equal(t, model, bits(bv))
}
