package readers

import (
	"math"
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestSource_Repeatability(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64(), "mismatch at index %d", i)
	}
	assert.Check(t, NewSource(1).Uint64() != NewSource(2).Uint64())
}

func TestSource_ReadSplitting(t *testing.T) {
	whole := make([]byte, 40)
	_, err := DeterministicRandomReader(7).Read(whole)
	assert.NilError(t, err)

	r := DeterministicRandomReader(7)
	parts := make([]byte, 40)
	for _, span := range [][2]int{{0, 3}, {3, 20}, {20, 21}, {21, 40}} {
		_, err := r.Read(parts[span[0]:span[1]])
		assert.NilError(t, err)
	}
	assert.DeepEqual(t, whole, parts)
}

func TestSource_Intn(t *testing.T) {
	s := NewSource(99)
	seen := make(map[int]bool)
	for _, v := range s.Ints(500, 10) {
		assert.Assert(t, v >= 0 && v < 10, "value %d out of range", v)
		seen[v] = true
	}
	assert.Check(t, is.Len(seen, 10))
	assert.Check(t, is.Panics(func() { s.Intn(0) }))
}

func TestSource_FlipBias(t *testing.T) {
	const totalFlips = 256
	testCases := []struct {
		bits          int
		expectedHeads int
	}{
		{1, 128},
		{2, 64},
		{3, 32},
		{4, 16},
	}
	for _, tc := range testCases {
		s := NewSource(12345)
		count := 0
		for i := 0; i < totalFlips; i++ {
			if s.Flip(tc.bits) {
				count++
			}
		}
		difference := math.Abs(float64(count - tc.expectedHeads))
		epsilon := max(float64(tc.expectedHeads)*0.25, 8)
		if difference > epsilon {
			t.Errorf("with %d bits, expected %d heads, got %d (difference %f, tolerance %f)", tc.bits, tc.expectedHeads, count, difference, epsilon)
		}
	}
	assert.Check(t, NewSource(1).Flip(0))
}
