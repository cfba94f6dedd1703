//go:build unit

package hash

import (
	"fmt"
	"github.com/gostonefire/oahashtable/crt"
	"github.com/gostonefire/oahashtable/hashfunc"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDoubleHashAlgorithm_HashFunc2(t *testing.T) {
	t.Run("stride is never zero", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(7, hashfunc.SimpleHash, hashfunc.SimpleHash)

		for i := 0; i < 100; i++ {
			key := fmt.Sprintf("key-%d", i)

			// Execute
			stride := h.HashFunc2(key)

			// Check
			assert.GreaterOrEqualf(t, stride, 1, "stride at least one for %s", key)
			assert.LessOrEqualf(t, stride, 6, "stride at most table size - 1 for %s", key)
		}

		assert.Equal(t, crt.DoubleHashing, h.CollisionResolutionTechnique(), "reports double hashing")
	})

	t.Run("stride is secondary hash of table size - 1 plus one", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(5, hashfunc.SimpleHash, hashfunc.SimpleHash)

		// Execute
		stride := h.HashFunc2("a")

		// Check
		assert.Equal(t, 97%4+1, stride, "correct stride")
	})
}

func TestDoubleHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through prime sized table", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(13, hashfunc.CRC32Hash, hashfunc.XXHash)
		tableSize := h.GetTableSize()

		for _, key := range []string{"alpha", "beta", "gamma", "delta"} {
			hf1Value := h.HashFunc1(key)
			hf2Value := h.HashFunc2(key)

			visit := make([]int, tableSize)

			// Execute
			for i := 0; i < tableSize; i++ {
				probe := h.ProbeIteration(hf1Value, hf2Value, i)
				assert.GreaterOrEqualf(t, probe, 0, "probe not negative in iteration #%d", i)
				assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
				visit[probe]++
			}

			// Check
			for i := 0; i < tableSize; i++ {
				assert.Equalf(t, 1, visit[i], "exactly one visit in slot #%d for %s", i, key)
			}
		}
	})

	t.Run("first iteration is primary hash", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(11, hashfunc.SimpleHash, hashfunc.SimpleHash)

		// Execute
		probe := h.ProbeIteration(4, 3, 0)

		// Check
		assert.Equal(t, 4, probe, "attempt 0 is primary hash")
		assert.Equal(t, (4+2*3)%11, h.ProbeIteration(4, 3, 2), "attempt 2 is primary plus two strides")
	})
}

func TestHashValues(t *testing.T) {
	t.Run("returns hash values within range", func(t *testing.T) {
		// Prepare
		h := NewProbingAlgorithm(11, hashfunc.SimpleHash, hashfunc.SimpleHash)

		// Execute
		hf1Value, hf2Value, err := HashValues(h, "a")

		// Check
		assert.NoError(t, err, "hash values within range")
		assert.Equal(t, 97%11, hf1Value, "correct primary value")
		assert.Equal(t, 97%10+1, hf2Value, "correct stride")
	})

	t.Run("error when primary hash is out of range", func(t *testing.T) {
		// Prepare
		outOfRange := func(key string, tableSize uint) uint { return tableSize }
		h := NewProbingAlgorithm(11, outOfRange, nil)

		// Execute
		_, _, err := HashValues(h, "a")

		// Check
		assert.ErrorIs(t, err, crt.ProbingAlgorithm{}, "primary out of range")
	})

	t.Run("error when secondary hash is out of range", func(t *testing.T) {
		// Prepare
		outOfRange := func(key string, tableSize uint) uint { return tableSize }
		h := NewProbingAlgorithm(11, hashfunc.SimpleHash, outOfRange)

		// Execute
		_, _, err := HashValues(h, "a")

		// Check
		assert.ErrorIs(t, err, crt.ProbingAlgorithm{}, "secondary out of range")
	})

	t.Run("linear probing ignores secondary range", func(t *testing.T) {
		// Prepare
		h := NewProbingAlgorithm(11, hashfunc.SimpleHash, nil)

		// Execute
		_, hf2Value, err := HashValues(h, "a")

		// Check
		assert.NoError(t, err, "no error for linear probing")
		assert.Equal(t, 0, hf2Value, "dummy stride")
	})
}
