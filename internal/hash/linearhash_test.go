//go:build unit

package hash

import (
	"github.com/gostonefire/oahashtable/crt"
	"github.com/gostonefire/oahashtable/hashfunc"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLinearProbingAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingAlgorithm(10, hashfunc.SimpleHash)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, 10, tableSize, "correct tableSize value")
	})
}

func TestLinearProbingAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingAlgorithm(10, hashfunc.SimpleHash)

		// Execute
		h.SetTableSize(23)

		// Check
		assert.Equal(t, 23, h.GetTableSize(), "correct tableSize value")
		assert.Equal(t, 97%23, h.HashFunc1("a"), "primary hash uses new table size")
	})
}

func TestLinearProbingAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid slot index", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingAlgorithm(5, hashfunc.SimpleHash)

		// Execute
		index := h.HashFunc1("k")

		// Check
		assert.Equal(t, 2, index, "create a valid slot index")
		assert.Equal(t, crt.LinearProbing, h.CollisionResolutionTechnique(), "reports linear probing")
	})
}

func TestLinearProbingAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingAlgorithm(16, hashfunc.CRC32Hash)
		tableSize := h.GetTableSize()

		index := h.HashFunc1("some key")

		visit := make([]int, tableSize)

		// Execute
		for i := 0; i < tableSize; i++ {
			probe := h.ProbeIteration(index, h.HashFunc2("some key"), i)
			assert.GreaterOrEqualf(t, probe, 0, "probe not negative in iteration #%d", i)
			assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
			visit[probe]++
		}

		// Check
		for i := 0; i < tableSize; i++ {
			assert.Equalf(t, 1, visit[i], "exactly one visit in slot #%d", i)
		}
	})

	t.Run("steps one slot at a time and wraps", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingAlgorithm(5, hashfunc.SimpleHash)

		// Execute
		probes := []int{
			h.ProbeIteration(2, 0, 0),
			h.ProbeIteration(2, 0, 1),
			h.ProbeIteration(2, 0, 2),
			h.ProbeIteration(2, 0, 3),
			h.ProbeIteration(2, 0, 4),
		}

		// Check
		assert.Equal(t, []int{2, 3, 4, 0, 1}, probes, "linear sequence")
	})
}
