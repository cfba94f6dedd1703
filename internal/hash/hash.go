package hash

import (
	"github.com/gostonefire/oahashtable/crt"
	"github.com/gostonefire/oahashtable/hashfunc"
)

// ProbingAlgorithm - Interface for the probe sequence engines.
// For a key, HashFunc1 and HashFunc2 are evaluated once and then ProbeIteration is called with increasing
// iteration (0-based) to get the index of the slot to examine in that attempt.
type ProbingAlgorithm interface {
	// SetTableSize - Sets the table size the probe sequence is to cover
	SetTableSize(tableSize int)

	// GetTableSize - Returns the table size the probe sequence is covering
	GetTableSize() int

	// HashFunc1 - Given key it returns the index of the first slot to examine
	HashFunc1(key string) int

	// HashFunc2 - Given key it returns the probing stride, dummy value for algorithms with fixed stride
	HashFunc2(key string) int

	// ProbeIteration - Returns the slot index given values from HashFunc1 and HashFunc2 in iteration
	ProbeIteration(hf1Value, hf2Value, iteration int) int

	// CollisionResolutionTechnique - Returns which of crt.LinearProbing or crt.DoubleHashing that is implemented
	CollisionResolutionTechnique() int
}

// NewProbingAlgorithm - Returns linear probing if no secondary hash function is given, otherwise double hashing
//   - tableSize is the number of slots to probe over
//   - primary is the hash function giving the first slot
//   - secondary is an optional hash function giving the probing stride
func NewProbingAlgorithm(tableSize int, primary, secondary hashfunc.HashFunc) ProbingAlgorithm {
	if secondary == nil {
		return NewLinearProbingAlgorithm(tableSize, primary)
	}

	return NewDoubleHashAlgorithm(tableSize, primary, secondary)
}

// HashValues - Evaluates both hash functions for key and verifies that the values are within their permitted ranges.
// It returns an error of type crt.ProbingAlgorithm if a client supplied hash function misbehaves.
func HashValues(algorithm ProbingAlgorithm, key string) (hf1Value, hf2Value int, err error) {
	tableSize := algorithm.GetTableSize()

	hf1Value = algorithm.HashFunc1(key)
	if hf1Value < 0 || hf1Value >= tableSize {
		err = crt.ProbingAlgorithm{}
		return
	}

	hf2Value = algorithm.HashFunc2(key)
	if algorithm.CollisionResolutionTechnique() == crt.DoubleHashing && (hf2Value < 1 || hf2Value >= tableSize) {
		err = crt.ProbingAlgorithm{}
		return
	}

	return
}
