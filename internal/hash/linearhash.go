package hash

import (
	"github.com/gostonefire/oahashtable/crt"
	"github.com/gostonefire/oahashtable/hashfunc"
)

// LinearProbingAlgorithm - Probes one slot at a time starting from the slot given by the primary hash function,
// wrapping around at the end of the table.
type LinearProbingAlgorithm struct {
	tableSize int
	primary   hashfunc.HashFunc
}

// NewLinearProbingAlgorithm - Returns a pointer to a new LinearProbingAlgorithm instance
func NewLinearProbingAlgorithm(tableSize int, primary hashfunc.HashFunc) *LinearProbingAlgorithm {
	return &LinearProbingAlgorithm{tableSize: tableSize, primary: primary}
}

// SetTableSize - Sets the table size for the probe sequence
func (L *LinearProbingAlgorithm) SetTableSize(tableSize int) {
	L.tableSize = tableSize
}

// GetTableSize - Returns the table size the probe sequence is covering
func (L *LinearProbingAlgorithm) GetTableSize() int {
	return L.tableSize
}

// HashFunc1 - Given key it generates an index between 0 and table size - 1
func (L *LinearProbingAlgorithm) HashFunc1(key string) int {
	return int(L.primary(key, uint(L.tableSize)))
}

// HashFunc2 - Not used in linear probing, returns a dummy value
func (L *LinearProbingAlgorithm) HashFunc2(key string) int {
	return 0
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int) int {
	probe := hf1Value + iteration%L.tableSize
	if probe >= L.tableSize {
		probe -= L.tableSize
	}

	return probe
}

// CollisionResolutionTechnique - Returns crt.LinearProbing
func (L *LinearProbingAlgorithm) CollisionResolutionTechnique() int {
	return crt.LinearProbing
}
