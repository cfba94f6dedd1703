package hash

import (
	"github.com/gostonefire/oahashtable/crt"
	"github.com/gostonefire/oahashtable/hashfunc"
)

// DoubleHashAlgorithm - Probes with a stride given by the secondary hash function. The stride is
// secondary(key, tableSize - 1) + 1, hence never zero, and together with a prime table size every slot
// is visited once before the sequence repeats.
type DoubleHashAlgorithm struct {
	tableSize int
	primary   hashfunc.HashFunc
	secondary hashfunc.HashFunc
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
func NewDoubleHashAlgorithm(tableSize int, primary, secondary hashfunc.HashFunc) *DoubleHashAlgorithm {
	return &DoubleHashAlgorithm{tableSize: tableSize, primary: primary, secondary: secondary}
}

// SetTableSize - Sets the table size for the probe sequence
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int) {
	D.tableSize = tableSize
}

// GetTableSize - Returns the table size the probe sequence is covering
func (D *DoubleHashAlgorithm) GetTableSize() int {
	return D.tableSize
}

// HashFunc1 - Given key it generates an index between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(key string) int {
	return int(D.primary(key, uint(D.tableSize)))
}

// HashFunc2 - Given key it generates the probing stride between 1 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc2(key string) int {
	return int(D.secondary(key, uint(D.tableSize-1))) + 1
}

// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
// Since this function will be called repeatedly in a collision resolution situation, and the actual hash values
// from the HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function takes those values
// rather than using the actual key as input.
func (D *DoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int) int {
	return (hf1Value + (iteration%D.tableSize)*hf2Value) % D.tableSize
}

// CollisionResolutionTechnique - Returns crt.DoubleHashing
func (D *DoubleHashAlgorithm) CollisionResolutionTechnique() int {
	return crt.DoubleHashing
}
