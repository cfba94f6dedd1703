package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"hash/crc32"
)

// HashFunc - Client supplied hash function.
// Given a key and a table size it must deterministically return an index between 0 and tableSize - 1.
// When used as secondary hash function in double hashing the table passes its size minus one and adds
// one to the result, so that the probing stride is never zero.
// Any value returned outside 0 -> tableSize - 1 results in an error of type crt.ProbingAlgorithm down stream.
type HashFunc func(key string, tableSize uint) uint

// SimpleHash - Sums the bytes of the key and reduces it by the table size.
// Poor distribution, but handy when collisions are wanted, e.g. "a", "f" and "k" all land in index 2 of a
// table of size 5.
func SimpleHash(key string, tableSize uint) uint {
	if tableSize == 0 {
		return 0
	}

	var h uint
	for i := 0; i < len(key); i++ {
		h += uint(key[i])
	}

	return h % tableSize
}

// RSHash - Robert Sedgewick's multiplicative string hash
func RSHash(key string, tableSize uint) uint {
	if tableSize == 0 {
		return 0
	}

	var h uint32
	a, b := uint32(63689), uint32(378551)
	for i := 0; i < len(key); i++ {
		h = h*a + uint32(key[i])
		a *= b
	}

	return uint(h) % tableSize
}

// UHash - Universal hash with pseudo random coefficients, each step is reduced by the table size
// to keep the intermediate values small.
func UHash(key string, tableSize uint) uint {
	if tableSize <= 1 {
		return 0
	}

	m := uint64(tableSize)
	var h uint64
	a, b := uint64(31415), uint64(27183)
	for i := 0; i < len(key); i++ {
		h = (a*h + uint64(key[i])) % m
		a = a * b % (m - 1)
	}

	return uint(h)
}

// PJWHash - Peter J. Weinberger's hash as used for ELF symbol tables
func PJWHash(key string, tableSize uint) uint {
	if tableSize == 0 {
		return 0
	}

	var h uint32
	for i := 0; i < len(key); i++ {
		h = (h << 4) + uint32(key[i])
		if g := h & 0xF0000000; g != 0 {
			h ^= g >> 24
			h &^= g
		}
	}

	return uint(h) % tableSize
}

// CRC32Hash - Uses crc32.ChecksumIEEE to create a hash value over the key
func CRC32Hash(key string, tableSize uint) uint {
	if tableSize == 0 {
		return 0
	}

	return uint(crc32.ChecksumIEEE([]byte(key))) % tableSize
}

// XXHash - Uses the 64-bit xxHash digest of the key
func XXHash(key string, tableSize uint) uint {
	if tableSize == 0 {
		return 0
	}

	return uint(xxhash.Sum64String(key) % uint64(tableSize))
}
