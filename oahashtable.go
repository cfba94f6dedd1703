package oahashtable

import (
	"fmt"
	"github.com/gostonefire/oahashtable/hashfunc"
	"github.com/gostonefire/oahashtable/internal/conf"
	"github.com/gostonefire/oahashtable/internal/hash"
	"github.com/gostonefire/oahashtable/internal/utils"
	"math"
)

// MaxKeyLength - Maximum number of bytes in a key
const MaxKeyLength = conf.MaxKeyLength

// Config - Configuration for a Table, it can not be changed once the table is created
//   - InitialTableSize is the number of slots to start with
//   - PrimaryHashFunc is the hash function giving the first slot to examine for a key, it is required
//   - SecondaryHashFunc is an optional hash function giving the probing stride, if nil linear probing is used
//   - MaxLoadFactor is the load factor the table is kept at or below, zero means 0.5
//   - GrowthFactor is the factor the table size is multiplied with when growing, zero means 2.0
//   - DeletionPolicy is Mark (default) or Pack
//   - FreeProc is an optional function called with every value that is evicted from the table
type Config[T any] struct {
	InitialTableSize  int
	PrimaryHashFunc   hashfunc.HashFunc
	SecondaryHashFunc hashfunc.HashFunc
	MaxLoadFactor     float64
	GrowthFactor      float64
	DeletionPolicy    DeletionPolicy
	FreeProc          func(value T)
}

// Stats - Statistics on the table usage
//   - Count is the number of items stored
//   - TableSize is the total number of slots
//   - Probes is the number of slots examined by Insert, Find and Remove
//   - RehashProbes is the number of slots examined while rehashing during growth, kept apart from Probes
//   - Expansions is the number of times the table has grown
//   - Deleted is the number of tombstones currently in the table
//   - CollisionResolutionTechnique is crt.LinearProbing or crt.DoubleHashing
//   - PrimaryHashFunc and SecondaryHashFunc are the configured hash functions
type Stats struct {
	Count                        int
	TableSize                    int
	Probes                       int
	RehashProbes                 int
	Expansions                   int
	Deleted                      int
	CollisionResolutionTechnique int
	PrimaryHashFunc              hashfunc.HashFunc
	SecondaryHashFunc            hashfunc.HashFunc
}

// counters - Diagnostic counters, updated also by lookups
type counters struct {
	probes       int
	rehashProbes int
	expansions   int
}

// Table - Open addressing hash table with string keys of bounded length.
// A Table is not safe for concurrent use, callers must serialize all calls.
type Table[T any] struct {
	config        Config[T]
	slots         []Slot[T]
	hashAlgorithm hash.ProbingAlgorithm
	count         int
	nDeleted      int
	stats         counters
	closed        bool
}

// New - Returns a new table with all slots unoccupied.
//   - config is a Config struct, zero valued MaxLoadFactor and GrowthFactor are replaced by defaults
//
// It returns:
//   - table is a pointer to the created Table
//   - err is a standard error if the configuration is invalid
func New[T any](config Config[T]) (table *Table[T], err error) {
	// Check if a primary hash function is given
	if config.PrimaryHashFunc == nil {
		err = fmt.Errorf("primary hash function can not be nil")
		return
	}

	// Check if the initial table size is valid
	if config.InitialTableSize <= 0 {
		err = fmt.Errorf("initial table size must be a positive value higher than 0 (zero)")
		return
	}
	if config.SecondaryHashFunc != nil && config.InitialTableSize < 2 {
		err = fmt.Errorf("initial table size must be at least 2 when using a secondary hash function")
		return
	}
	if config.SecondaryHashFunc != nil && !utils.IsPrime(config.InitialTableSize) {
		err = fmt.Errorf("initial table size must be a prime when using a secondary hash function, got %d", config.InitialTableSize)
		return
	}

	// Check if the load factor is valid
	if config.MaxLoadFactor == 0 {
		config.MaxLoadFactor = conf.DefaultMaxLoadFactor
	}
	if !(config.MaxLoadFactor > 0 && config.MaxLoadFactor <= 1) {
		err = fmt.Errorf("max load factor must be higher than 0 (zero) and at most 1, got %v", config.MaxLoadFactor)
		return
	}

	// Check if the growth factor is valid
	if config.GrowthFactor == 0 {
		config.GrowthFactor = conf.DefaultGrowthFactor
	}
	if !(config.GrowthFactor > 1) || math.IsInf(config.GrowthFactor, 1) {
		err = fmt.Errorf("growth factor must be higher than 1, got %v", config.GrowthFactor)
		return
	}

	// Check if the deletion policy is valid
	if config.DeletionPolicy != Mark && config.DeletionPolicy != Pack {
		err = fmt.Errorf("unknown deletion policy %d", config.DeletionPolicy)
		return
	}

	table = &Table[T]{
		config:        config,
		slots:         make([]Slot[T], config.InitialTableSize),
		hashAlgorithm: hash.NewProbingAlgorithm(config.InitialTableSize, config.PrimaryHashFunc, config.SecondaryHashFunc),
	}

	return
}

// GetStats - Returns a snapshot of the table statistics
func (H *Table[T]) GetStats() (stats Stats) {
	stats = Stats{
		Count:                        H.count,
		TableSize:                    len(H.slots),
		Probes:                       H.stats.probes,
		RehashProbes:                 H.stats.rehashProbes,
		Expansions:                   H.stats.expansions,
		Deleted:                      H.nDeleted,
		CollisionResolutionTechnique: H.hashAlgorithm.CollisionResolutionTechnique(),
		PrimaryHashFunc:              H.config.PrimaryHashFunc,
		SecondaryHashFunc:            H.config.SecondaryHashFunc,
	}

	return
}

// GetTable - Returns a copy of the slots, the copy is not affected by later operations on the table
func (H *Table[T]) GetTable() []Slot[T] {
	slots := make([]Slot[T], len(H.slots))
	_ = copy(slots, H.slots)

	return slots
}

// Len - Returns the number of items stored
func (H *Table[T]) Len() int {
	return H.count
}

// Clone - Returns a deep copy of the table, slots and counters included.
// Values are copied by assignment, so if T is a pointer type both tables refer to the same values and a
// configured FreeProc will be called for them by each table.
func (H *Table[T]) Clone() *Table[T] {
	clone := &Table[T]{
		config:        H.config,
		slots:         H.GetTable(),
		hashAlgorithm: hash.NewProbingAlgorithm(len(H.slots), H.config.PrimaryHashFunc, H.config.SecondaryHashFunc),
		count:         H.count,
		nDeleted:      H.nDeleted,
		stats:         H.stats,
		closed:        H.closed,
	}

	return clone
}

// Close - Calls the FreeProc (if configured) for every remaining value and releases the slots.
// Any operation on a closed table fails with an error of type crt.TableClosed. Use this preferably
// in a "defer" directly after New.
func (H *Table[T]) Close() {
	if H.closed {
		return
	}

	H.clear()
	H.slots = nil
	H.hashAlgorithm.SetTableSize(0)
	H.closed = true
}
