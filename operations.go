package oahashtable

import (
	"errors"
	"fmt"
	"github.com/gostonefire/oahashtable/crt"
)

// Insert - Adds a key/value pair to the table. If the table would exceed its max load factor by taking one more
// item it first grows, so the key is placed in the new layout. An insert that fails leaves the table unchanged.
//   - key is the identifier of the item, at most MaxKeyLength bytes
//   - value is the client data to store with the key
//
// It returns:
//   - err is of type crt.DuplicateKey if the key is already present, crt.KeyTooLong if the key is too long,
//     crt.CapacityExhausted if no slot could be found, or crt.ProbingAlgorithm if a hash function misbehaves
func (H *Table[T]) Insert(key string, value T) (err error) {
	err = H.checkKey(key)
	if err != nil {
		return
	}

	// Duplicates are rejected before any growth
	_, err = H.probingForGet(key, uncountedProbes)
	if err == nil {
		err = crt.DuplicateKey{}
		return
	}
	if !errors.Is(err, crt.ItemNotFound{}) {
		return
	}

	// A small table may need more than one growth to get the load factor in range
	for float64(H.count+1)/float64(len(H.slots)) > H.config.MaxLoadFactor {
		err = H.grow()
		if err != nil {
			return
		}
	}

	err = H.place(key, value, clientProbes)

	return
}

// Find - Returns the value stored with key.
//   - key is the identifier of the item
//
// It returns:
//   - value is the value of the matching item if found, if not found an error of type crt.ItemNotFound is also returned.
//   - err is either of type crt.ItemNotFound or any of the key and hash function errors described for Insert
func (H *Table[T]) Find(key string) (value T, err error) {
	err = H.checkKey(key)
	if err != nil {
		return
	}

	index, err := H.probingForGet(key, clientProbes)
	if err != nil {
		return
	}

	value = H.slots[index].Value

	return
}

// Remove - Removes the item stored with key, calling the FreeProc (if configured) with its value.
// The slot is handled according to the configured deletion policy.
//   - key is the identifier of the item
//
// It returns:
//   - err is either of type crt.ItemNotFound or any of the key and hash function errors described for Insert
func (H *Table[T]) Remove(key string) (err error) {
	err = H.checkKey(key)
	if err != nil {
		return
	}

	index, err := H.probingForGet(key, clientProbes)
	if err != nil {
		return
	}

	if H.config.FreeProc != nil {
		H.config.FreeProc(H.slots[index].Value)
	}

	switch H.config.DeletionPolicy {
	case Pack:
		H.vacate(index)
		err = H.pack(index)
		if err != nil {
			err = fmt.Errorf("error while packing table after removal: %w", err)
		}

	default:
		H.vacate(index)
		H.slots[index].State = SlotDeleted
		H.nDeleted++
	}

	return
}

// Clear - Removes all items from the table, calling the FreeProc (if configured) for each value.
// Tombstones are purged, while table size and probe and expansion counters are kept.
//
// It returns:
//   - err is of type crt.TableClosed if the table is closed
func (H *Table[T]) Clear() (err error) {
	if H.closed {
		err = crt.TableClosed{}
		return
	}

	H.clear()

	return
}

// checkKey - Verifies that the table is open and that the key fits
func (H *Table[T]) checkKey(key string) (err error) {
	if H.closed {
		err = crt.TableClosed{}
		return
	}

	if len(key) > MaxKeyLength {
		err = fmt.Errorf("key of length %d exceeds max length %d: %w", len(key), MaxKeyLength, crt.KeyTooLong{})
		return
	}

	return
}
