package oahashtable

import (
	"fmt"
	"github.com/gostonefire/oahashtable/crt"
	"github.com/gostonefire/oahashtable/internal/conf"
	"github.com/gostonefire/oahashtable/internal/hash"
	"github.com/gostonefire/oahashtable/internal/utils"
	"math"
)

// probeAccount - Selects which counter a slot examination is accounted to
type probeAccount int

const (
	clientProbes probeAccount = iota
	rehashProbes
	uncountedProbes
)

// visit - Returns the slot at index and accounts for the examination.
// Client probes are counted both on the table and on the slot, rehash probes only on the table.
// Uncounted probes leave all counters untouched.
func (H *Table[T]) visit(index int, account probeAccount) *Slot[T] {
	slot := &H.slots[index]

	switch account {
	case uncountedProbes:
	case rehashProbes:
		H.stats.rehashProbes++
	default:
		H.stats.probes++
		slot.Probes++
	}

	return slot
}

// vacate - Resets a slot to unoccupied, keeping its probe count.
// If the slot was occupied the item count is decreased, if it was a tombstone the tombstone count.
func (H *Table[T]) vacate(index int) {
	slot := &H.slots[index]

	switch slot.State {
	case SlotOccupied:
		H.count--
	case SlotDeleted:
		H.nDeleted--
	}

	*slot = Slot[T]{Probes: slot.Probes}
}

// probingForGet - Returns the index of the occupied slot holding key.
// An unoccupied slot terminates the search since key can never have been placed beyond it, tombstones are
// passed over.
func (H *Table[T]) probingForGet(key string, account probeAccount) (index int, err error) {
	hf1Value, hf2Value, err := hash.HashValues(H.hashAlgorithm, key)
	if err != nil {
		return
	}

	for i := 0; i < len(H.slots); i++ {
		index = H.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		slot := H.visit(index, account)

		switch slot.State {
		case SlotUnoccupied:
			err = crt.ItemNotFound{}
			return

		case SlotOccupied:
			if slot.Key == key {
				return
			}
		}
	}

	// Only reachable if the table consists of tombstones and other keys
	err = crt.ItemNotFound{}
	return
}

// probingForSet - Returns the index of the slot to place key in.
// The first tombstone on the way is chosen, but probing continues to the first unoccupied slot to make sure the
// key is not already present further down the cluster.
func (H *Table[T]) probingForSet(key string, account probeAccount) (index int, err error) {
	var deletedIndex int
	var hasDeleted bool

	hf1Value, hf2Value, err := hash.HashValues(H.hashAlgorithm, key)
	if err != nil {
		return
	}

	for i := 0; i < len(H.slots); i++ {
		index = H.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		slot := H.visit(index, account)

		switch slot.State {
		case SlotUnoccupied:
			if hasDeleted {
				index = deletedIndex
			}
			return

		case SlotOccupied:
			if slot.Key == key {
				err = crt.DuplicateKey{}
				return
			}

		case SlotDeleted:
			if !hasDeleted {
				deletedIndex = index
				hasDeleted = true
			}
		}
	}

	if hasDeleted {
		index = deletedIndex
		return
	}

	// When we have traversed through the entire table we just have to face that it is full
	// This is just a failsafe, the load factor check should prevent it
	err = crt.CapacityExhausted{}
	return
}

// place - Stores key and value in the slot found by probingForSet
func (H *Table[T]) place(key string, value T, account probeAccount) (err error) {
	index, err := H.probingForSet(key, account)
	if err != nil {
		return
	}

	if H.slots[index].State == SlotDeleted {
		H.nDeleted--
	}

	slot := &H.slots[index]
	slot.Key = key
	slot.Value = value
	slot.State = SlotOccupied
	H.count++

	return
}

// relocate - Lifts the item at index out of the table and places it again from scratch, without calling FreeProc
func (H *Table[T]) relocate(index int) (err error) {
	key, value := H.slots[index].Key, H.slots[index].Value
	H.vacate(index)

	err = H.place(key, value, clientProbes)

	return
}

// pack - Compacts the table after the slot at index has been vacated.
// With linear probing a cluster is a contiguous run of slots, so the occupied slots following index are relocated
// until the first unoccupied slot. With double hashing the probe sequences of a cluster are spread over the table,
// so every occupied slot is relocated.
func (H *Table[T]) pack(index int) (err error) {
	if H.hashAlgorithm.CollisionResolutionTechnique() == crt.DoubleHashing {
		err = H.repack()
		return
	}

	size := len(H.slots)
	for n := 1; n < size; n++ {
		i := (index + n) % size
		if H.slots[i].State != SlotOccupied {
			return
		}

		err = H.relocate(i)
		if err != nil {
			return
		}
	}

	return
}

// repack - Relocates every occupied slot in the table
func (H *Table[T]) repack() (err error) {
	items := make([]Slot[T], 0, H.count)
	for i := range H.slots {
		if H.slots[i].State == SlotOccupied {
			items = append(items, H.slots[i])
			H.vacate(i)
		}
	}

	for _, item := range items {
		err = H.place(item.Key, item.Value, clientProbes)
		if err != nil {
			return
		}
	}

	return
}

// grow - Reallocates the slots to the smallest prime equal to or higher than the current size times the growth
// factor and rehashes every occupied slot into the new array, dropping tombstones.
// If the new size would exceed conf.MaxTableSize an error of type crt.CapacityExhausted is returned and nothing
// changes. If rehashing fails the table is restored to its state before the call.
func (H *Table[T]) grow() (err error) {
	oldSlots := H.slots
	oldCount, oldDeleted, oldRehashProbes := H.count, H.nDeleted, H.stats.rehashProbes

	grownSize := math.Ceil(float64(len(oldSlots)) * H.config.GrowthFactor)
	if grownSize > float64(conf.MaxTableSize) {
		err = fmt.Errorf("growing table of size %d would exceed max table size %d: %w",
			len(oldSlots), conf.MaxTableSize, crt.CapacityExhausted{})
		return
	}

	newSize := utils.GetClosestPrime(int(grownSize))
	if newSize <= len(oldSlots) {
		newSize = utils.GetClosestPrime(len(oldSlots) + 1)
	}

	H.slots = make([]Slot[T], newSize)
	H.hashAlgorithm.SetTableSize(newSize)
	H.count = 0
	H.nDeleted = 0

	for i := range oldSlots {
		if oldSlots[i].State != SlotOccupied {
			continue
		}

		err = H.place(oldSlots[i].Key, oldSlots[i].Value, rehashProbes)
		if err != nil {
			H.slots = oldSlots
			H.hashAlgorithm.SetTableSize(len(oldSlots))
			H.count, H.nDeleted, H.stats.rehashProbes = oldCount, oldDeleted, oldRehashProbes
			return
		}
	}

	H.stats.expansions++

	return
}

// clear - Resets every slot to unoccupied, calling FreeProc for the occupied ones
func (H *Table[T]) clear() {
	for i := range H.slots {
		if H.slots[i].State == SlotOccupied && H.config.FreeProc != nil {
			H.config.FreeProc(H.slots[i].Value)
		}
		H.vacate(i)
	}

	H.count = 0
	H.nDeleted = 0
}
