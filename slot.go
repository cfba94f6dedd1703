package oahashtable

// SlotState - The state a slot can be in
type SlotState int

const (
	// SlotUnoccupied - Slot is or has never been in use, terminates any probe sequence
	SlotUnoccupied SlotState = iota
	// SlotOccupied - Slot holds a key and a value
	SlotOccupied
	// SlotDeleted - Slot held a key that has been removed under the Mark deletion policy (tombstone)
	SlotDeleted
)

// String - Returns the name of the state
func (S SlotState) String() string {
	switch S {
	case SlotOccupied:
		return "occupied"
	case SlotDeleted:
		return "deleted"
	default:
		return "unoccupied"
	}
}

// Slot - Represents one entry of the table.
// Key and Value are meaningful only when State is SlotOccupied.
// Probes is the number of times the slot was examined by client operations, it has no effect on correctness.
type Slot[T any] struct {
	Key    string
	Value  T
	State  SlotState
	Probes int
}

// DeletionPolicy - How a slot is handled when its item is removed
type DeletionPolicy int

const (
	// Mark - The slot is turned into a tombstone which is reused by later inserts or dropped when the table grows
	Mark DeletionPolicy = iota
	// Pack - The slot is vacated and the rest of its cluster is relocated, the table never holds tombstones
	Pack
)

// String - Returns the name of the policy
func (D DeletionPolicy) String() string {
	switch D {
	case Mark:
		return "mark"
	case Pack:
		return "pack"
	default:
		return "unknown"
	}
}
