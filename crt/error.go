package crt

// DuplicateKey - Custom error to inform that the key is already present in the table
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that an insert would duplicate an existing key
func (D DuplicateKey) Error() string {
	if D.msg == "" {
		return "duplicate key"
	}
	return D.msg
}

// ItemNotFound - Custom error to inform that no item was found for a key
type ItemNotFound struct {
	msg string
}

// Error - Used to notify that no item was found
func (E ItemNotFound) Error() string {
	if E.msg == "" {
		return "item not found"
	}
	return E.msg
}

// CapacityExhausted - Custom error to inform that the table is full and can't take more items
type CapacityExhausted struct {
	msg string
}

// Error - Used to notify that no slot was available
func (E CapacityExhausted) Error() string {
	if E.msg == "" {
		return "table capacity exhausted"
	}
	return E.msg
}

// KeyTooLong - Custom error to inform that a key exceeds the maximum key length
type KeyTooLong struct {
	msg string
}

// Error - Used to notify that the key is too long
func (K KeyTooLong) Error() string {
	if K.msg == "" {
		return "key too long"
	}
	return K.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that a hash function produced an index outside the permitted range
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "hash function returned value outside permitted range"
	}
	return P.msg
}

// TableClosed - Custom error to inform that the table has been closed
type TableClosed struct {
	msg string
}

// Error - Used to notify that the table no longer holds any storage
func (T TableClosed) Error() string {
	if T.msg == "" {
		return "table is closed"
	}
	return T.msg
}
