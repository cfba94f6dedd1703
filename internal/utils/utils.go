package utils

// IsPrime - Returns true if n is a prime number
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// GetClosestPrime - Returns the smallest prime number that is equal to or higher than n.
// A table size that is prime allows double hashing to iterate over the entirety of the table slots
// once and only once.
func GetClosestPrime(n int) int {
	if n <= 2 {
		return 2
	}

	for !IsPrime(n) {
		n++
	}

	return n
}
