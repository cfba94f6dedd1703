//go:build unit

package utils

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsPrime(t *testing.T) {
	t.Run("identifies primes and non primes", func(t *testing.T) {
		// Prepare
		primes := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 97, 7919}
		nonPrimes := []int{-7, 0, 1, 4, 6, 9, 15, 25, 35, 49, 91, 121, 7917}

		for _, p := range primes {
			// Execute / Check
			assert.Truef(t, IsPrime(p), "%d is prime", p)
		}

		for _, n := range nonPrimes {
			// Execute / Check
			assert.Falsef(t, IsPrime(n), "%d is not prime", n)
		}
	})
}

func TestGetClosestPrime(t *testing.T) {
	type testCase struct {
		n        int
		expected int
	}

	tests := []testCase{
		{n: -3, expected: 2},
		{n: 0, expected: 2},
		{n: 1, expected: 2},
		{n: 2, expected: 2},
		{n: 4, expected: 5},
		{n: 14, expected: 17},
		{n: 17, expected: 17},
		{n: 34, expected: 37},
		{n: 90, expected: 97},
		{n: 1000, expected: 1009},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("returns %d for %d", test.expected, test.n), func(t *testing.T) {
			// Execute
			p := GetClosestPrime(test.n)

			// Check
			assert.Equal(t, test.expected, p, "smallest prime equal to or higher than n")
		})
	}
}
