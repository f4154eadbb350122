// Package calculator provides the BRIK core numeric helpers.
//
// All functions are pure and use Go's native numeric semantics: int addition
// wraps on overflow, and float comparisons follow IEEE 754, so NaN is never
// less than 0 or greater than 1.
package calculator

// Add returns the sum of a and b. Overflow wraps around.
func Add(a, b int) int {
	return a + b
}

// IsEven reports whether n is divisible by 2.
func IsEven(n int) bool {
	// Go's remainder is -1 for odd negatives, never 1, so comparing against
	// zero is correct for the whole int range.
	return n%2 == 0
}

// Clamp01 restricts x to [0, 1]. NaN is returned unchanged.
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
