// Package benchmarks provides comparative benchmarks of fluent-seq
// against popular Go collection and stream processing libraries.
package benchmarks

// Test data sizes
const (
	SmallSize  = 100
	MediumSize = 1_000
	LargeSize  = 10_000
)

// generateInts creates a slice of integers for benchmarking.
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// Common transformation functions used across benchmarks.
// Note: fluent-seq's Map and Filter expect error-returning signatures.

// squareWithErr returns the square of an integer (fluent-seq compatible).
func squareWithErr(x int) (int, error) {
	return x * x, nil
}

// square returns the square of an integer (for other libraries).
func square(x int) int {
	return x * x
}

// isEvenWithErr reports whether the number is even (fluent-seq compatible).
func isEvenWithErr(x int) (bool, error) {
	return x%2 == 0, nil
}

// isEven reports whether the number is even.
func isEven(x int) bool {
	return x%2 == 0
}

// add returns the sum of two integers.
func add(a, b int) int {
	return a + b
}

// keyMod10 buckets an integer into one of ten groups.
func keyMod10(x int) int {
	return x % 10
}
