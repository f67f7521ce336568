package timeparse

import "math/bits"

// mulChecked returns a*b and whether the product fits in 64 bits.
func mulChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// addChecked returns a+b and whether the sum fits in 64 bits.
func addChecked(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}
