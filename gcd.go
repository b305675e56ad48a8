package frac64

import (
	"math"
	"math/bits"
)

// GCD returns the greatest common divisor (GCD) of m and n.
// The signs of m and n are ignored and the result is never negative.
// GCD(0, n) is |n|; neither m nor n may be math.MinInt64.
func GCD(m, n int64) int64 {
	m, n = abs64(m), abs64(n)
	// Euclid's algorithm, by repeated remainders
	for n != 0 {
		m, n = n, m%n
	}
	return m
}

// mul64 returns a*b or panics with err if the product does not fit.
func mul64(a, b int64, err error) int64 {
	p, ok := checkedMul(a, b)
	if !ok {
		panic(err)
	}
	return p
}

// add64 returns a+b or panics with err if the sum does not fit.
func add64(a, b int64, err error) int64 {
	s, ok := checkedAdd(a, b)
	if !ok {
		panic(err)
	}
	return s
}

// sub64 returns a-b or panics with err if the difference does not fit.
func sub64(a, b int64, err error) int64 {
	d, ok := checkedSub(a, b)
	if !ok {
		panic(err)
	}
	return d
}

// checkedMul multiplies a and b. The result is only ok if it lies within
// [math.MinInt64+1, math.MaxInt64], which is the range of a valid numerator
// or denominator.
func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// The product of the magnitudes is computed in 128 bits, so the check
	// is exact no matter how large the operands are.
	hi, lo := bits.Mul64(uabs64(a), uabs64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	if (a < 0) != (b < 0) {
		return -int64(lo), true
	}
	return int64(lo), true
}

// checkedAdd adds a and b; see checkedMul for the meaning of ok.
func checkedAdd(a, b int64) (int64, bool) {
	s := a + b
	// overflow happened iff both operands have the same sign and the sum
	// has the other one
	if (a^s)&(b^s) < 0 || s == math.MinInt64 {
		return 0, false
	}
	return s, true
}

// checkedSub subtracts b from a; see checkedMul for the meaning of ok.
func checkedSub(a, b int64) (int64, bool) {
	d := a - b
	if (a^b)&(a^d) < 0 || d == math.MinInt64 {
		return 0, false
	}
	return d, true
}

// uabs64 returns the magnitude of x as an unsigned integer. Unlike abs64, it
// is correct for math.MinInt64 too.
func uabs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
