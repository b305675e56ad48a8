// Package frac64 provides exact fractions with 64-bit numerator and
// denominator. See the N type and the Try and New functions for details.
package frac64

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Common errors returned by functions in this package.
// Errors used as panic values by the arithmetic methods are listed here too.
var (
	ErrIllegalNumerator   = errors.New("illegal numerator")
	ErrIllegalDenominator = errors.New("illegal denominator")
	ErrIllegalDivision    = errors.New("illegal division")
	ErrDecoding           = errors.New("cannot decode fraction")
	ErrNumOverflow        = errors.New("numerator overflow")
	ErrDenOverflow        = errors.New("denominator overflow")
	ErrFmtInvalid         = errors.New("invalid number format")
	ErrDigitsRange        = errors.New("significant digits out of range")
	ErrNotFinite          = errors.New("value is not finite")
)

// N is a fraction with a 64-bit numerator and a 64-bit denominator.
//
// Both the numerator and the denominator may be negative, but neither may be
// math.MinInt64, because that value cannot be negated. The denominator may
// not be 0. Internally, the denominator is biased by 1, which means the zero
// value is equivalent to 0/1 and thus valid and equal to Zero.
//
// Unlike big.Rat, N does not keep itself in lowest terms: the numerator and
// denominator are exactly what was passed in, until Reduced or Normalized is
// applied. Arithmetic reduces its results unless the Unreduced variant of
// a method is used.
//
// Arithmetic never wraps around. A result that does not fit in 64 bits
// causes a panic with ErrNumOverflow or ErrDenOverflow, since it means the
// operands were too large to be represented exactly.
//
// N has proper value semantics and its values can be freely copied.
// Use Equal rather than == to compare values, because 1/2 and 2/4 are
// different values of N.
type N struct {
	m int64
	n int64
}

var (
	// Zero is the fraction 0/1.
	Zero = N{}
	// One is the fraction 1/1.
	One = N{1, 0}
)

// Try creates a new fraction with the given numerator and denominator.
// Try returns ErrIllegalNumerator if num is math.MinInt64 and
// ErrIllegalDenominator if den is 0 or math.MinInt64.
// The result is neither reduced nor normalized.
func Try(num, den int64) (N, error) {
	if num == math.MinInt64 {
		return N{}, ErrIllegalNumerator
	}
	if den == 0 || den == math.MinInt64 {
		return N{}, ErrIllegalDenominator
	}
	return N{num, den - 1}, nil
}

// TryMixed creates the fraction wholes + num/den, i.e. the numerator of the
// result is num + den*wholes. The arguments are validated like Try; an
// overflow while folding in wholes is reported as ErrNumOverflow.
func TryMixed(num, den, wholes int64) (N, error) {
	x, err := Try(num, den)
	if err != nil || wholes == 0 {
		return x, err
	}
	w, ok := checkedMul(den, wholes)
	if !ok {
		return N{}, ErrNumOverflow
	}
	m, ok := checkedAdd(num, w)
	if !ok {
		return N{}, ErrNumOverflow
	}
	return N{m, x.n}, nil
}

// TryInt creates the fraction v/1.
func TryInt(v int64) (N, error) {
	return Try(v, 1)
}

// FromInteger creates the fraction v/1 from any integer type.
// It returns ErrIllegalNumerator for math.MinInt64 and ErrNumOverflow for
// unsigned values above math.MaxInt64.
func FromInteger[T constraints.Integer](v T) (N, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return N{}, ErrNumOverflow
	}
	return TryInt(int64(v))
}

// New is like Try but panics if the arguments are invalid.
// It is meant for constants and for values that were already validated.
func New(num, den int64) N {
	x, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// NewMixed is like TryMixed but panics if the arguments are invalid.
func NewMixed(num, den, wholes int64) N {
	x, err := TryMixed(num, den, wholes)
	if err != nil {
		panic(err)
	}
	return x
}

// NewInt is like TryInt but panics if v is math.MinInt64.
func NewInt(v int64) N {
	return New(v, 1)
}

// FromBigRat converts a big.Rat to N, if it is possible to do so.
func FromBigRat(r *big.Rat) (N, error) {
	num, den := r.Num(), r.Denom()
	if !num.IsInt64() {
		return N{}, ErrNumOverflow
	} else if !den.IsInt64() {
		return N{}, ErrDenOverflow
	}
	return Try(num.Int64(), den.Int64())
}

// Num returns the numerator of x.
func (x N) Num() int64 {
	return x.m
}

// Den returns the denominator of x.
func (x N) Den() int64 {
	return x.n + 1
}

// IsValid returns true if x is a valid fraction.
// Invalid fractions do not arise under normal circumstances, but may occur if
// a value is constructed or manipulated using unsafe operations.
func (x N) IsValid() bool {
	return x.m != math.MinInt64 && x.n != -1 && x.n != math.MaxInt64
}

// IsZero returns true if x is equal to 0.
func (x N) IsZero() bool {
	return x.m == 0
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
// The signs of both the numerator and the denominator are taken into account.
func (x N) Sign() int {
	return int(sgn64(x.m) * sgn64(x.Den()))
}

// Reduce brings x to lowest terms in place. See Reduced.
func (x *N) Reduce() {
	*x = x.Reduced()
}

// Reduced returns x in lowest terms: numerator and denominator are divided by
// their greatest common divisor and keep their original signs. A zero
// numerator gives a denominator of 1 or -1.
func (x N) Reduced() N {
	m, n := x.Num(), x.Den()
	d := GCD(m, n)
	return N{m / d, n/d - 1}
}

// Normalize canonicalizes the signs of x in place. See Normalized.
func (x *N) Normalize() {
	*x = x.Normalized()
}

// Normalized returns x with a positive denominator: if the denominator of x
// is negative, the signs of both numerator and denominator are flipped.
// So 1/-2 becomes -1/2 and -1/-2 becomes 1/2.
func (x N) Normalized() N {
	if n := x.Den(); n < 0 {
		return N{-x.m, -n - 1}
	}
	return x
}

// Abs clears the signs of x in place. See Absolute.
func (x *N) Abs() {
	*x = x.Absolute()
}

// Absolute returns x with the sign of the numerator and the sign of the
// denominator each cleared independently, which is the absolute value |x|.
func (x N) Absolute() N {
	return N{abs64(x.m), abs64(x.Den()) - 1}
}

// Neg returns the negation of x, -x.
// Only the numerator changes sign.
func (x N) Neg() N {
	return N{-x.m, x.n}
}

// Equal returns true if x and y represent the same value, e.g. 1/2 and -2/-4.
func (x N) Equal(y N) bool {
	x, y = x.canonical(), y.canonical()
	return x == y
}

// Less returns true if x < y.
// Less panics with ErrNumOverflow if the cross products of the reduced
// operands do not fit in 64 bits.
func (x N) Less(y N) bool {
	x, y = x.canonical(), y.canonical()
	return mul64(x.Num(), y.Den(), ErrNumOverflow) < mul64(y.Num(), x.Den(), ErrNumOverflow)
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
func (x N) Cmp(y N) int {
	if x.Equal(y) {
		return 0
	}
	if x.Less(y) {
		return -1
	}
	return 1
}

// String returns a string representation of x, as m/n.
// Neither reduction nor normalization is applied, so New(-1, -4) prints
// as -1/-4.
func (x N) String() string {
	return fmt.Sprintf("%d/%d", x.Num(), x.Den())
}

// Float returns the quotient of the numerator and the denominator of x,
// computed in the floating-point type T. The result may be inexact.
func Float[T constraints.Float](x N) T {
	return T(x.Num()) / T(x.Den())
}

// Float64 returns x as a float64. The result may be inexact.
func (x N) Float64() float64 {
	return Float[float64](x)
}

// Float32 returns x as a float32. The result may be inexact.
func (x N) Float32() float32 {
	return Float[float32](x)
}

// BigRat converts x to a new big.Rat.
func (x N) BigRat() *big.Rat {
	return big.NewRat(x.Num(), x.Den())
}

// canonical returns x reduced and then normalized, the form in which
// fractions are compared.
func (x N) canonical() N {
	return x.Reduced().Normalized()
}

// abs64 returns the absolute value of x.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// sgn64 returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func sgn64(x int64) int64 {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -1
	}
	return 1
}
