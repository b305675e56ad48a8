package frac64

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultDigits is the number of significant digits after the decimal
	// point kept by decimal conversions that do not take an explicit
	// precision, such as decoding a bare JSON number.
	DefaultDigits = 4
	// MaxDigits is the largest precision accepted by FromDecimal, since
	// 10^MaxDigits is the largest power of 10 that fits in an int64.
	MaxDigits = 18
)

// pow10 holds 10^i for i in [0, MaxDigits].
var pow10 = func() [MaxDigits + 1]int64 {
	var p [MaxDigits + 1]int64
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

// TryFromDecimal converts a float64 to a fraction, keeping the given number
// of digits after the decimal point.
//
// The whole part of v is kept exactly. The fractional part is multiplied by
// 10^digits and rounded to the nearest integer, with ties rounded away from
// zero; the result is that integer over 10^digits plus the whole part, in
// lowest terms. For example, 0.123456789 with 4 digits is 1235/10000, which
// is 247/2000, and 1e15 is 1e15/1 with any number of digits.
//
// TryFromDecimal returns ErrDigitsRange unless 0 <= digits <= MaxDigits and
// ErrNotFinite for NaN and infinities. It returns ErrNumOverflow if the whole
// part does not fit, or if the whole part times the reduced denominator of
// the fractional part does not fit.
func TryFromDecimal(v float64, digits int) (N, error) {
	if digits < 0 || digits > MaxDigits {
		return N{}, ErrDigitsRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return N{}, ErrNotFinite
	}
	whole, frac := math.Modf(v)
	// math.MinInt64 itself is excluded, like everywhere else
	if whole <= -0x1p63 || whole >= 0x1p63 {
		return N{}, ErrNumOverflow
	}
	// reduced before the whole part is folded in
	scale := pow10[digits]
	f := N{int64(math.Round(frac * float64(scale))), scale - 1}.Reduced()
	// wholes + a/b is (a + b*wholes)/b, which stays in lowest terms
	return TryMixed(f.Num(), f.Den(), int64(whole))
}

// FromDecimal is like TryFromDecimal but panics if the conversion fails.
func FromDecimal(v float64, digits int) N {
	x, err := TryFromDecimal(v, digits)
	if err != nil {
		panic(err)
	}
	return x
}

// Parse parses a string representation of a fraction. Two forms are
// accepted:
//
//   - "m/n", where m and n are base 10 integers; either may be negative.
//     The result is validated like Try and keeps m and n exactly.
//   - a decimal number, as accepted by ParseDecimal.
//
// Leading and trailing white space is ignored.
func Parse(s string) (N, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		return ParseDecimal(s)
	}
	m, n, _ := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(m), 10, 64)
	if err != nil {
		return N{}, parseIntError("numerator", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	if err != nil {
		return N{}, parseIntError("denominator", err)
	}
	return Try(num, den)
}

// ParseDecimal parses a decimal number exactly. The string must be in the
// form "A", "A.B", "A." or ".B", optionally preceded by a sign, where A is an
// integer that may have leading zeroes and B is an integer that may have
// trailing zeroes. The result is in lowest terms.
// Without the leading and trailing zeroes, B may have at most MaxDigits
// digits and the digits of A and B together must fit in an int64.
func ParseDecimal(s string) (N, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return N{}, ErrFmtInvalid
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return N{}, ErrFmtInvalid
	}
	intPart = strings.TrimLeft(intPart, "0")
	fracPart = strings.TrimRight(fracPart, "0")
	if len(fracPart) > MaxDigits {
		return N{}, ErrDenOverflow
	}
	var m int64
	for _, digits := range [...]string{intPart, fracPart} {
		for i := 0; i < len(digits); i++ {
			var ok bool
			if m, ok = checkedMul(m, 10); !ok {
				return N{}, ErrNumOverflow
			}
			if m, ok = checkedAdd(m, int64(digits[i]-'0')); !ok {
				return N{}, ErrNumOverflow
			}
		}
	}
	if neg {
		m = -m
	}
	return N{m, pow10[len(fracPart)] - 1}.Reduced(), nil
}

// parseIntError translates a strconv error for the named field.
func parseIntError(field string, err error) error {
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		if field == "numerator" {
			return ErrNumOverflow
		}
		return ErrDenOverflow
	}
	return ErrFmtInvalid
}

// isDigits reports whether s consists of ASCII digits only.
// The empty string is considered to be digits.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
