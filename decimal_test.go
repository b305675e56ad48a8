package frac64_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbolino/frac64"
)

func TestTryFromDecimal(t *testing.T) {
	cases := []struct {
		Name   string
		Value  float64
		Digits int
		Want   [2]int64
	}{
		{"zero", 0, 4, [2]int64{0, 1}},
		{"negative zero", math.Copysign(0, -1), 4, [2]int64{0, 1}},
		{"integer", 42, 4, [2]int64{42, 1}},
		{"negative integer", -42, 0, [2]int64{-42, 1}},
		{"half", 0.5, 4, [2]int64{1, 2}},
		{"half rounded up", 0.5, 0, [2]int64{1, 1}},
		{"tie away from zero", 2.5, 0, [2]int64{3, 1}},
		{"negative tie away from zero", -2.5, 0, [2]int64{-3, 1}},
		{"negative", -0.75, 4, [2]int64{-3, 4}},
		{"mixed", 1000.5, 4, [2]int64{2001, 2}},
		{"large integer", 1e15, 4, [2]int64{1_000_000_000_000_000, 1}},
		{"large integer many digits", 9e18, frac64.MaxDigits, [2]int64{9_000_000_000_000_000_000, 1}},
		{"large mixed", 1e15 + 0.125, 4, [2]int64{8_000_000_000_000_001, 8}},
		{"large mixed rounded", 1000000000000.1, 4, [2]int64{10_000_000_000_001, 10}},
		{"negative mixed", -1.25, 4, [2]int64{-5, 4}},
		{"thirds", 0.333333, 4, [2]int64{3333, 10000}},
		{"four digits", 0.1234321, 4, [2]int64{617, 5000}},
		{"rounded four digits", 0.123456789, 4, [2]int64{247, 2000}},
		{"two digits", 0.123456789, 2, [2]int64{3, 25}},
		{"rounds to whole", 0.99999, 4, [2]int64{1, 1}},
		{"rounds to zero", 0.00004, 4, [2]int64{0, 1}},
		{"many digits", 0.125, 18, [2]int64{1, 8}},
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			x, err := frac64.TryFromDecimal(c.Value, c.Digits)
			require.NoError(t, err)
			assert.Equal(t, c.Want, fields(x))
			assert.Equal(t, x, frac64.FromDecimal(c.Value, c.Digits))
		})
	}
}

func TestTryFromDecimal_errors(t *testing.T) {
	cases := []struct {
		Name   string
		Value  float64
		Digits int
		Err    error
	}{
		{"negative digits", 0.5, -1, frac64.ErrDigitsRange},
		{"too many digits", 0.5, frac64.MaxDigits + 1, frac64.ErrDigitsRange},
		{"NaN", math.NaN(), 4, frac64.ErrNotFinite},
		{"+Inf", math.Inf(1), 4, frac64.ErrNotFinite},
		{"-Inf", math.Inf(-1), 4, frac64.ErrNotFinite},
		{"too large", 1e19, 4, frac64.ErrNumOverflow},
		{"too small", -1e19, 4, frac64.ErrNumOverflow},
		{"whole part 2^63", 0x1p63, 4, frac64.ErrNumOverflow},
		{"whole part -2^63", -0x1p63, 4, frac64.ErrNumOverflow},
		{"whole part times denominator", 1000000000000.1, 8, frac64.ErrNumOverflow},
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			_, err := frac64.TryFromDecimal(c.Value, c.Digits)
			assert.ErrorIs(t, err, c.Err)
			assert.PanicsWithValue(t, c.Err, func() {
				frac64.FromDecimal(c.Value, c.Digits)
			})
		})
	}
}

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		String string
		Rat    frac64.N
		Err    error
	}{
		{"0", New(0, 1), nil},
		{"-0", New(0, 1), nil},
		{"1.0", New(1, 1), nil},
		{"1.23", New(123, 100), nil},
		{"-1.23", New(-123, 100), nil},
		{"+1.23", New(123, 100), nil},
		{"0.75", New(3, 4), nil},
		{"123.0", New(123, 1), nil},
		{"1234567890.", New(1234567890, 1), nil},
		{"123456789.0", New(123456789, 1), nil},
		{"12345678.90", New(123456789, 10), nil},
		{"1234567.890", New(123456789, 100), nil},
		{"123456.7890", New(123456789, 1000), nil},
		{"12345.67890", New(123456789, 10_000), nil},
		{"1234.567890", New(123456789, 100_000), nil},
		{"123.4567890", New(123456789, 1_000_000), nil},
		{"12.34567890", New(123456789, 10_000_000), nil},
		{"1.234567890", New(123456789, 100_000_000), nil},
		{".1234567890", New(123456789, 1_000_000_000), nil},
		{".01234567890", New(123456789, 10_000_000_000), nil},
		{".001234567890", New(123456789, 100_000_000_000), nil},
		{"", frac64.Zero, frac64.ErrFmtInvalid},
		{" ", frac64.Zero, frac64.ErrFmtInvalid},
		{".", frac64.Zero, frac64.ErrFmtInvalid},
		{"-", frac64.Zero, frac64.ErrFmtInvalid},
		{"a", frac64.Zero, frac64.ErrFmtInvalid},
		{"1e3", frac64.Zero, frac64.ErrFmtInvalid},
		{"1.2.3", frac64.Zero, frac64.ErrFmtInvalid},
		{"--1", frac64.Zero, frac64.ErrFmtInvalid},
		{"1234567890123456789012345678901234567890", frac64.Zero, frac64.ErrNumOverflow},
		{"1234567890123456789.012345678901234567890", frac64.Zero, frac64.ErrDenOverflow},
		{".1234567890123456789012345678901234567890", frac64.Zero, frac64.ErrDenOverflow},
		{"0000000000000000000000000000000000000000", New(0, 1), nil},
		{"0000000000000000000000000000000000000001", New(1, 1), nil},
		{"1.000000000000000000000000000000000000000", New(1, 1), nil},
		{"1000000000000000000000000000000000000001", frac64.Zero, frac64.ErrNumOverflow},
		{"1.000000000000000000000000000000000000001", frac64.Zero, frac64.ErrDenOverflow},
		{"000000000000000000000000000000000000000101", New(101, 1), nil},
		{"1.010000000000000000000000000000000000000", New(101, 100), nil},
		{"0.000001010000000000000000000000000000000", New(101, 100_000_000), nil},
		{"922337203685477580.8", frac64.Zero, frac64.ErrNumOverflow},
		{"922337203685477580.7", New(9223372036854775807, 10), nil},
		{"92233720368547758.07", New(9223372036854775807, 100), nil},
	}
	for _, c := range cases {
		t.Run(c.String, func(t *testing.T) {
			r, err := frac64.ParseDecimal(c.String)
			if c.Err != nil {
				assert.ErrorIs(t, err, c.Err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, fields(c.Rat), fields(r))
		})
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		String string
		Want   [2]int64
		Err    error
	}{
		{"3/4", [2]int64{3, 4}, nil},
		{"-6/8", [2]int64{-6, 8}, nil},
		{"6/-8", [2]int64{6, -8}, nil},
		{" 1 / 2 ", [2]int64{1, 2}, nil},
		{"0/5", [2]int64{0, 5}, nil},
		{"0.75", [2]int64{3, 4}, nil},
		{"-.5", [2]int64{-1, 2}, nil},
		{" 2 ", [2]int64{2, 1}, nil},
		{"1/0", [2]int64{}, frac64.ErrIllegalDenominator},
		{"-9223372036854775808/1", [2]int64{}, frac64.ErrIllegalNumerator},
		{"1/-9223372036854775808", [2]int64{}, frac64.ErrIllegalDenominator},
		{"99999999999999999999/1", [2]int64{}, frac64.ErrNumOverflow},
		{"1/99999999999999999999", [2]int64{}, frac64.ErrDenOverflow},
		{"x/2", [2]int64{}, frac64.ErrFmtInvalid},
		{"1/y", [2]int64{}, frac64.ErrFmtInvalid},
		{"1/2/3", [2]int64{}, frac64.ErrFmtInvalid},
		{"/", [2]int64{}, frac64.ErrFmtInvalid},
		{"1.5/2", [2]int64{}, frac64.ErrFmtInvalid},
		{"", [2]int64{}, frac64.ErrFmtInvalid},
	}
	for _, c := range cases {
		t.Run(c.String, func(t *testing.T) {
			x, err := frac64.Parse(c.String)
			if c.Err != nil {
				assert.ErrorIs(t, err, c.Err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.Want, fields(x))
		})
	}
}

// Strings produced by String parse back to the same fields.
func TestParse_String(t *testing.T) {
	for _, x := range []frac64.N{
		frac64.Zero,
		frac64.One,
		New(-1, -4),
		New(6, -8),
		New(math.MaxInt64, math.MinInt64+1),
	} {
		y, err := frac64.Parse(x.String())
		require.NoError(t, err)
		assert.Equal(t, fields(x), fields(y))
	}
}
