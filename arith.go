package frac64

// Add adds x and y and returns the result in lowest terms.
// Both operands are normalized first, so the result has a positive
// denominator.
// Add panics if the result would overflow.
func (x N) Add(y N) N {
	return x.add(y).Reduced()
}

// AddUnreduced is like Add but does not reduce the result.
func (x N) AddUnreduced(y N) N {
	return x.add(y)
}

// AddInt adds the integer k to x and returns the result in lowest terms.
func (x N) AddInt(k int64) N {
	return x.addInt(k).Reduced()
}

// AddIntUnreduced is like AddInt but does not reduce the result.
func (x N) AddIntUnreduced(k int64) N {
	return x.addInt(k)
}

// Sub subtracts y from x and returns the result in lowest terms.
// Like Add, both operands are normalized first.
// Sub panics if the result would overflow.
func (x N) Sub(y N) N {
	return x.sub(y).Reduced()
}

// SubUnreduced is like Sub but does not reduce the result.
func (x N) SubUnreduced(y N) N {
	return x.sub(y)
}

// SubInt subtracts the integer k from x and returns the result in lowest
// terms.
func (x N) SubInt(k int64) N {
	return x.subInt(k).Reduced()
}

// SubIntUnreduced is like SubInt but does not reduce the result.
func (x N) SubIntUnreduced(k int64) N {
	return x.subInt(k)
}

// Mul multiplies x and y and returns the result in lowest terms.
// Mul panics if the result would overflow.
func (x N) Mul(y N) N {
	return x.mul(y).Reduced()
}

// MulUnreduced is like Mul but does not reduce the result.
func (x N) MulUnreduced(y N) N {
	return x.mul(y)
}

// MulInt multiplies the numerator of x by k and returns the result in lowest
// terms.
func (x N) MulInt(k int64) N {
	return x.mulInt(k).Reduced()
}

// MulIntUnreduced is like MulInt but does not reduce the result.
func (x N) MulIntUnreduced(k int64) N {
	return x.mulInt(k)
}

// TryDiv divides x by y and returns the result in lowest terms.
// TryDiv returns ErrIllegalDivision if y is zero.
// TryDiv panics if the result would overflow.
func (x N) TryDiv(y N) (N, error) {
	if y.m == 0 {
		return N{}, ErrIllegalDivision
	}
	return x.div(y).Reduced(), nil
}

// TryDivUnreduced is like TryDiv but does not reduce the result.
func (x N) TryDivUnreduced(y N) (N, error) {
	if y.m == 0 {
		return N{}, ErrIllegalDivision
	}
	return x.div(y), nil
}

// TryDivInt divides x by the integer k and returns the result in lowest
// terms. TryDivInt returns ErrIllegalDivision if k is zero.
func (x N) TryDivInt(k int64) (N, error) {
	if k == 0 {
		return N{}, ErrIllegalDivision
	}
	return x.divInt(k).Reduced(), nil
}

// TryDivIntUnreduced is like TryDivInt but does not reduce the result.
func (x N) TryDivIntUnreduced(k int64) (N, error) {
	if k == 0 {
		return N{}, ErrIllegalDivision
	}
	return x.divInt(k), nil
}

// DivNonZero is like TryDiv, for callers that have already established that
// y is not zero. It panics with ErrIllegalDivision if y is zero, so it must
// not be used where y comes from unchecked input.
func (x N) DivNonZero(y N) N {
	if y.m == 0 {
		panic(ErrIllegalDivision)
	}
	return x.div(y).Reduced()
}

// DivIntNonZero is like TryDivInt, for callers that have already established
// that k is not zero. It panics with ErrIllegalDivision if k is zero.
func (x N) DivIntNonZero(k int64) N {
	if k == 0 {
		panic(ErrIllegalDivision)
	}
	return x.divInt(k).Reduced()
}

// Pow raises x to the integer power exp.
//
// Any fraction to the power 0 is One, and zero to a positive power is Zero.
// Zero to a negative power would be the reciprocal of zero, for which Pow
// returns ErrIllegalDivision. Powers of 1 and -1 are returned as 1/1 and -1/1
// without iterating.
// Pow panics if the result would overflow.
func (x N) Pow(exp int) (N, error) {
	switch {
	case exp == 0:
		return One, nil
	case x.m == 0 && exp > 0:
		return Zero, nil
	case x.m == 0:
		return N{}, ErrIllegalDivision
	case x.Absolute().Equal(One):
		if x.Sign() < 0 && exp%2 != 0 {
			return N{-1, 0}, nil
		}
		return One, nil
	}
	z := One
	for i := 0; i < exp; i++ {
		z = z.Mul(x)
	}
	// x is known to be non-zero here
	for i := exp; i < 0; i++ {
		z = z.DivNonZero(x)
	}
	return z, nil
}

func (x N) add(y N) N {
	x, y = x.Normalized(), y.Normalized()
	mx, nx := x.Num(), x.Den()
	my, ny := y.Num(), y.Den()
	if nx == ny {
		return N{add64(mx, my, ErrNumOverflow), x.n}
	}
	m := add64(mul64(mx, ny, ErrNumOverflow), mul64(my, nx, ErrNumOverflow), ErrNumOverflow)
	n := mul64(nx, ny, ErrDenOverflow)
	return N{m, n - 1}
}

func (x N) addInt(k int64) N {
	x = x.Normalized()
	return N{add64(x.m, mul64(k, x.Den(), ErrNumOverflow), ErrNumOverflow), x.n}
}

func (x N) sub(y N) N {
	x, y = x.Normalized(), y.Normalized()
	mx, nx := x.Num(), x.Den()
	my, ny := y.Num(), y.Den()
	if nx == ny {
		return N{sub64(mx, my, ErrNumOverflow), x.n}
	}
	m := sub64(mul64(mx, ny, ErrNumOverflow), mul64(my, nx, ErrNumOverflow), ErrNumOverflow)
	n := mul64(nx, ny, ErrDenOverflow)
	return N{m, n - 1}
}

func (x N) subInt(k int64) N {
	x = x.Normalized()
	return N{sub64(x.m, mul64(k, x.Den(), ErrNumOverflow), ErrNumOverflow), x.n}
}

func (x N) mul(y N) N {
	m := mul64(x.Num(), y.Num(), ErrNumOverflow)
	n := mul64(x.Den(), y.Den(), ErrDenOverflow)
	return N{m, n - 1}
}

func (x N) mulInt(k int64) N {
	return N{mul64(x.m, k, ErrNumOverflow), x.n}
}

// div assumes y is not zero.
func (x N) div(y N) N {
	m := mul64(x.Num(), y.Den(), ErrNumOverflow)
	n := mul64(x.Den(), y.Num(), ErrDenOverflow)
	return N{m, n - 1}
}

// divInt assumes k is not zero.
func (x N) divInt(k int64) N {
	n := mul64(x.Den(), k, ErrDenOverflow)
	return N{x.m, n - 1}
}
