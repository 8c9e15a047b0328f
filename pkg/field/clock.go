// Package field implements clock arithmetic: addition, subtraction,
// multiplication and division of 256-bit values modulo an odd prime p.
//
// Operands are expected to be reduced, i.e. in [0, p). Every operation
// widens to 512 bits before it can overflow, so the truncating Uint256
// multiplication is never used on field elements.
package field

import (
	"fmt"

	"github.com/smallyu/go-ecarith/pkg/bignum"
)

// Reduce returns a mod p for a 512-bit a.
func Reduce(a bignum.Uint512, p bignum.Uint256) bignum.Uint256 {
	wp := p.Widen()
	if a.Less(wp) {
		return a.Low()
	}
	// p is non-zero for every caller, the error cannot occur.
	_, r, _ := a.DivMod(wp)
	return r.Low()
}

// Add returns a + b mod p.
func Add(a, b, p bignum.Uint256) bignum.Uint256 {
	sum := a.Widen().Add(b.Widen())
	wp := p.Widen()
	if !sum.Less(wp) {
		sum = sum.Sub(wp)
	}
	if !sum.Less(wp) {
		// Only reachable with unreduced operands.
		return Reduce(sum, p)
	}
	return sum.Low()
}

// Sub returns a - b mod p. Negative intermediates are never formed: when
// a < b the result is p - (b - a).
func Sub(a, b, p bignum.Uint256) bignum.Uint256 {
	if a.Less(b) {
		return p.Sub(b.Sub(a))
	}
	return a.Sub(b)
}

// Neg returns -a mod p.
func Neg(a, p bignum.Uint256) bignum.Uint256 {
	if a.IsZero() {
		return a
	}
	return p.Sub(a)
}

// Mul returns a * b mod p.
func Mul(a, b, p bignum.Uint256) bignum.Uint256 {
	return Reduce(a.Widen().Mul(b.Widen()), p)
}

// Square returns a^2 mod p.
func Square(a, p bignum.Uint256) bignum.Uint256 {
	return Mul(a, a, p)
}

// Exp returns a^e mod p using left-to-right square and multiply.
func Exp(a, e, p bignum.Uint256) bignum.Uint256 {
	r := Reduce(bignum.OneUint512(), p)
	for i := e.BitLen() - 1; i >= 0; i-- {
		r = Square(r, p)
		if e.Bit(i) == 1 {
			r = Mul(r, a, p)
		}
	}
	return r
}

// Inverse returns b^-1 mod p computed with the extended Euclidean algorithm
// in signed 512-bit arithmetic. It fails with ErrDivideByZero when b is zero
// and ErrNoModularInverse when gcd(b, p) != 1.
func Inverse(b, p bignum.Uint256) (bignum.Uint256, error) {
	if b.IsZero() {
		return bignum.Uint256{}, makeError(ErrDivideByZero,
			"field: inverse of zero")
	}

	one := bignum.NewInt512(1)
	pi := bignum.Int512FromUint(p.Widen())
	t, nt := bignum.ZeroInt512(), one
	r, nr := pi, bignum.Int512FromUint(b.Widen())

	for !nr.IsZero() {
		q, err := r.Div(nr)
		if err != nil {
			return bignum.Uint256{}, err
		}
		t, nt = nt, t.Sub(q.Mul(nt))
		r, nr = nr, r.Sub(q.Mul(nr))
	}

	if !r.Equal(one) {
		return bignum.Uint256{}, makeError(ErrNoModularInverse,
			fmt.Sprintf("field: %s has no inverse modulo %s", b, p))
	}
	if t.IsNegative() {
		t = t.Add(pi)
	}
	return t.Magnitude().Low(), nil
}

// Div returns a / b mod p, that is a * b^-1. It fails with ErrDivideByZero
// when b is zero and ErrNoModularInverse when b is not invertible.
func Div(a, b, p bignum.Uint256) (bignum.Uint256, error) {
	inv, err := Inverse(b, p)
	if err != nil {
		return bignum.Uint256{}, err
	}
	return Mul(a, inv, p), nil
}
