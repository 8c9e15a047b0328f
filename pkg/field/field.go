package field

import (
	"fmt"

	"github.com/smallyu/go-ecarith/pkg/bignum"
)

// Field is the prime field of integers modulo p. It is a small value type;
// copies are cheap and safe to share between goroutines.
type Field struct {
	p bignum.Uint256
}

// New returns the field with modulus p. Primality is not checked, but p must
// be odd and at least 3, which every prime used as an elliptic-curve field
// modulus satisfies.
func New(p bignum.Uint256) (Field, error) {
	if p.IsEven() || p.Less(bignum.NewUint256(3)) {
		return Field{}, makeError(ErrInvalidModulus,
			fmt.Sprintf("field: invalid modulus %s", p))
	}
	return Field{p: p}, nil
}

// Modulus returns p.
func (f Field) Modulus() bignum.Uint256 { return f.p }

// Contains reports whether a is a reduced element, i.e. a < p.
func (f Field) Contains(a bignum.Uint256) bool { return a.Less(f.p) }

// Reduce returns a mod p.
func (f Field) Reduce(a bignum.Uint256) bignum.Uint256 { return Reduce(a.Widen(), f.p) }

// Add returns a + b mod p.
func (f Field) Add(a, b bignum.Uint256) bignum.Uint256 { return Add(a, b, f.p) }

// Sub returns a - b mod p.
func (f Field) Sub(a, b bignum.Uint256) bignum.Uint256 { return Sub(a, b, f.p) }

// Neg returns -a mod p.
func (f Field) Neg(a bignum.Uint256) bignum.Uint256 { return Neg(a, f.p) }

// Mul returns a * b mod p.
func (f Field) Mul(a, b bignum.Uint256) bignum.Uint256 { return Mul(a, b, f.p) }

// MulUint64 returns a * k mod p for a small constant k.
func (f Field) MulUint64(a bignum.Uint256, k uint64) bignum.Uint256 {
	return Mul(a, f.Reduce(bignum.NewUint256(k)), f.p)
}

// Square returns a^2 mod p.
func (f Field) Square(a bignum.Uint256) bignum.Uint256 { return Square(a, f.p) }

// Exp returns a^e mod p.
func (f Field) Exp(a, e bignum.Uint256) bignum.Uint256 { return Exp(a, e, f.p) }

// Inverse returns a^-1 mod p.
func (f Field) Inverse(a bignum.Uint256) (bignum.Uint256, error) { return Inverse(a, f.p) }

// Div returns a / b mod p.
func (f Field) Div(a, b bignum.Uint256) (bignum.Uint256, error) { return Div(a, b, f.p) }
