package bignum

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecarith/internal/limbs"
)

// Uint512Words is the number of 64-bit words in a Uint512.
const Uint512Words = 8

// Uint512 is an unsigned 512-bit integer stored as eight 64-bit words,
// least significant word first. It shares the wrap-around semantics of
// Uint256 and is mostly used as the double-width intermediate for modular
// arithmetic on 256-bit operands.
type Uint512 [Uint512Words]uint64

var _ Fixed[Uint512] = Uint512{}

// NewUint512 returns the Uint512 holding v.
func NewUint512(v uint64) Uint512 {
	return Uint512{v}
}

// Uint512FromInt64 returns the Uint512 holding the absolute value of v.
func Uint512FromInt64(v int64) Uint512 {
	return Uint512{abs64(v)}
}

// Uint512FromRaw returns the Uint512 with the given little-endian words.
func Uint512FromRaw(words [Uint512Words]uint64) Uint512 {
	return Uint512(words)
}

// ZeroUint512 returns 0.
func ZeroUint512() Uint512 {
	return Uint512{}
}

// OneUint512 returns 1.
func OneUint512() Uint512 {
	return Uint512{1}
}

// MaxUint512 returns 2^512 - 1.
func MaxUint512() Uint512 {
	var x Uint512
	for i := range x {
		x[i] = ^uint64(0)
	}
	return x
}

// Uint512FromBytes interprets b as a big-endian 512-bit unsigned integer.
func Uint512FromBytes(b *[64]byte) Uint512 {
	var x Uint512
	putBigEndian(x[:], b[:])
	return x
}

// Uint512FromBig converts a non-negative big.Int of at most 512 bits.
func Uint512FromBig(v *big.Int) (Uint512, error) {
	var x Uint512
	if err := fromBig(x[:], v, "uint512"); err != nil {
		return Uint512{}, err
	}
	return x, nil
}

// Raw returns the little-endian words of x.
func (x Uint512) Raw() [Uint512Words]uint64 {
	return x
}

// Bytes returns x as 64 big-endian bytes.
func (x Uint512) Bytes() [64]byte {
	var b [64]byte
	getBigEndian(b[:], x[:])
	return b
}

// Big returns x as a big.Int.
func (x Uint512) Big() *big.Int {
	b := x.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Narrow converts x to a Uint256. It fails with ErrWidthOverflow when any of
// the upper four words is in use.
func (x Uint512) Narrow() (Uint256, error) {
	if x.DigitCount() > Uint256Words {
		return Uint256{}, makeError(ErrWidthOverflow,
			fmt.Sprintf("uint512: %s does not fit in 256 bits", x))
	}
	return x.Low(), nil
}

// Low returns the low 256 bits of x, discarding the rest.
func (x Uint512) Low() Uint256 {
	var z Uint256
	copy(z[:], x[:Uint256Words])
	return z
}

// Add returns x + y mod 2^512.
func (x Uint512) Add(y Uint512) Uint512 {
	var z Uint512
	limbs.Add(z[:], x[:], y[:])
	return z
}

// Sub returns x - y mod 2^512.
func (x Uint512) Sub(y Uint512) Uint512 {
	var z Uint512
	limbs.Sub(z[:], x[:], y[:])
	return z
}

// Mul returns the low 512 bits of x * y. The product of two widened Uint256
// values always fits.
func (x Uint512) Mul(y Uint512) Uint512 {
	var z Uint512
	limbs.Mul(z[:], x[:], y[:])
	return z
}

// Div returns x / y rounded toward zero. It fails with ErrDivideByZero when
// y is zero.
func (x Uint512) Div(y Uint512) (Uint512, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// DivMod returns x / y and x mod y. It fails with ErrDivideByZero when y is
// zero.
func (x Uint512) DivMod(y Uint512) (Uint512, Uint512, error) {
	if y.IsZero() {
		return Uint512{}, Uint512{}, makeError(ErrDivideByZero,
			"uint512: division by zero")
	}
	var q, r Uint512
	limbs.DivMod(q[:], r[:], x[:], y[:])
	return q, r, nil
}

// DivUint64 returns x / d using short division. It fails with
// ErrDivideByZero when d is zero.
func (x Uint512) DivUint64(d uint64) (Uint512, error) {
	if d == 0 {
		return Uint512{}, makeError(ErrDivideByZero,
			"uint512: division by zero")
	}
	var q Uint512
	limbs.DivWord(q[:], x[:], d)
	return q, nil
}

// Cmp returns -1, 0 or +1 depending on whether x is less than, equal to or
// greater than y.
func (x Uint512) Cmp(y Uint512) int {
	return limbs.Cmp(x[:], y[:])
}

// Equal reports whether x == y.
func (x Uint512) Equal(y Uint512) bool {
	return x == y
}

// Less reports whether x < y.
func (x Uint512) Less(y Uint512) bool {
	return x.Cmp(y) < 0
}

// IsZero reports whether x is 0.
func (x Uint512) IsZero() bool {
	return x == Uint512{}
}

// IsOne reports whether x is 1.
func (x Uint512) IsOne() bool {
	return x == Uint512{1}
}

// IsOdd reports whether the least significant bit of x is set.
func (x Uint512) IsOdd() bool {
	return x[0]&1 == 1
}

// IsEven reports whether the least significant bit of x is clear.
func (x Uint512) IsEven() bool {
	return x[0]&1 == 0
}

// DigitCount returns the 1-based index of the most significant non-zero
// word. Zero reports 1.
func (x Uint512) DigitCount() int {
	return limbs.DigitCount(x[:])
}

// BitLen returns the number of bits needed to represent x.
func (x Uint512) BitLen() int {
	return limbs.BitLen(x[:])
}

// Bit returns bit i of x.
func (x Uint512) Bit(i int) uint {
	return bit(x[:], i)
}

// String renders every word of x as 16 hex digits, most significant first,
// after a 0x prefix.
func (x Uint512) String() string {
	return debugHex(x[:])
}

// Text returns the shortest 0x-prefixed hex form of x.
func (x Uint512) Text() string {
	return shortHex(x[:])
}

// Dec returns the decimal form of x.
func (x Uint512) Dec() string {
	return decimal(x[:])
}

// Format implements fmt.Formatter the same way Uint256.Format does.
func (x Uint512) Format(s fmt.State, verb rune) {
	format(s, verb, x[:])
}

// ParseUint512 parses a 0x-prefixed hexadecimal or a plain decimal string.
func ParseUint512(s string) (Uint512, error) {
	var x Uint512
	if err := parse(x[:], s, "uint512"); err != nil {
		return Uint512{}, err
	}
	return x, nil
}
