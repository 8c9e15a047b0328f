package bignum

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecarith/internal/limbs"
)

// Uint256Words is the number of 64-bit words in a Uint256.
const Uint256Words = 4

// Uint256 is an unsigned 256-bit integer stored as four 64-bit words, least
// significant word first. All arithmetic is performed modulo 2^256: addition
// and subtraction wrap, and multiplication keeps only the low 256 bits of
// the product.
//
// The raw word array is the stable serialized form of the type:
//
//	Uint256{0x59f2815b16f81798, 0x029bfcdb2dce28d9, 0x55a06295ce870b07, 0x79be667ef9dcbbac}
//
// is 0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798.
type Uint256 [Uint256Words]uint64

var _ Fixed[Uint256] = Uint256{}

// NewUint256 returns the Uint256 holding v.
func NewUint256(v uint64) Uint256 {
	return Uint256{v}
}

// Uint256FromInt64 returns the Uint256 holding the absolute value of v.
func Uint256FromInt64(v int64) Uint256 {
	return Uint256{abs64(v)}
}

// Uint256FromRaw returns the Uint256 with the given little-endian words.
func Uint256FromRaw(words [Uint256Words]uint64) Uint256 {
	return Uint256(words)
}

// ZeroUint256 returns 0.
func ZeroUint256() Uint256 {
	return Uint256{}
}

// OneUint256 returns 1.
func OneUint256() Uint256 {
	return Uint256{1}
}

// MaxUint256 returns 2^256 - 1.
func MaxUint256() Uint256 {
	return Uint256{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
}

// Uint256FromBytes interprets b as a big-endian 256-bit unsigned integer.
func Uint256FromBytes(b *[32]byte) Uint256 {
	var x Uint256
	putBigEndian(x[:], b[:])
	return x
}

// Uint256FromBig converts a non-negative big.Int of at most 256 bits.
func Uint256FromBig(v *big.Int) (Uint256, error) {
	var x Uint256
	if err := fromBig(x[:], v, "uint256"); err != nil {
		return Uint256{}, err
	}
	return x, nil
}

// Raw returns the little-endian words of x.
func (x Uint256) Raw() [Uint256Words]uint64 {
	return x
}

// Bytes returns x as 32 big-endian bytes.
func (x Uint256) Bytes() [32]byte {
	var b [32]byte
	getBigEndian(b[:], x[:])
	return b
}

// Big returns x as a big.Int.
func (x Uint256) Big() *big.Int {
	b := x.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Widen zero-extends x to 512 bits.
func (x Uint256) Widen() Uint512 {
	var z Uint512
	copy(z[:], x[:])
	return z
}

// Add returns x + y mod 2^256.
func (x Uint256) Add(y Uint256) Uint256 {
	var z Uint256
	limbs.Add(z[:], x[:], y[:])
	return z
}

// Sub returns x - y mod 2^256.
func (x Uint256) Sub(y Uint256) Uint256 {
	var z Uint256
	limbs.Sub(z[:], x[:], y[:])
	return z
}

// Mul returns the low 256 bits of x * y. Callers that need the full product
// must widen both operands to Uint512 first.
func (x Uint256) Mul(y Uint256) Uint256 {
	var z Uint256
	limbs.Mul(z[:], x[:], y[:])
	return z
}

// Div returns x / y rounded toward zero. It fails with ErrDivideByZero when
// y is zero.
func (x Uint256) Div(y Uint256) (Uint256, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// DivMod returns x / y and x mod y. It fails with ErrDivideByZero when y is
// zero.
func (x Uint256) DivMod(y Uint256) (Uint256, Uint256, error) {
	if y.IsZero() {
		return Uint256{}, Uint256{}, makeError(ErrDivideByZero,
			"uint256: division by zero")
	}
	var q, r Uint256
	limbs.DivMod(q[:], r[:], x[:], y[:])
	return q, r, nil
}

// DivUint64 returns x / d using short division. It fails with
// ErrDivideByZero when d is zero.
func (x Uint256) DivUint64(d uint64) (Uint256, error) {
	if d == 0 {
		return Uint256{}, makeError(ErrDivideByZero,
			"uint256: division by zero")
	}
	var q Uint256
	limbs.DivWord(q[:], x[:], d)
	return q, nil
}

// Cmp returns -1, 0 or +1 depending on whether x is less than, equal to or
// greater than y.
func (x Uint256) Cmp(y Uint256) int {
	return limbs.Cmp(x[:], y[:])
}

// Equal reports whether x == y.
func (x Uint256) Equal(y Uint256) bool {
	return x == y
}

// Less reports whether x < y.
func (x Uint256) Less(y Uint256) bool {
	return x.Cmp(y) < 0
}

// IsZero reports whether x is 0.
func (x Uint256) IsZero() bool {
	return x == Uint256{}
}

// IsOne reports whether x is 1.
func (x Uint256) IsOne() bool {
	return x == Uint256{1}
}

// IsOdd reports whether the least significant bit of x is set.
func (x Uint256) IsOdd() bool {
	return x[0]&1 == 1
}

// IsEven reports whether the least significant bit of x is clear.
func (x Uint256) IsEven() bool {
	return x[0]&1 == 0
}

// DigitCount returns the 1-based index of the most significant non-zero
// word. Zero reports 1.
func (x Uint256) DigitCount() int {
	return limbs.DigitCount(x[:])
}

// BitLen returns the number of bits needed to represent x.
func (x Uint256) BitLen() int {
	return limbs.BitLen(x[:])
}

// Bit returns bit i of x.
func (x Uint256) Bit(i int) uint {
	return bit(x[:], i)
}

// String renders every word of x as 16 hex digits, most significant first,
// after a 0x prefix. It is meant for logs and test fixtures.
func (x Uint256) String() string {
	return debugHex(x[:])
}

// Text returns the shortest 0x-prefixed hex form of x.
func (x Uint256) Text() string {
	return shortHex(x[:])
}

// Dec returns the decimal form of x.
func (x Uint256) Dec() string {
	return decimal(x[:])
}

// Format implements fmt.Formatter. %x and %X print the shortest hex digits
// without a prefix, %d prints decimal and every other verb prints String.
func (x Uint256) Format(s fmt.State, verb rune) {
	format(s, verb, x[:])
}

// ParseUint256 parses a 0x-prefixed hexadecimal or a plain decimal string.
func ParseUint256(s string) (Uint256, error) {
	var x Uint256
	if err := parse(x[:], s, "uint256"); err != nil {
		return Uint256{}, err
	}
	return x, nil
}

// MustParseUint256 is like ParseUint256 but panics on malformed input. It is
// intended for package-level constants.
func MustParseUint256(s string) Uint256 {
	x, err := ParseUint256(s)
	if err != nil {
		panic(fmt.Sprintf("bignum: MustParseUint256(%q): %v", s, err))
	}
	return x
}
