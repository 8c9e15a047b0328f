// Package bignum implements fixed-width multi-precision integers: the
// unsigned Uint256 and Uint512 types and the signed Int512 wrapper used by
// modular inversion.
//
// Unlike math/big, the width never changes. Addition and subtraction wrap
// modulo 2^W and multiplication silently drops the high half of the
// product. Code that needs the full product of two Uint256 values widens
// them to Uint512 first; pkg/field does this for every multiplication.
package bignum

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Fixed is the operation set shared by the fixed-width unsigned types.
// Both Uint256 and Uint512 implement Fixed over themselves.
type Fixed[T any] interface {
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Div(y T) (T, error)
	DivMod(y T) (T, T, error)
	DivUint64(d uint64) (T, error)
	Cmp(y T) int
	Equal(y T) bool
	Less(y T) bool
	IsZero() bool
	IsOne() bool
	IsOdd() bool
	IsEven() bool
	DigitCount() int
	BitLen() int
	Bit(i int) uint
	Big() *big.Int
	String() string
}

// abs64 returns |v| as a uint64. It is well defined for math.MinInt64.
func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(^v) + 1
	}
	return uint64(v)
}

// bit returns bit i of the little-endian words x.
func bit(x []uint64, i int) uint {
	if i < 0 || i >= len(x)*64 {
		return 0
	}
	return uint(x[i/64]>>(uint(i)%64)) & 1
}

// putBigEndian fills the words z from the big-endian bytes b, where
// len(b) == 8*len(z).
func putBigEndian(z []uint64, b []byte) {
	for i := range z {
		off := len(b) - 8*(i+1)
		z[i] = binary.BigEndian.Uint64(b[off : off+8])
	}
}

// getBigEndian writes the words x into b as big-endian bytes.
func getBigEndian(b []byte, x []uint64) {
	for i, w := range x {
		off := len(b) - 8*(i+1)
		binary.BigEndian.PutUint64(b[off:off+8], w)
	}
}

// fromBig loads v into z, failing if v is negative or too wide.
func fromBig(z []uint64, v *big.Int, name string) error {
	if v.Sign() < 0 {
		return makeError(ErrNegativeValue,
			fmt.Sprintf("%s: negative value %s", name, v))
	}
	if v.BitLen() > 64*len(z) {
		return makeError(ErrWidthOverflow,
			fmt.Sprintf("%s: value needs %d bits", name, v.BitLen()))
	}
	b := make([]byte, 8*len(z))
	v.FillBytes(b)
	putBigEndian(z, b)
	return nil
}
