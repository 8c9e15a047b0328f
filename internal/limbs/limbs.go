// Package limbs implements arithmetic on little-endian slices of 64-bit
// words. Word 0 is the least significant. Every function writes exactly
// len(z) words and discards anything that does not fit, so callers get
// fixed-width wrap-around semantics by sizing z.
//
// The fixed-width integer types in pkg/bignum are thin wrappers over these
// routines.
package limbs

import "math/bits"

// at returns x[i], or 0 when i is past the end of x.
func at(x []uint64, i int) uint64 {
	if i < len(x) {
		return x[i]
	}
	return 0
}

// Cmp compares x and y as unsigned integers, most significant word first.
// Missing high words are treated as zero, so operands of different lengths
// compare by value.
func Cmp(x, y []uint64) int {
	for i := max(len(x), len(y)) - 1; i >= 0; i-- {
		a, b := at(x, i), at(y, i)
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	return 0
}

// IsZero reports whether every word of x is zero.
func IsZero(x []uint64) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// DigitCount returns the 1-based index of the most significant non-zero
// word of x. A zero value has a digit count of 1.
func DigitCount(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i + 1
		}
	}
	return 1
}

// BitLen returns the number of bits needed to represent x.
func BitLen(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*64 + bits.Len64(x[i])
		}
	}
	return 0
}

// Add sets z = x + y modulo 2^(64*len(z)) and returns the carry out of the
// top word of z.
func Add(z, x, y []uint64) uint64 {
	var c uint64
	for i := range z {
		z[i], c = bits.Add64(at(x, i), at(y, i), c)
	}
	return c
}

// Sub sets z = x - y modulo 2^(64*len(z)) and returns the borrow out of the
// top word of z.
func Sub(z, x, y []uint64) uint64 {
	var b uint64
	for i := range z {
		z[i], b = bits.Sub64(at(x, i), at(y, i), b)
	}
	return b
}

// Mul sets z to the low len(z) words of x * y using schoolbook long
// multiplication. Partial products that land at or beyond len(z) are
// dropped. z must not alias x or y.
func Mul(z, x, y []uint64) {
	clear(z)
	for i := 0; i < len(x) && i < len(z); i++ {
		if x[i] == 0 {
			continue
		}
		var carry uint64
		j := 0
		for ; j < len(y) && i+j < len(z); j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			var c uint64
			lo, c = bits.Add64(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			z[i+j] = lo
			carry = hi
		}
		// Rows before i only reached word i+len(y)-1, so this slot is
		// still untouched.
		if i+j < len(z) {
			z[i+j] = carry
		}
	}
}

// MulAddWord sets z = x*m + a modulo 2^(64*len(z)) and returns the word
// carried out of the top of z.
func MulAddWord(z, x []uint64, m, a uint64) uint64 {
	carry := a
	for i := range z {
		hi, lo := bits.Mul64(at(x, i), m)
		var c uint64
		z[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	return carry
}

// DivWord sets q = x / d and returns x mod d. It is the short division
// algorithm: a single pass from the most significant word down, carrying a
// two-word running remainder. d must be non-zero and len(q) >= len(x).
func DivWord(q, x []uint64, d uint64) uint64 {
	var r uint64
	clear(q[len(x):])
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = bits.Div64(r, x[i], d)
	}
	return r
}

// DivMod sets q = u / v and r = u mod v. v must be non-zero, len(q) must be
// at least len(u) and len(r) at least DigitCount(v).
//
// Single-word divisors use DivWord. Longer divisors use Knuth's Algorithm D
// (TAOCP vol. 2, 4.3.1).
func DivMod(q, r, u, v []uint64) {
	clear(q)
	clear(r)

	if Cmp(u, v) < 0 {
		copy(r, u)
		return
	}

	n := DigitCount(v)
	if n == 1 {
		r[0] = DivWord(q, u, v[0])
		return
	}
	m := DigitCount(u) - n

	// D1. Normalize so the leading divisor word has its top bit set.
	s := uint(bits.LeadingZeros64(v[n-1]))
	vn := make([]uint64, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = v[i]<<s | v[i-1]>>(64-s)
	}
	vn[0] = v[0] << s

	un := make([]uint64, m+n+1)
	un[m+n] = u[m+n-1] >> (64 - s)
	for i := m + n - 1; i > 0; i-- {
		un[i] = u[i]<<s | u[i-1]>>(64-s)
	}
	un[0] = u[0] << s

	vTop, vNext := vn[n-1], vn[n-2]

	// D2. Loop over the quotient words, most significant first.
	for j := m; j >= 0; j-- {
		// D3. Estimate qhat from the two leading remainder words and
		// correct it against the second divisor word.
		qhat := ^uint64(0)
		if top := un[j+n]; top != vTop {
			var rhat uint64
			qhat, rhat = bits.Div64(top, un[j+n-1], vTop)
			for {
				hi, lo := bits.Mul64(qhat, vNext)
				if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
					break
				}
				qhat--
				prev := rhat
				rhat += vTop
				if rhat < prev {
					// rhat no longer fits in a word, so the test
					// above can no longer succeed.
					break
				}
			}
		}

		// D4. Multiply and subtract qhat*vn from the current window.
		var borrow, carry uint64
		for i := 0; i < n; i++ {
			hi, lo := bits.Mul64(qhat, vn[i])
			var c uint64
			lo, c = bits.Add64(lo, carry, 0)
			carry = hi + c
			un[j+i], borrow = bits.Sub64(un[j+i], lo, borrow)
		}
		un[j+n], borrow = bits.Sub64(un[j+n], carry, borrow)

		// D5/D6. The window went negative: qhat was one too large, add
		// one divisor length back until it is non-negative again.
		for borrow != 0 {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				un[j+i], c = bits.Add64(un[j+i], vn[i], c)
			}
			un[j+n], c = bits.Add64(un[j+n], 0, c)
			if c != 0 {
				borrow = 0
			}
		}

		if j < len(q) {
			q[j] = qhat
		}
	}

	// D8. Unnormalize the remainder.
	for i := 0; i < n && i < len(r); i++ {
		r[i] = un[i]>>s | un[i+1]<<(64-s)
	}
}
