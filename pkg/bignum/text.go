package bignum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smallyu/go-ecarith/internal/limbs"
)

// pow10x19 is the largest power of ten that fits in a word.
const pow10x19 = 10_000_000_000_000_000_000

// debugHex renders x as 0x followed by every word as 16 hex digits, most
// significant word first.
func debugHex(x []uint64) string {
	var sb strings.Builder
	sb.Grow(2 + 16*len(x))
	sb.WriteString("0x")
	for i := len(x) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", x[i])
	}
	return sb.String()
}

// shortHex renders x in hex without leading zeros.
func shortHex(x []uint64) string {
	return "0x" + hexDigits(x)
}

func hexDigits(x []uint64) string {
	top := limbs.DigitCount(x) - 1
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(x[top], 16))
	for i := top - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", x[i])
	}
	return sb.String()
}

// decimal renders x in base 10 by peeling off 19 digits at a time.
func decimal(x []uint64) string {
	if limbs.IsZero(x) {
		return "0"
	}
	q := make([]uint64, len(x))
	copy(q, x)
	var chunks []uint64
	for !limbs.IsZero(q) {
		chunks = append(chunks, limbs.DivWord(q, q, pow10x19))
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(chunks[len(chunks)-1], 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%019d", chunks[i])
	}
	return sb.String()
}

func format(s fmt.State, verb rune, x []uint64) {
	var out string
	switch verb {
	case 'x':
		out = hexDigits(x)
	case 'X':
		out = strings.ToUpper(hexDigits(x))
	case 'd':
		out = decimal(x)
	default:
		out = debugHex(x)
	}
	if s.Flag('#') && (verb == 'x' || verb == 'X') {
		out = "0x" + out
	}
	fmt.Fprint(s, out)
}

// parse reads s into z. Text starting with 0x or 0X is hexadecimal, anything
// else is decimal. Other base prefixes are rejected with ErrUnsupported.
func parse(z []uint64, s string, name string) error {
	clear(z)

	digits, base := s, uint64(10)
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			digits, base = s[2:], 16
		case 'b', 'B', 'o', 'O':
			return makeError(ErrUnsupported,
				fmt.Sprintf("%s: unsupported base prefix in %q", name, s))
		}
	}
	if digits == "" {
		return makeError(ErrInvalidString,
			fmt.Sprintf("%s: no digits in %q", name, s))
	}

	for i := 0; i < len(digits); i++ {
		d, ok := digitValue(digits[i])
		if !ok || d >= base {
			return makeError(ErrInvalidString,
				fmt.Sprintf("%s: invalid digit %q in %q", name, digits[i], s))
		}
		if limbs.MulAddWord(z, z, base, d) != 0 {
			clear(z)
			return makeError(ErrWidthOverflow,
				fmt.Sprintf("%s: %q does not fit in %d bits", name, s, 64*len(z)))
		}
	}
	return nil
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint64(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}
