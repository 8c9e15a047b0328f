package bignum

import "fmt"

// Int512 is a signed integer made of a Uint512 magnitude and a sign flag.
// Zero compares equal to zero regardless of the stored sign. Magnitude
// arithmetic wraps the same way Uint512 does.
type Int512 struct {
	mag         Uint512
	nonNegative bool
}

// Int512FromRaw returns the Int512 with magnitude mag, non-negative when
// nonNegative is set.
func Int512FromRaw(mag Uint512, nonNegative bool) Int512 {
	return Int512{mag: mag, nonNegative: nonNegative}
}

// Int512FromUint returns the non-negative Int512 with magnitude u.
func Int512FromUint(u Uint512) Int512 {
	return Int512{mag: u, nonNegative: true}
}

// NewInt512 returns the Int512 holding v.
func NewInt512(v int64) Int512 {
	return Int512{mag: Uint512{abs64(v)}, nonNegative: v >= 0}
}

// ZeroInt512 returns the canonical zero.
func ZeroInt512() Int512 {
	return Int512{nonNegative: true}
}

// Magnitude returns |x|.
func (x Int512) Magnitude() Uint512 {
	return x.mag
}

// IsNonNegative reports whether the sign flag of x is non-negative. A zero
// built with Int512FromRaw(0, false) reports false.
func (x Int512) IsNonNegative() bool {
	return x.nonNegative
}

// IsNegative reports whether x is strictly below zero.
func (x Int512) IsNegative() bool {
	return !x.nonNegative && !x.mag.IsZero()
}

// IsZero reports whether the magnitude of x is zero.
func (x Int512) IsZero() bool {
	return x.mag.IsZero()
}

// ToUint512 returns the magnitude of a non-negative x. It fails with
// ErrNegativeValue when x is below zero.
func (x Int512) ToUint512() (Uint512, error) {
	if x.IsNegative() {
		return Uint512{}, makeError(ErrNegativeValue,
			fmt.Sprintf("int512: %s is negative", x))
	}
	return x.mag, nil
}

// Neg returns -x. Only the sign flag changes.
func (x Int512) Neg() Int512 {
	return Int512{mag: x.mag, nonNegative: !x.nonNegative}
}

// Cmp returns -1, 0 or +1 depending on whether x is less than, equal to or
// greater than y.
func (x Int512) Cmp(y Int512) int {
	xZero, yZero := x.mag.IsZero(), y.mag.IsZero()
	switch {
	case xZero && yZero:
		return 0
	case xZero:
		if y.nonNegative {
			return -1
		}
		return 1
	case yZero:
		if x.nonNegative {
			return 1
		}
		return -1
	case x.nonNegative != y.nonNegative:
		if x.nonNegative {
			return 1
		}
		return -1
	}

	c := x.mag.Cmp(y.mag)
	if !x.nonNegative {
		return -c
	}
	return c
}

// Equal reports whether x and y denote the same integer.
func (x Int512) Equal(y Int512) bool {
	if x.mag.IsZero() && y.mag.IsZero() {
		return true
	}
	return x.nonNegative == y.nonNegative && x.mag == y.mag
}

// Add returns x + y.
func (x Int512) Add(y Int512) Int512 {
	switch {
	case x.mag.IsZero() && y.mag.IsZero():
		return ZeroInt512()
	case x.mag.IsZero():
		return y
	case y.mag.IsZero():
		return x
	case x.nonNegative == y.nonNegative:
		return Int512{mag: x.mag.Add(y.mag), nonNegative: x.nonNegative}
	case x.mag.Less(y.mag):
		return Int512{mag: y.mag.Sub(x.mag), nonNegative: y.nonNegative}
	default:
		return Int512{mag: x.mag.Sub(y.mag), nonNegative: x.nonNegative}
	}
}

// Sub returns x - y, computed as x + (-y).
func (x Int512) Sub(y Int512) Int512 {
	return x.Add(y.Neg())
}

// Mul returns x * y. The sign is positive when the operand signs match.
func (x Int512) Mul(y Int512) Int512 {
	return Int512{
		mag:         x.mag.Mul(y.mag),
		nonNegative: x.nonNegative == y.nonNegative,
	}
}

// Div returns x / y rounded toward zero. It fails with ErrDivideByZero when
// y is zero.
func (x Int512) Div(y Int512) (Int512, error) {
	q, err := x.mag.Div(y.mag)
	if err != nil {
		return Int512{}, err
	}
	return Int512{mag: q, nonNegative: x.nonNegative == y.nonNegative}, nil
}

// String renders x in the debug hex format with a leading minus sign when
// the sign flag is negative.
func (x Int512) String() string {
	if x.nonNegative {
		return x.mag.String()
	}
	return "-" + x.mag.String()
}
