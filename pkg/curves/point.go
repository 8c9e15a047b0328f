package curves

import (
	"fmt"

	"github.com/smallyu/go-ecarith/pkg/bignum"
)

var (
	one = bignum.NewUint256(1)
	two = bignum.NewUint256(2)
)

// Point is an affine point (x, y) on a Curve. Points are values: every
// operation returns a new point and leaves its operands untouched. The zero
// Point belongs to no curve and every operation on it fails.
type Point struct {
	x, y  bignum.Uint256
	curve *Curve
}

// X returns the x coordinate.
func (pt Point) X() bignum.Uint256 { return pt.x }

// Y returns the y coordinate.
func (pt Point) Y() bignum.Uint256 { return pt.y }

// Curve returns the curve pt belongs to.
func (pt Point) Curve() *Curve { return pt.curve }

// Equal reports whether pt and q have the same coordinates and belong to
// the same curve instance.
func (pt Point) Equal(q Point) bool {
	return pt.curve == q.curve && pt.x == q.x && pt.y == q.y
}

// IsOnCurve reports whether pt satisfies the equation of its curve.
func (pt Point) IsOnCurve() bool {
	return pt.curve != nil && pt.curve.IsOnCurve(pt.x, pt.y)
}

// Neg returns -pt = (x, -y).
func (pt Point) Neg() Point {
	if pt.curve == nil {
		return pt
	}
	return Point{x: pt.x, y: pt.curve.f.Neg(pt.y), curve: pt.curve}
}

// Double returns 2*pt using the tangent slope (3x^2 + a) / 2y. It fails when
// y is zero, where the tangent is vertical and the result is the point at
// infinity; the error wraps field.ErrDivideByZero.
func (pt Point) Double() (Point, error) {
	if pt.curve == nil {
		return Point{}, errNoCurve()
	}
	c := pt.curve
	f := c.f
	x, y := pt.x, pt.y

	num := f.Add(f.MulUint64(f.Square(x), 3), c.params.A)
	den := f.MulUint64(y, 2)
	lambda, err := f.Div(num, den)
	if err != nil {
		return Point{}, fmt.Errorf("curves: double %s: %w", pt, err)
	}

	x3 := f.Sub(f.Square(lambda), f.MulUint64(x, 2))
	y3 := f.Sub(f.Mul(lambda, f.Sub(x, x3)), y)
	return Point{x: x3, y: y3, curve: c}, nil
}

// Add returns pt + q using the chord slope (y2 - y1) / (x2 - x1). It fails
// with ErrDegenerateGeometry when the x coordinates match, which covers
// both pt == q (use Double) and q == -pt (the point at infinity).
func (pt Point) Add(q Point) (Point, error) {
	if pt.curve == nil || q.curve == nil {
		return Point{}, errNoCurve()
	}
	if pt.curve != q.curve {
		return Point{}, makeError(ErrCurveMismatch,
			fmt.Sprintf("curves: cannot add a %s point to a %s point",
				pt.curve.params.Name, q.curve.params.Name))
	}
	if pt.x == q.x {
		return Point{}, makeError(ErrDegenerateGeometry,
			fmt.Sprintf("curves: add %s and %s: shared x coordinate", pt, q))
	}

	c := pt.curve
	f := c.f
	lambda, err := f.Div(f.Sub(q.y, pt.y), f.Sub(q.x, pt.x))
	if err != nil {
		return Point{}, fmt.Errorf("curves: add %s and %s: %w", pt, q, err)
	}

	x3 := f.Sub(f.Sub(f.Square(lambda), pt.x), q.x)
	y3 := f.Sub(f.Mul(lambda, f.Sub(pt.x, x3)), pt.y)
	return Point{x: x3, y: y3, curve: c}, nil
}

// ScalarMult returns k*pt by recursive double-and-add on the value of k:
// even k doubles (k/2)*pt and odd k adds pt to (k-1)*pt. The recursion
// depth is at most twice the bit length of k. A zero scalar fails with
// ErrDegenerateGeometry.
func (pt Point) ScalarMult(k bignum.Uint256) (Point, error) {
	if pt.curve == nil {
		return Point{}, errNoCurve()
	}

	switch {
	case k.IsZero():
		return Point{}, makeError(ErrDegenerateGeometry,
			"curves: scalar multiplication by zero")

	case k.IsOne():
		return pt, nil

	case k.Equal(two):
		return pt.Double()

	case k.IsOdd():
		r, err := pt.ScalarMult(k.Sub(one))
		if err != nil {
			return Point{}, err
		}
		return r.Add(pt)

	default:
		half, err := k.DivUint64(2)
		if err != nil {
			return Point{}, err
		}
		r, err := pt.ScalarMult(half)
		if err != nil {
			return Point{}, err
		}
		return r.Double()
	}
}

// String renders the coordinates in the debug hex format.
func (pt Point) String() string {
	return fmt.Sprintf("(%s, %s)", pt.x, pt.y)
}

func errNoCurve() error {
	return makeError(ErrCurveMismatch, "curves: point is not bound to a curve")
}
