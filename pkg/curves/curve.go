// Package curves implements affine point arithmetic on short Weierstrass
// curves y^2 = x^3 + a*x + b over a 256-bit prime field, with the secp256k1,
// secp256r1 and wei25519 parameters built in.
//
// Points have no representation for the point at infinity. Operations whose
// result would be the identity fail with ErrDegenerateGeometry instead.
package curves

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-ecarith/pkg/bignum"
	"github.com/smallyu/go-ecarith/pkg/field"
)

// Params holds the constants that define a curve.
type Params struct {
	Name   string
	P      bignum.Uint256 // field modulus
	A, B   bignum.Uint256 // curve coefficients
	N      bignum.Uint256 // order of the generator
	Gx, Gy bignum.Uint256 // generator
}

// Curve is an elliptic curve over a prime field. A Curve is immutable once
// created. Points remember the *Curve they were made on, and two points are
// only equal when they share the same instance.
type Curve struct {
	params Params
	f      field.Field
}

// NewCurve validates params and returns the curve they describe. The
// generator must lie on the curve and the order must be at least 2.
func NewCurve(params Params) (*Curve, error) {
	f, err := field.New(params.P)
	if err != nil {
		return nil, fmt.Errorf("curves: %s: %w", params.Name, err)
	}
	if !f.Contains(params.A) || !f.Contains(params.B) {
		return nil, makeError(ErrInvalidCurve,
			fmt.Sprintf("curves: %s: coefficients are not reduced", params.Name))
	}
	if params.N.Less(bignum.NewUint256(2)) {
		return nil, makeError(ErrInvalidCurve,
			fmt.Sprintf("curves: %s: group order must be at least 2", params.Name))
	}
	c := &Curve{params: params, f: f}
	if !c.IsOnCurve(params.Gx, params.Gy) {
		return nil, makeError(ErrInvalidCurve,
			fmt.Sprintf("curves: %s: generator is not on the curve", params.Name))
	}
	return c, nil
}

// Name returns the curve name.
func (c *Curve) Name() string { return c.params.Name }

// Params returns a copy of the curve constants.
func (c *Curve) Params() Params { return c.params }

// Modulus returns the field prime p.
func (c *Curve) Modulus() bignum.Uint256 { return c.params.P }

// A returns the linear coefficient of the curve equation.
func (c *Curve) A() bignum.Uint256 { return c.params.A }

// B returns the constant coefficient of the curve equation.
func (c *Curve) B() bignum.Uint256 { return c.params.B }

// Order returns the order of the generator.
func (c *Curve) Order() bignum.Uint256 { return c.params.N }

// Field returns the coordinate field.
func (c *Curve) Field() field.Field { return c.f }

// Generator returns the distinguished base point G.
func (c *Curve) Generator() Point {
	return Point{x: c.params.Gx, y: c.params.Gy, curve: c}
}

// NewPoint returns the point (x, y) on c without checking that it lies on
// the curve. Use TryNewPoint for untrusted coordinates.
func (c *Curve) NewPoint(x, y bignum.Uint256) Point {
	return Point{x: x, y: y, curve: c}
}

// TryNewPoint returns the point (x, y) on c, failing with
// ErrPointNotOnCurve when the coordinates are unreduced or do not satisfy
// the curve equation.
func (c *Curve) TryNewPoint(x, y bignum.Uint256) (Point, error) {
	if !c.IsOnCurve(x, y) {
		return Point{}, makeError(ErrPointNotOnCurve,
			fmt.Sprintf("curves: (%s, %s) is not on %s", x, y, c.params.Name))
	}
	return Point{x: x, y: y, curve: c}, nil
}

// IsOnCurve reports whether x and y are reduced and y^2 = x^3 + a*x + b.
func (c *Curve) IsOnCurve(x, y bignum.Uint256) bool {
	f := c.f
	if !f.Contains(x) || !f.Contains(y) {
		return false
	}
	lhs := f.Square(y)
	rhs := f.Add(f.Mul(f.Square(x), x), f.Add(f.Mul(c.params.A, x), c.params.B))
	return lhs.Equal(rhs)
}

// ScalarBaseMult returns k*G.
func (c *Curve) ScalarBaseMult(k bignum.Uint256) (Point, error) {
	return c.Generator().ScalarMult(k)
}

// RandomScalar draws a uniform scalar in [1, N-1] from r, or from
// crypto/rand when r is nil.
func (c *Curve) RandomScalar(r io.Reader) (bignum.Uint256, error) {
	if r == nil {
		r = rand.Reader
	}
	bound := new(big.Int).Sub(c.params.N.Big(), big.NewInt(1))
	k, err := rand.Int(r, bound)
	if err != nil {
		return bignum.Uint256{}, fmt.Errorf("curves: %s: random scalar: %w", c.params.Name, err)
	}
	k.Add(k, big.NewInt(1))
	return bignum.Uint256FromBig(k)
}

func (c *Curve) String() string { return c.params.Name }
