// Package polynomial implements Shamir sharing polynomials over the scalar
// field of a curve, with Lagrange reconstruction and Feldman commitments.
package polynomial

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-ecarith/pkg/bignum"
	"github.com/smallyu/go-ecarith/pkg/curves"
	"github.com/smallyu/go-ecarith/pkg/field"
)

// ErrShareCount is returned when share x and y slices differ in length or
// are empty.
var ErrShareCount = errors.New("polynomial: mismatched or empty shares")

// Polynomial represents a polynomial f(x) = a_0 + a_1*x + ... + a_t*x^t
// over the scalar field of the curve.
type Polynomial struct {
	Coefficients []bignum.Uint256
	Curve        *curves.Curve
}

func scalarField(curve *curves.Curve) (field.Field, error) {
	f, err := field.New(curve.Order())
	if err != nil {
		return field.Field{}, fmt.Errorf("polynomial: %s scalar field: %w", curve, err)
	}
	return f, nil
}

// New generates a random polynomial of given degree with the constant term (secret) provided.
// If secret is nil, a random constant term is generated.
func New(curve *curves.Curve, degree int, secret *bignum.Uint256) (*Polynomial, error) {
	if degree < 0 {
		return nil, fmt.Errorf("polynomial: negative degree %d", degree)
	}
	coeffs := make([]bignum.Uint256, degree+1)
	var err error

	if secret == nil {
		coeffs[0], err = curve.RandomScalar(nil)
		if err != nil {
			return nil, err
		}
	} else {
		f, err := scalarField(curve)
		if err != nil {
			return nil, err
		}
		coeffs[0] = f.Reduce(*secret)
	}

	for i := 1; i <= degree; i++ {
		coeffs[i], err = curve.RandomScalar(nil)
		if err != nil {
			return nil, err
		}
	}

	return &Polynomial{
		Coefficients: coeffs,
		Curve:        curve,
	}, nil
}

// Evaluate calculates f(x) mod n by Horner's method.
func (p *Polynomial) Evaluate(x bignum.Uint256) bignum.Uint256 {
	n := p.Curve.Order()
	x = field.Reduce(x.Widen(), n)

	degree := len(p.Coefficients) - 1
	result := field.Reduce(p.Coefficients[degree].Widen(), n)
	for i := degree - 1; i >= 0; i-- {
		result = field.Add(field.Mul(result, x, n), field.Reduce(p.Coefficients[i].Widen(), n), n)
	}
	return result
}

// EvaluateMulti calculates f(x) for multiple x values
func (p *Polynomial) EvaluateMulti(xs []bignum.Uint256) []bignum.Uint256 {
	results := make([]bignum.Uint256, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}

// Interpolate recovers f(0) from the shares (xs[i], ys[i]) by Lagrange
// interpolation. Repeated x values fail with field.ErrDivideByZero.
func Interpolate(curve *curves.Curve, xs, ys []bignum.Uint256) (bignum.Uint256, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return bignum.Uint256{}, ErrShareCount
	}
	f, err := scalarField(curve)
	if err != nil {
		return bignum.Uint256{}, err
	}

	secret := bignum.ZeroUint256()
	for i := range xs {
		// l_i(0) = prod_{j != i} x_j / (x_j - x_i)
		num, den := bignum.OneUint256(), bignum.OneUint256()
		xi := f.Reduce(xs[i])
		for j := range xs {
			if j == i {
				continue
			}
			xj := f.Reduce(xs[j])
			num = f.Mul(num, xj)
			den = f.Mul(den, f.Sub(xj, xi))
		}
		li, err := f.Div(num, den)
		if err != nil {
			return bignum.Uint256{}, fmt.Errorf("polynomial: share %d: %w", i, err)
		}
		secret = f.Add(secret, f.Mul(f.Reduce(ys[i]), li))
	}
	return secret, nil
}

// Commit returns the Feldman commitments a_i*G. A zero coefficient has no
// affine commitment and fails with curves.ErrDegenerateGeometry.
func (p *Polynomial) Commit() ([]curves.Point, error) {
	commitments := make([]curves.Point, len(p.Coefficients))
	for i, a := range p.Coefficients {
		c, err := p.Curve.ScalarBaseMult(a)
		if err != nil {
			return nil, fmt.Errorf("polynomial: commit a_%d: %w", i, err)
		}
		commitments[i] = c
	}
	return commitments, nil
}

// VerifyShare checks y*G == sum x^i * C_i for the commitments C_i. Share
// indices are non-zero; x = 0 is the secret itself and has a zero power term.
func VerifyShare(curve *curves.Curve, commitments []curves.Point, x, y bignum.Uint256) (bool, error) {
	if len(commitments) == 0 {
		return false, ErrShareCount
	}
	f, err := scalarField(curve)
	if err != nil {
		return false, err
	}

	want, err := curve.ScalarBaseMult(f.Reduce(y))
	if err != nil {
		return false, err
	}

	x = f.Reduce(x)
	power := bignum.OneUint256()
	var sum curves.Point
	for i, c := range commitments {
		term, err := c.ScalarMult(power)
		if err != nil {
			return false, fmt.Errorf("polynomial: term %d: %w", i, err)
		}
		if i == 0 {
			sum = term
		} else if sum, err = addPoints(sum, term); err != nil {
			return false, fmt.Errorf("polynomial: term %d: %w", i, err)
		}
		power = f.Mul(power, x)
	}
	return sum.Equal(want), nil
}

// addPoints adds p and q, doubling when they coincide.
func addPoints(p, q curves.Point) (curves.Point, error) {
	if p.Equal(q) {
		return p.Double()
	}
	return p.Add(q)
}
