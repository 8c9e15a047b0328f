package curves

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecarith/pkg/bignum"
)

// ToJacobian converts a secp256k1 point into the Jacobian form used by
// github.com/decred/dcrd/dcrec/secp256k1, with Z = 1. Points on any other
// curve fail with ErrCurveMismatch.
func (pt Point) ToJacobian() (secp256k1.JacobianPoint, error) {
	if pt.curve != Secp256k1() {
		return secp256k1.JacobianPoint{}, makeError(ErrCurveMismatch,
			"curves: only secp256k1 points convert to decred points")
	}

	xb, yb := pt.x.Bytes(), pt.y.Bytes()
	var x, y, z secp256k1.FieldVal
	x.SetBytes(&xb)
	y.SetBytes(&yb)
	z.SetInt(1)
	return secp256k1.MakeJacobianPoint(&x, &y, &z), nil
}

// FromJacobian converts a decred secp256k1 point to an affine Point on
// Secp256k1. The point at infinity fails with ErrDegenerateGeometry and
// any other point off the curve with ErrPointNotOnCurve.
func FromJacobian(jp *secp256k1.JacobianPoint) (Point, error) {
	p := *jp
	if p.Z.Normalize().IsZero() {
		return Point{}, makeError(ErrDegenerateGeometry,
			"curves: the point at infinity has no affine form")
	}
	p.ToAffine()

	return Secp256k1().TryNewPoint(
		bignum.Uint256FromBytes(p.X.Bytes()),
		bignum.Uint256FromBytes(p.Y.Bytes()),
	)
}
