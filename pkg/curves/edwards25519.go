package curves

import (
	"slices"

	"filippo.io/edwards25519"
	edfield "filippo.io/edwards25519/field"

	"github.com/smallyu/go-ecarith/pkg/bignum"
)

// Constants of the Curve25519 birational maps, as field elements mod
// 2^255 - 19.
var (
	// sqrt(-486664), the scale between Edwards x and Montgomery v. The sign
	// matches the published Wei25519 generator.
	edSqrtM486664 = element(bignum.MustParseUint256("0x70d9120b9f5ff9442d84f723fc03b0813a5e2c2eb482e57d3391fb5500ba81e7"))

	// A/3 for the Montgomery coefficient A = 486662, the shift between
	// Montgomery u and Weierstrass x.
	edAOver3 = element(bignum.MustParseUint256("0x2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaad2451"))
)

func element(x bignum.Uint256) *edfield.Element {
	b := x.Bytes()
	slices.Reverse(b[:])
	e, err := new(edfield.Element).SetBytes(b[:])
	if err != nil {
		panic(err)
	}
	return e
}

func fromElement(e *edfield.Element) bignum.Uint256 {
	var b [32]byte
	copy(b[:], e.Bytes())
	slices.Reverse(b[:])
	return bignum.Uint256FromBytes(&b)
}

// FromEdwards25519 maps a point of the Ed25519 group onto Wei25519 through
// the Montgomery form: u = (1+y)/(1-y), v = sqrt(-486664)*u/x, then
// (u + A/3, v). The identity fails with ErrDegenerateGeometry.
func FromEdwards25519(ep *edwards25519.Point) (Point, error) {
	X, Y, Z, _ := ep.ExtendedCoordinates()
	zInv := new(edfield.Element).Invert(Z)
	x := new(edfield.Element).Multiply(X, zInv)
	y := new(edfield.Element).Multiply(Y, zInv)

	one := new(edfield.Element).One()
	if x.Equal(new(edfield.Element).Zero()) == 1 {
		if y.Equal(one) == 1 {
			return Point{}, makeError(ErrDegenerateGeometry,
				"curves: the Ed25519 identity has no affine Wei25519 form")
		}
		// (0, -1) is the point of order two, (A/3, 0) on Wei25519.
		return Wei25519().TryNewPoint(fromElement(edAOver3), bignum.ZeroUint256())
	}

	u := new(edfield.Element).Subtract(one, y)
	u.Invert(u)
	u.Multiply(u, new(edfield.Element).Add(one, y))

	v := new(edfield.Element).Invert(x)
	v.Multiply(v, u)
	v.Multiply(v, edSqrtM486664)

	wx := new(edfield.Element).Add(u, edAOver3)
	return Wei25519().TryNewPoint(fromElement(wx), fromElement(v))
}

// ToEdwards25519 is the inverse of FromEdwards25519. Points on any other
// curve fail with ErrCurveMismatch.
func (pt Point) ToEdwards25519() (*edwards25519.Point, error) {
	if pt.curve != Wei25519() {
		return nil, makeError(ErrCurveMismatch,
			"curves: only wei25519 points convert to Ed25519 points")
	}

	u := new(edfield.Element).Subtract(element(pt.x), edAOver3)
	v := element(pt.y)
	one := new(edfield.Element).One()

	var x, y *edfield.Element
	if v.Equal(new(edfield.Element).Zero()) == 1 {
		// The point of order two is the only one with v = 0.
		x, y = new(edfield.Element).Zero(), new(edfield.Element).Negate(one)
	} else {
		// y = (u-1)/(u+1), x = sqrt(-486664)*u/v
		y = new(edfield.Element).Add(u, one)
		y.Invert(y)
		y.Multiply(y, new(edfield.Element).Subtract(u, one))

		x = new(edfield.Element).Invert(v)
		x.Multiply(x, u)
		x.Multiply(x, edSqrtM486664)
	}

	// Encode y with the sign of x in the top bit and let the library decode
	// and validate it.
	enc := y.Bytes()
	enc[31] |= byte(x.IsNegative()) << 7
	return new(edwards25519.Point).SetBytes(enc)
}
