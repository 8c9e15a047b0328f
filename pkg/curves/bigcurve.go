package curves

import (
	"crypto/elliptic"
	"math/big"

	"github.com/smallyu/go-ecarith/pkg/bignum"
)

// BigCurve exposes a Curve through *big.Int coordinates for callers written
// against the crypto/elliptic style of API.
type BigCurve interface {
	// Params returns the curve parameters (P, N, B, generator). The
	// elliptic.CurveParams type has no field for a; use Curve().A().
	Params() *elliptic.CurveParams

	// Curve returns the underlying curve.
	Curve() *Curve

	// IsOnCurve reports whether (x, y) lies on the curve.
	IsOnCurve(x, y *big.Int) bool

	// ScalarBaseMult computes k * G (base point multiplication)
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int, error)

	// ScalarMult computes k * P
	ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int, error)

	// Add combines two points
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int, error)

	// Double computes 2 * P
	Double(x, y *big.Int) (*big.Int, *big.Int, error)
}

type bigCurve struct {
	c      *Curve
	params *elliptic.CurveParams
}

// NewBigCurve returns a BigCurve backed by c.
func NewBigCurve(c *Curve) BigCurve {
	p := c.Params()
	return &bigCurve{
		c: c,
		params: &elliptic.CurveParams{
			P:       p.P.Big(),
			N:       p.N.Big(),
			B:       p.B.Big(),
			Gx:      p.Gx.Big(),
			Gy:      p.Gy.Big(),
			BitSize: 256,
			Name:    p.Name,
		},
	}
}

// NewSecp256k1 returns a new instance of the secp256k1 big.Int wrapper.
func NewSecp256k1() BigCurve {
	return NewBigCurve(Secp256k1())
}

func (b *bigCurve) Params() *elliptic.CurveParams {
	// Hand out a copy so callers cannot modify the shared parameters.
	p := *b.params
	p.P = new(big.Int).Set(b.params.P)
	p.N = new(big.Int).Set(b.params.N)
	p.B = new(big.Int).Set(b.params.B)
	p.Gx = new(big.Int).Set(b.params.Gx)
	p.Gy = new(big.Int).Set(b.params.Gy)
	return &p
}

func (b *bigCurve) Curve() *Curve {
	return b.c
}

func (b *bigCurve) IsOnCurve(x, y *big.Int) bool {
	_, err := b.point(x, y)
	return err == nil
}

func (b *bigCurve) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int, error) {
	return b.ScalarMult(b.params.Gx, b.params.Gy, k)
}

func (b *bigCurve) ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int, error) {
	pt, err := b.point(px, py)
	if err != nil {
		return nil, nil, err
	}
	s, err := bignum.Uint256FromBig(k)
	if err != nil {
		return nil, nil, err
	}
	return unpack(pt.ScalarMult(s))
}

func (b *bigCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int, error) {
	p1, err := b.point(x1, y1)
	if err != nil {
		return nil, nil, err
	}
	p2, err := b.point(x2, y2)
	if err != nil {
		return nil, nil, err
	}
	return unpack(p1.Add(p2))
}

func (b *bigCurve) Double(x, y *big.Int) (*big.Int, *big.Int, error) {
	pt, err := b.point(x, y)
	if err != nil {
		return nil, nil, err
	}
	return unpack(pt.Double())
}

// point converts big.Int coordinates into a validated Point.
func (b *bigCurve) point(x, y *big.Int) (Point, error) {
	ux, err := bignum.Uint256FromBig(x)
	if err != nil {
		return Point{}, err
	}
	uy, err := bignum.Uint256FromBig(y)
	if err != nil {
		return Point{}, err
	}
	return b.c.TryNewPoint(ux, uy)
}

func unpack(pt Point, err error) (*big.Int, *big.Int, error) {
	if err != nil {
		return nil, nil, err
	}
	return pt.x.Big(), pt.y.Big(), nil
}
