package curves

import (
	"fmt"
	"maps"
	"slices"

	"github.com/smallyu/go-ecarith/pkg/bignum"
)

// Named curve constants, see https://www.secg.org/sec2-v2.pdf.
var (
	secp256k1Params = Params{
		Name: "secp256k1",
		P:    bignum.MustParseUint256("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
		A:    bignum.ZeroUint256(),
		B:    bignum.NewUint256(7),
		N:    bignum.MustParseUint256("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		Gx:   bignum.MustParseUint256("0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		Gy:   bignum.MustParseUint256("0x483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
	}

	secp256r1Params = Params{
		Name: "secp256r1",
		P:    bignum.MustParseUint256("0xffffffff00000001000000000000000000000000ffffffffffffffffffffffff"),
		A:    bignum.MustParseUint256("0xffffffff00000001000000000000000000000000fffffffffffffffffffffffc"),
		B:    bignum.MustParseUint256("0x5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
		N:    bignum.MustParseUint256("0xffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
		Gx:   bignum.MustParseUint256("0x6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
		Gy:   bignum.MustParseUint256("0x4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
	}

	// Curve25519 in short Weierstrass form. N is the order of the prime
	// subgroup shared with Ed25519; the full group has cofactor 8.
	wei25519Params = Params{
		Name: "wei25519",
		P:    bignum.MustParseUint256("0x7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed"),
		A:    bignum.MustParseUint256("0x2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa984914a144"),
		B:    bignum.MustParseUint256("0x7b425ed097b425ed097b425ed097b425ed097b425ed097b4260b5e9c7710c864"),
		N:    bignum.MustParseUint256("0x1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed"),
		Gx:   bignum.MustParseUint256("0x2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaad245a"),
		Gy:   bignum.MustParseUint256("0x20ae19a1b8a086b4e01edd2c7748d14c923d4d7e6d7c61b229e9c5a27eced3d9"),
	}
)

// The registry is filled during package initialization and only read
// afterwards, so lookups need no locking.
var (
	secp256k1Curve = mustCurve(secp256k1Params)
	secp256r1Curve = mustCurve(secp256r1Params)
	wei25519Curve  = mustCurve(wei25519Params)

	registry = map[string]*Curve{
		secp256k1Curve.Name(): secp256k1Curve,
		secp256r1Curve.Name(): secp256r1Curve,
		wei25519Curve.Name():  wei25519Curve,
	}
)

func mustCurve(params Params) *Curve {
	c, err := NewCurve(params)
	if err != nil {
		panic(err)
	}
	return c
}

// Secp256k1 returns the secp256k1 curve used by Bitcoin and Ethereum.
func Secp256k1() *Curve {
	return secp256k1Curve
}

// Secp256r1 returns the NIST P-256 curve.
func Secp256r1() *Curve {
	return secp256r1Curve
}

// Wei25519 returns Curve25519 in short Weierstrass form. FromEdwards25519
// and Point.ToEdwards25519 map between it and the Ed25519 group.
func Wei25519() *Curve {
	return wei25519Curve
}

// ByName returns the registered curve with the given name.
func ByName(name string) (*Curve, error) {
	c, ok := registry[name]
	if !ok {
		return nil, makeError(ErrUnknownCurve,
			fmt.Sprintf("curves: unknown curve %q", name))
	}
	return c, nil
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}
