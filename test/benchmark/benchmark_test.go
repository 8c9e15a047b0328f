package benchmark

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecarith/pkg/bignum"
	"github.com/smallyu/go-ecarith/pkg/curves"
	"github.com/smallyu/go-ecarith/pkg/field"
)

var (
	scalar = bignum.MustParseUint256("0x45b0c38fa54766354cf3409d38b873255dfa9ed3407a542ba48eb9cab9dfca67")
	elemA  = bignum.MustParseUint256("0x162ebcd38c90b56fbdb4b0390695afb471c944a6003cb334bbf030a89c42b584")
	elemB  = bignum.MustParseUint256("0x9075b4ee4d4788cabb49f7f81c221151fa2f68914d0aa833388fa11ff621a970")
)

// BenchmarkUint512DivMod benchmarks Knuth division of a full product by a
// 256-bit modulus, the hot path of every field multiplication.
func BenchmarkUint512DivMod(b *testing.B) {
	x := elemA.Widen().Mul(elemB.Widen())
	p := curves.Secp256k1().Modulus().Widen()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := x.DivMod(p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFieldMul benchmarks modular multiplication.
func BenchmarkFieldMul(b *testing.B) {
	f := curves.Secp256k1().Field()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		f.Mul(elemA, elemB)
	}
}

// BenchmarkFieldInverse benchmarks extended Euclidean inversion.
func BenchmarkFieldInverse(b *testing.B) {
	p := curves.Secp256k1().Modulus()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := field.Inverse(elemB, p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkScalarBaseMult benchmarks k*G on both registered curves.
func BenchmarkScalarBaseMult(b *testing.B) {
	for _, name := range curves.Names() {
		c, err := curves.ByName(name)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := c.ScalarBaseMult(scalar); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkScalarBaseMultDecred is the optimized baseline for comparison.
func BenchmarkScalarBaseMultDecred(b *testing.B) {
	kb := scalar.Bytes()
	var k secp256k1.ModNScalar
	k.SetBytes(&kb)
	var result secp256k1.JacobianPoint
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		secp256k1.ScalarBaseMultNonConst(&k, &result)
	}
}
