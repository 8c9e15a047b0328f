package curves

import (
	"math/rand/v2"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecarith/pkg/bignum"
)

func TestJacobianRoundTrip(t *testing.T) {
	g := Secp256k1().Generator()
	jp, err := g.ToJacobian()
	require.NoError(t, err)

	back, err := FromJacobian(&jp)
	require.NoError(t, err)
	assert.True(t, back.Equal(g))

	_, err = Secp256r1().Generator().ToJacobian()
	assert.ErrorIs(t, err, ErrCurveMismatch)

	var inf secp256k1.JacobianPoint
	_, err = FromJacobian(&inf)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

// TestMatchesDecred compares every point operation with the optimized
// secp256k1 implementation.
func TestMatchesDecred(t *testing.T) {
	c := Secp256k1()
	g := c.Generator()
	jg, err := g.ToJacobian()
	require.NoError(t, err)

	var j2 secp256k1.JacobianPoint
	secp256k1.DoubleNonConst(&jg, &j2)
	want, err := FromJacobian(&j2)
	require.NoError(t, err)
	got, err := g.Double()
	require.NoError(t, err)
	assert.True(t, got.Equal(want))

	var j3 secp256k1.JacobianPoint
	secp256k1.AddNonConst(&j2, &jg, &j3)
	want, err = FromJacobian(&j3)
	require.NoError(t, err)
	got, err = got.Add(g)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))

	rng := rand.New(rand.NewPCG(37, 41))
	for i := 0; i < 4; i++ {
		k := bignum.Uint256{rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64() >> 1}
		kb := k.Bytes()

		var s secp256k1.ModNScalar
		s.SetBytes(&kb)
		var jk secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(&s, &jk)
		want, err := FromJacobian(&jk)
		require.NoError(t, err)

		got, err := c.ScalarBaseMult(k)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "k=%s", k)
	}
}
