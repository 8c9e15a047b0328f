package curves

import (
	"crypto/elliptic"
	"math/big"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecarith/pkg/bignum"
	"github.com/smallyu/go-ecarith/pkg/field"
)

var (
	secp256k1TwoG = [2]string{
		"0xc6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
		"0x1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a",
	}

	// A = k*G for the scalar k below.
	secp256k1K = "0x45b0c38fa54766354cf3409d38b873255dfa9ed3407a542ba48eb9cab9dfca67"
	secp256k1A = [2]string{
		"0x162ebcd38c90b56fbdb4b0390695afb471c944a6003cb334bbf030a89c42b584",
		"0xf089012beb4842483692bdff9fcab8676fed42c47bffb081001209079bbcb8db",
	}
	secp256k1APlusG = [2]string{
		"0x2585e5ca09115735c90559d35cf3cbbf685cb9ecbfbe242bfb7238c5d735f38a",
		"0xb1abc72f727dd755500a2c543d500d806acb43da021eee4a800cd35bf68c3e04",
	}
)

func mustPoint(t *testing.T, c *Curve, xy [2]string) Point {
	pt, err := c.TryNewPoint(bignum.MustParseUint256(xy[0]), bignum.MustParseUint256(xy[1]))
	require.NoError(t, err)
	return pt
}

func TestGeneratorOnCurve(t *testing.T) {
	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err)
		assert.True(t, c.Generator().IsOnCurve(), name)
	}
}

func TestDouble(t *testing.T) {
	c := Secp256k1()
	got, err := c.Generator().Double()
	require.NoError(t, err)
	assert.True(t, got.Equal(mustPoint(t, c, secp256k1TwoG)), "got %s", got)
	assert.True(t, got.IsOnCurve())
}

func TestDoubleVerticalTangent(t *testing.T) {
	c := newToyCurve(t)
	pt, err := c.TryNewPoint(bignum.NewUint256(30), bignum.ZeroUint256())
	require.NoError(t, err)

	_, err = pt.Double()
	assert.ErrorIs(t, err, field.ErrDivideByZero)
}

func TestAdd(t *testing.T) {
	c := Secp256k1()
	a := mustPoint(t, c, secp256k1A)
	want := mustPoint(t, c, secp256k1APlusG)

	got, err := a.Add(c.Generator())
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %s", got)

	got, err = c.Generator().Add(a)
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "addition is commutative")
}

func TestAddSharedX(t *testing.T) {
	g := Secp256k1().Generator()

	_, err := g.Add(g)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	_, err = g.Add(g.Neg())
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestAddCurveMismatch(t *testing.T) {
	_, err := Secp256k1().Generator().Add(Secp256r1().Generator())
	assert.ErrorIs(t, err, ErrCurveMismatch)

	_, err = Point{}.Add(Secp256k1().Generator())
	assert.ErrorIs(t, err, ErrCurveMismatch)

	_, err = Point{}.Double()
	assert.ErrorIs(t, err, ErrCurveMismatch)

	_, err = Point{}.ScalarMult(bignum.OneUint256())
	assert.ErrorIs(t, err, ErrCurveMismatch)
}

func TestNeg(t *testing.T) {
	g := Secp256k1().Generator()
	n := g.Neg()
	assert.True(t, n.IsOnCurve())
	assert.Equal(t, g.X(), n.X())
	assert.True(t, n.Neg().Equal(g))
}

func TestScalarMult(t *testing.T) {
	c := Secp256k1()
	g := c.Generator()

	got, err := g.ScalarMult(bignum.OneUint256())
	require.NoError(t, err)
	assert.True(t, got.Equal(g))

	got, err = g.ScalarMult(bignum.NewUint256(2))
	require.NoError(t, err)
	assert.True(t, got.Equal(mustPoint(t, c, secp256k1TwoG)))

	got, err = c.ScalarBaseMult(bignum.MustParseUint256(secp256k1K))
	require.NoError(t, err)
	assert.True(t, got.Equal(mustPoint(t, c, secp256k1A)), "got %s", got)
}

func TestScalarMultSmallOrder(t *testing.T) {
	c := newToyCurve(t)
	g := c.Generator()

	want := [][2]uint64{{3, 6}, {80, 10}, {80, 87}, {3, 91}}
	for i, xy := range want {
		got, err := g.ScalarMult(bignum.NewUint256(uint64(i + 1)))
		require.NoError(t, err)
		assert.Equal(t, bignum.NewUint256(xy[0]), got.X(), "%d*G", i+1)
		assert.Equal(t, bignum.NewUint256(xy[1]), got.Y(), "%d*G", i+1)
	}

	// The order of G lands on the point at infinity.
	_, err := g.ScalarMult(c.Order())
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestScalarMultZero(t *testing.T) {
	_, err := Secp256k1().Generator().ScalarMult(bignum.ZeroUint256())
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	_, err = Secp256k1().ScalarBaseMult(Secp256k1().Order())
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

// TestScalarMultMatchesP256 runs the generic code with the P-256 constants
// and compares it with crypto/elliptic.
func TestScalarMultMatchesP256(t *testing.T) {
	c := Secp256r1()
	ref := elliptic.P256()
	rng := rand.New(rand.NewPCG(29, 31))

	for i := 0; i < 8; i++ {
		k := bignum.Uint256{rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64() >> 1}
		got, err := c.ScalarBaseMult(k)
		require.NoError(t, err)

		kb := k.Bytes()
		wx, wy := ref.ScalarBaseMult(kb[:])
		assert.Equal(t, 0, wx.Cmp(got.X().Big()), "k=%s", k)
		assert.Equal(t, 0, wy.Cmp(got.Y().Big()), "k=%s", k)
	}
}

func TestScalarMultLinear(t *testing.T) {
	c := Secp256k1()
	g := c.Generator()

	// (a+b)G = aG + bG
	a, b := bignum.NewUint256(123456789), bignum.NewUint256(987654321)
	ag, err := g.ScalarMult(a)
	require.NoError(t, err)
	bg, err := g.ScalarMult(b)
	require.NoError(t, err)
	sum, err := ag.Add(bg)
	require.NoError(t, err)
	abg, err := g.ScalarMult(a.Add(b))
	require.NoError(t, err)
	assert.True(t, sum.Equal(abg))

	// (n-1)G = -G
	nm1 := c.Order().Sub(bignum.OneUint256())
	neg, err := g.ScalarMult(nm1)
	require.NoError(t, err)
	assert.True(t, neg.Equal(g.Neg()))
}

func TestPointString(t *testing.T) {
	g := Secp256k1().Generator()
	assert.Equal(t,
		"(0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798, "+
			"0x483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8)",
		g.String())
}

// TestConcurrentScalarMult shares curves and points between goroutines.
func TestConcurrentScalarMult(t *testing.T) {
	c := Secp256k1()
	want := mustPoint(t, c, secp256k1A)
	k := bignum.MustParseUint256(secp256k1K)

	var wg sync.WaitGroup
	results := make([]Point, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.ScalarBaseMult(k)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.True(t, results[i].Equal(want))
	}
}

func TestScalarMultMatchesBig(t *testing.T) {
	// Double-and-add must agree with repeated chord additions of G.
	c := Secp256k1()
	p := c.Modulus().Big()
	gx, gy := c.Generator().X().Big(), c.Generator().Y().Big()

	two := mustPoint(t, c, secp256k1TwoG)
	x, y := two.X().Big(), two.Y().Big()
	for i := 3; i <= 20; i++ {
		l := new(big.Int).Sub(gy, y)
		d := new(big.Int).Sub(gx, x)
		d.ModInverse(d.Mod(d, p), p)
		l.Mul(l, d).Mod(l, p)
		x3 := new(big.Int).Mul(l, l)
		x3.Sub(x3, x).Sub(x3, gx).Mod(x3, p)
		y3 := new(big.Int).Sub(x, x3)
		y3.Mul(y3, l).Sub(y3, y).Mod(y3, p)
		x, y = x3, y3

		pt, err := c.ScalarBaseMult(bignum.NewUint256(uint64(i)))
		require.NoError(t, err)
		assert.Equal(t, 0, x.Cmp(pt.X().Big()), "%d*G", i)
		assert.Equal(t, 0, y.Cmp(pt.Y().Big()), "%d*G", i)
	}
}
