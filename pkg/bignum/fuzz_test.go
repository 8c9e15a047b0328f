package bignum

import (
	"encoding/binary"
	"math/big"
	"testing"
)

func uint512FromFuzz(b []byte) Uint512 {
	var buf [64]byte
	copy(buf[:], b)
	var x Uint512
	for i := range x {
		x[i] = binary.LittleEndian.Uint64(buf[8*i:])
	}
	return x
}

// FuzzUint512DivMod checks Knuth division against math/big.
func FuzzUint512DivMod(f *testing.F) {
	f.Add([]byte{1}, []byte{1})
	f.Add(
		[]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x80, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
		[]byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x80},
	)
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, []byte{0x3, 0, 0, 0, 0, 0, 0, 0, 0x1})

	f.Fuzz(func(t *testing.T, a, b []byte) {
		x, y := uint512FromFuzz(a), uint512FromFuzz(b)
		q, r, err := x.DivMod(y)
		if y.IsZero() {
			if err == nil {
				t.Fatal("expected an error dividing by zero")
			}
			return
		}
		if err != nil {
			t.Fatal(err)
		}

		wq, wr := new(big.Int).QuoRem(x.Big(), y.Big(), new(big.Int))
		if wq.Cmp(q.Big()) != 0 || wr.Cmp(r.Big()) != 0 {
			t.Fatalf("%s / %s = %s rem %s, want %x rem %x", x, y, q, r, wq, wr)
		}
	})
}

// FuzzUint256Mul checks that widened products match math/big.
func FuzzUint256Mul(f *testing.F) {
	f.Add([]byte{0xff, 0xff}, []byte{0xff})
	f.Fuzz(func(t *testing.T, a, b []byte) {
		x, y := uint512FromFuzz(a).Low(), uint512FromFuzz(b).Low()
		got := x.Widen().Mul(y.Widen())
		want := new(big.Int).Mul(x.Big(), y.Big())
		if want.Cmp(got.Big()) != 0 {
			t.Fatalf("%s * %s = %s, want %x", x, y, got, want)
		}
	})
}
