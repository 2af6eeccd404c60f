package num

import (
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func randWord() Word { return Word(globalRNG.Uint32()) }

func TestMulAddWWW(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 50000; i++ {
		x, y, c := randWord(), randWord(), randWord()
		if i == 0 {
			x, y, c = _M, _M, _M
		}
		hi, lo := mulAddWWW(x, y, c)

		rb := new(big.Int).SetUint64(uint64(x))
		rb.Mul(rb, new(big.Int).SetUint64(uint64(y)))
		rb.Add(rb, new(big.Int).SetUint64(uint64(c)))

		rc := new(big.Int).SetUint64(uint64(hi)<<_W | uint64(lo))
		tt.MustEqual(rb.String(), rc.String(), "failed at index %d", i)
	}
}

func TestDivWW(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 50000; i++ {
		v := randWord()
		if v == 0 {
			v = 1
		}
		u1, u0 := randWord()%v, randWord()
		q, r := divWW(u1, u0, v)

		n := uint64(u1)<<_W | uint64(u0)
		tt.MustEqual(n/uint64(v), uint64(q), "failed at index %d", i)
		tt.MustEqual(n%uint64(v), uint64(r), "failed at index %d", i)
	}
}

var BenchWordIn1, BenchWordIn2 Word = 0xdeadbeef, 0xfeedface

func BenchmarkMulAddWWW(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchWordResult, _ = mulAddWWW(BenchWordIn1, BenchWordIn2, BenchWordIn1)
	}
}
