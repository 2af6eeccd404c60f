package num

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestNatNorm(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, len(nat{0, 0, 0}.norm()))
	tt.MustEqual(nat{1, 2}, nat{1, 2, 0, 0}.norm())
	tt.MustEqual(nat{0, 2}, nat{0, 2}.norm())
}

// Chunks after the most significant one must keep their inner zeros.
func TestNatStringPadding(t *testing.T) {
	for _, s := range []string{
		"1000000000",
		"1000000001",
		"1000000000000000001",
		"1000000000000000000000000000",
		"123000000000456000000000789",
		"9" + strings.Repeat("0", 100) + "9",
	} {
		t.Run(s, func(t *testing.T) {
			tt := assert.WrapTB(t)
			n, err := natFromString(s)
			tt.MustOK(err)
			tt.MustEqual(s, n.string())
		})
	}
}

func TestNatPow10(t *testing.T) {
	for _, n := range []int{0, 1, 8, 9, 10, 18, 19, 100} {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual("1"+strings.Repeat("0", n), natPow10(n).string())
		})
	}
}

func TestNatLowBitsSet(t *testing.T) {
	for _, tc := range []struct {
		x   nat
		s   uint
		out bool
	}{
		{nil, 10, false},
		{nat{1}, 0, false},
		{nat{1}, 1, true},
		{nat{2}, 1, false},
		{nat{2}, 2, true},
		{nat{0, 1}, 32, false},
		{nat{0, 1}, 33, true},
		{nat{0x80000000}, 31, false},
		{nat{0x80000000}, 32, true},
		{nat{0, 0, 4}, 66, false},
		{nat{0, 0, 4}, 67, true},
		{nat{0, 0, 4}, 1000, true},
		{nat{1, 0, 4}, 1, true},
	} {
		t.Run(fmt.Sprintf("%v/%d", tc.x, tc.s), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.x.lowBitsSet(tc.s))

			mask := new(big.Int).Lsh(big1, tc.s)
			mask.Sub(mask, big1)
			low := new(big.Int).And(UBig{tc.x}.AsBigInt(), mask)
			tt.MustEqual(low.Sign() != 0, tc.x.lowBitsSet(tc.s))
		})
	}
}

func TestNatSubUnderflow(t *testing.T) {
	tt := assert.WrapTB(t)

	_, ok := nat{1}.sub(nat{0, 1})
	tt.MustAssert(!ok)
	_, ok = nat{0, 1}.sub(nat{1, 1})
	tt.MustAssert(!ok)
	z, ok := nat{0, 1}.sub(nat{1})
	tt.MustAssert(ok)
	tt.MustEqual(nat{_M}, z)
}

func TestNatDivLargeRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 2000; i++ {
		vw := 2 + globalRNG.Intn(20)
		uw := vw + globalRNG.Intn(30)
		u, v := RandUBig(globalRNG, uw), RandUBig(globalRNG, vw)
		if len(v.n) < 2 || u.n.cmp(v.n) < 0 {
			continue
		}
		q, r := u.n.divLarge(v.n)
		bq, br := new(big.Int).QuoRem(u.AsBigInt(), v.AsBigInt(), new(big.Int))
		tt.MustEqual(bq.String(), q.string(), "%s / %s", u, v)
		tt.MustEqual(br.String(), r.string(), "%s %% %s", u, v)
	}
}
