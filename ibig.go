package num

import (
	"fmt"
	"math"
	"math/big"
)

// IBig is an immutable arbitrary-precision signed integer: a magnitude and a
// sign. Zero is never negative. The zero value is ready to use and
// represents 0.
type IBig struct {
	mag nat
	neg bool
}

func newIBig(mag nat, neg bool) IBig {
	return IBig{mag: mag, neg: neg && len(mag) > 0}
}

func IBigFrom64(v int64) IBig {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return newIBig(natFromUint64(u), v < 0)
}

func IBigFrom32(v int32) IBig { return IBigFrom64(int64(v)) }
func IBigFromInt(v int) IBig  { return IBigFrom64(int64(v)) }
func IBigFromU64(v uint64) IBig {
	return IBig{mag: natFromUint64(v)}
}

// IBigFromUBig returns u, negated if neg is set. A negative zero is
// normalized to zero.
func IBigFromUBig(u UBig, neg bool) IBig { return newIBig(u.n, neg) }

// IBigFromString parses an optional '+' or '-' followed by decimal digits.
func IBigFromString(s string) (IBig, error) {
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, err := natFromString(s)
	if err != nil {
		return IBig{}, err
	}
	return newIBig(n, neg), nil
}

func IBigFromBigInt(v *big.Int) IBig {
	return newIBig(natFromBigWords(v.Bits()), v.Sign() < 0)
}

func (i IBig) IsZero() bool { return len(i.mag) == 0 }

// Sign returns -1 if i < 0, 0 if i == 0 and +1 if i > 0.
func (i IBig) Sign() int {
	switch {
	case len(i.mag) == 0:
		return 0
	case i.neg:
		return -1
	}
	return 1
}

// Magnitude returns |i| as a UBig.
func (i IBig) Magnitude() UBig { return UBig{i.mag} }

func (i IBig) Neg() IBig { return newIBig(i.mag, !i.neg) }
func (i IBig) Abs() IBig { return IBig{mag: i.mag} }

func (i IBig) String() string {
	if i.neg {
		return "-" + i.mag.string()
	}
	return i.mag.string()
}

func (i IBig) Format(s fmt.State, c rune) {
	if !isDecimalVerb(c) {
		i.AsBigInt().Format(s, c)
		return
	}
	formatDecimal(s, c, "IBig", i.neg, i.mag.string())
}

func (i IBig) IntoBigInt(b *big.Int) {
	b.SetBits(bigWordsFromNat(i.mag))
	if i.neg {
		b.Neg(b)
	}
}

func (i IBig) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

func (i IBig) Cmp(n IBig) int {
	switch {
	case i.neg && !n.neg:
		return -1
	case !i.neg && n.neg:
		return 1
	case i.neg:
		return n.mag.cmp(i.mag)
	}
	return i.mag.cmp(n.mag)
}

func (i IBig) Equal(n IBig) bool            { return i.neg == n.neg && i.mag.cmp(n.mag) == 0 }
func (i IBig) GreaterThan(n IBig) bool      { return i.Cmp(n) > 0 }
func (i IBig) GreaterOrEqualTo(n IBig) bool { return i.Cmp(n) >= 0 }
func (i IBig) LessThan(n IBig) bool         { return i.Cmp(n) < 0 }
func (i IBig) LessOrEqualTo(n IBig) bool    { return i.Cmp(n) <= 0 }

func (i IBig) Add(n IBig) IBig {
	if i.neg == n.neg {
		return newIBig(i.mag.add(n.mag), i.neg)
	}
	return addSigned(i.mag, i.neg, n.mag)
}

func (i IBig) Sub(n IBig) IBig {
	if i.neg != n.neg {
		return newIBig(i.mag.add(n.mag), i.neg)
	}
	return addSigned(i.mag, i.neg, n.mag)
}

// addSigned adds two magnitudes of opposite sign: x carries sign xneg and y
// the other. The smaller is subtracted from the larger, whose sign wins.
func addSigned(x nat, xneg bool, y nat) IBig {
	switch x.cmp(y) {
	case 0:
		return IBig{}
	case 1:
		return newIBig(x.mustSub(y), xneg)
	default:
		return newIBig(y.mustSub(x), !xneg)
	}
}

func (i IBig) Inc() IBig {
	if i.neg {
		return newIBig(i.mag.mustSub(natOne), true)
	}
	return IBig{mag: i.mag.add(natOne)}
}

func (i IBig) Dec() IBig {
	if i.neg || len(i.mag) == 0 {
		return IBig{mag: i.mag.add(natOne), neg: true}
	}
	return IBig{mag: i.mag.mustSub(natOne)}
}

func (i IBig) Mul(n IBig) IBig {
	return newIBig(i.mag.mul(n.mag), i.neg != n.neg)
}

// QuoRem implements floored division: the quotient is rounded towards
// negative infinity and the remainder takes the sign of the divisor, so
// q*by + r == i and 0 <= |r| < |by|. This differs from Go's / and %
// operators, which truncate: IBigFrom64(-7).QuoRem(IBigFrom64(2)) is (-4, 1).
func (i IBig) QuoRem(by IBig) (q, r IBig, err error) {
	if len(by.mag) == 0 {
		return q, r, fmt.Errorf("num: %s / 0: %w", i, ErrDivideByZero)
	}

	qm, rm := i.mag.divmod(by.mag)
	if i.neg == by.neg {
		return IBig{mag: qm}, newIBig(rm, i.neg), nil
	}
	if len(rm) == 0 {
		return newIBig(qm, true), IBig{}, nil
	}
	return newIBig(qm.add(natOne), true), newIBig(by.mag.mustSub(rm), by.neg), nil
}

// Quo returns the floored quotient of i / by. See QuoRem.
func (i IBig) Quo(by IBig) (q IBig, err error) {
	q, _, err = i.QuoRem(by)
	return q, err
}

// Rem returns the floored remainder of i / by, which has the sign of by. See
// QuoRem.
func (i IBig) Rem(by IBig) (r IBig, err error) {
	_, r, err = i.QuoRem(by)
	return r, err
}

func (i IBig) Lsh(n uint) IBig {
	return newIBig(i.mag.shl(n), i.neg)
}

// Rsh is an arithmetic shift, equivalent to floored division by 2^n. A
// negative value never shifts to zero: IBigFrom64(-1).Rsh(10) is -1.
func (i IBig) Rsh(n uint) IBig {
	if !i.neg {
		return IBig{mag: i.mag.shr(n)}
	}
	m := i.mag.shr(n)
	if i.mag.lowBitsSet(n) {
		m = m.add(natOne)
	}
	return newIBig(m, true)
}

func (i IBig) IsInt64() bool {
	_, err := i.Int64()
	return err == nil
}

// Int64 returns i as an int64, or ErrOverflow if the value doesn't survive
// the round trip.
func (i IBig) Int64() (int64, error) {
	if len(i.mag) <= 2 {
		v := int64(i.mag.uint64())
		if i.neg {
			v = -v
		}
		if IBigFrom64(v).Equal(i) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("num: ibig %s as int64: %w", i, ErrOverflow)
}

func (i IBig) Int32() (int32, error) {
	v, err := i.Int64()
	if err == nil && v >= math.MinInt32 && v <= math.MaxInt32 {
		return int32(v), nil
	}
	return 0, fmt.Errorf("num: ibig %s as int32: %w", i, ErrOverflow)
}

// Float64 returns the nearest float64 to i. Values too large to represent
// fail with ErrOverflow.
func (i IBig) Float64() (float64, error) {
	f, err := UBig{i.mag}.Float64()
	if err != nil {
		return 0, err
	}
	if i.neg {
		f = -f
	}
	return f, nil
}

// AsFloat64 is Float64 without the range check.
func (i IBig) AsFloat64() float64 {
	f := i.mag.float64()
	if i.neg {
		f = -f
	}
	return f
}

func (i IBig) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *IBig) UnmarshalText(bts []byte) (err error) {
	v, err := IBigFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i IBig) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *IBig) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON("ibig", bts)
	if err != nil {
		return err
	}
	v, err := IBigFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
