package num

import (
	"fmt"
	"math"
	"strings"
)

// Rat is an immutable exact rational number, always held in lowest terms
// with a positive denominator. Zero is 0/1 and never negative. The zero
// value is ready to use and represents 0.
type Rat struct {
	num, den nat
	neg      bool
}

// NewRat returns num/den, negated if neg is set, reduced to lowest terms. A
// zero den fails with ErrDivideByZero.
func NewRat(num, den UBig, neg bool) (Rat, error) {
	if den.IsZero() {
		return Rat{}, fmt.Errorf("num: rat %s/0: %w", num, ErrDivideByZero)
	}
	return newRat(num.n, den.n, neg), nil
}

// newRat reduces num/den. den must not be zero.
func newRat(num, den nat, neg bool) Rat {
	if len(num) == 0 {
		return Rat{}
	}
	g := gcd(num, den)
	if g.cmp(natOne) != 0 {
		num, _ = num.divmod(g)
		den, _ = den.divmod(g)
	}
	return Rat{num: num, den: den, neg: neg}
}

func RatFromUBig(u UBig) Rat { return Rat{num: u.n} }
func RatFromIBig(i IBig) Rat { return Rat{num: i.mag, neg: i.neg} }

// RatFrom64 returns num/den reduced to lowest terms. The result is negative
// when exactly one of num and den is.
func RatFrom64(num, den int64) (Rat, error) {
	n, d := IBigFrom64(num), IBigFrom64(den)
	if d.IsZero() {
		return Rat{}, fmt.Errorf("num: rat %d/0: %w", num, ErrDivideByZero)
	}
	return newRat(n.mag, d.mag, n.neg != d.neg), nil
}

// RatFromString parses an optionally signed integer, or a fraction in the
// form "-3/4". The denominator must be unsigned and non-zero.
func RatFromString(s string) (Rat, error) {
	numStr, denStr := s, ""
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		numStr, denStr = s[:idx], s[idx+1:]
	}

	num, err := IBigFromString(numStr)
	if err != nil {
		return Rat{}, err
	}
	if denStr == "" && len(numStr) == len(s) {
		return RatFromIBig(num), nil
	}

	den, err := natFromString(denStr)
	if err != nil {
		return Rat{}, err
	}
	if len(den) == 0 {
		return Rat{}, fmt.Errorf("num: rat %q: %w", s, ErrDivideByZero)
	}
	return newRat(num.mag, den, num.neg), nil
}

// denom returns r's denominator, treating the zero value as 0/1.
func (r Rat) denom() nat {
	if len(r.den) == 0 {
		return natOne
	}
	return r.den
}

// Num returns the numerator's magnitude.
func (r Rat) Num() UBig { return UBig{r.num} }

// Den returns the denominator, which is never zero.
func (r Rat) Den() UBig { return UBig{r.denom()} }

func (r Rat) IsNeg() bool  { return r.neg }
func (r Rat) IsZero() bool { return len(r.num) == 0 }

// IsInt reports whether the denominator is 1.
func (r Rat) IsInt() bool { return r.denom().cmp(natOne) == 0 }

func (r Rat) Sign() int {
	switch {
	case len(r.num) == 0:
		return 0
	case r.neg:
		return -1
	}
	return 1
}

func (r Rat) Neg() Rat {
	if len(r.num) == 0 {
		return Rat{}
	}
	return Rat{num: r.num, den: r.den, neg: !r.neg}
}

func (r Rat) Abs() Rat { return Rat{num: r.num, den: r.den} }

// Reciprocal returns 1/r. The reciprocal of zero fails with ErrDivideByZero.
func (r Rat) Reciprocal() (Rat, error) {
	if len(r.num) == 0 {
		return Rat{}, fmt.Errorf("num: reciprocal of zero: %w", ErrDivideByZero)
	}
	return Rat{num: r.denom(), den: r.num, neg: r.neg}, nil
}

func (r Rat) Add(n Rat) Rat { return r.addSigned(n.num, n.denom(), n.neg) }
func (r Rat) Sub(n Rat) Rat { return r.addSigned(n.num, n.denom(), !n.neg) }

// addSigned returns r + (-1)^neg * num/den. Both denominators are divided by
// their gcd before cross-multiplying to keep the intermediates small.
func (r Rat) addSigned(num, den nat, neg bool) Rat {
	d1 := r.denom()
	g := gcd(d1, den)
	d1g, _ := d1.divmod(g)
	d2g, _ := den.divmod(g)

	a := r.num.mul(d2g)
	b := num.mul(d1g)
	d := d1g.mul(den)

	if r.neg == neg {
		return newRat(a.add(b), d, neg)
	}
	switch a.cmp(b) {
	case 0:
		return Rat{}
	case 1:
		return newRat(a.mustSub(b), d, r.neg)
	default:
		return newRat(b.mustSub(a), d, neg)
	}
}

// Mul cancels across the operands, gcd(d1, n2) and gcd(d2, n1), so the
// product comes out already reduced.
func (r Rat) Mul(n Rat) Rat {
	if len(r.num) == 0 || len(n.num) == 0 {
		return Rat{}
	}
	return mulReduced(r.num, r.denom(), n.num, n.denom(), r.neg != n.neg)
}

// Quo returns r / n, or ErrDivideByZero if n is zero.
func (r Rat) Quo(n Rat) (Rat, error) {
	if len(n.num) == 0 {
		return Rat{}, fmt.Errorf("num: %s / 0: %w", r, ErrDivideByZero)
	}
	if len(r.num) == 0 {
		return Rat{}, nil
	}
	return mulReduced(r.num, r.denom(), n.denom(), n.num, r.neg != n.neg), nil
}

func mulReduced(n1, d1, n2, d2 nat, neg bool) Rat {
	g1 := gcd(d1, n2)
	g2 := gcd(d2, n1)
	n1, _ = n1.divmod(g2)
	d2, _ = d2.divmod(g2)
	n2, _ = n2.divmod(g1)
	d1, _ = d1.divmod(g1)
	return Rat{num: n1.mul(n2), den: d1.mul(d2), neg: neg}
}

func (r Rat) Cmp(n Rat) int {
	rs, ns := r.Sign(), n.Sign()
	if rs != ns {
		if rs < ns {
			return -1
		}
		return 1
	}

	var c int
	if rd, nd := r.denom(), n.denom(); rd.cmp(nd) == 0 {
		c = r.num.cmp(n.num)
	} else {
		c = r.num.mul(nd).cmp(n.num.mul(rd))
	}
	if rs < 0 {
		c = -c
	}
	return c
}

func (r Rat) Equal(n Rat) bool            { return r.Cmp(n) == 0 }
func (r Rat) GreaterThan(n Rat) bool      { return r.Cmp(n) > 0 }
func (r Rat) GreaterOrEqualTo(n Rat) bool { return r.Cmp(n) >= 0 }
func (r Rat) LessThan(n Rat) bool         { return r.Cmp(n) < 0 }
func (r Rat) LessOrEqualTo(n Rat) bool    { return r.Cmp(n) <= 0 }

// Approximate trades precision for size by dropping hint words from the
// bottom of both the numerator and denominator and re-reducing. If hint is 0
// or less, half the denominator's words are dropped. At least one
// denominator word is always kept, and a one-word denominator is returned
// unchanged.
func (r Rat) Approximate(hint int) Rat {
	den := r.denom()
	n := len(den)
	if n <= 1 {
		return r
	}
	if hint <= 0 {
		hint = n / 2
	} else if hint >= n {
		hint = n - 1
	}
	s := uint(hint) * _W
	return newRat(r.num.shr(s), den.shr(s), r.neg)
}

// Decimal formats r with exactly digits digits after the decimal point,
// truncating rather than rounding. digits <= 0 gives the integer part alone.
func (r Rat) Decimal(digits int) string {
	den := r.denom()
	ip, rem := r.num.divmod(den)

	var sb strings.Builder
	if r.neg {
		sb.WriteByte('-')
	}
	sb.WriteString(ip.string())
	if digits <= 0 {
		return sb.String()
	}

	frac, _ := rem.mul(natPow10(digits)).divmod(den)
	fs := frac.string()
	if len(frac) == 0 {
		fs = ""
	}
	sb.WriteByte('.')
	sb.WriteString(strings.Repeat("0", digits-len(fs)))
	sb.WriteString(fs)
	return sb.String()
}

// ratFloatBits is the widest term Float64 converts without scaling.
const ratFloatBits = 1000

// Float64 divides the numerator by the denominator as float64s. Terms wider
// than ratFloatBits are first shifted right by a common amount, keeping at
// least 64 bits of the narrower one. ErrOverflow is returned only when the
// ratio itself is out of range.
func (r Rat) Float64() (float64, error) {
	num, den := r.num, r.denom()
	nb, db := num.bitLen(), den.bitLen()
	if nb > ratFloatBits || db > ratFloatBits {
		hi, lo := nb, db
		if db > nb {
			hi, lo = db, nb
		}
		s := hi - ratFloatBits
		if s > lo-64 {
			s = lo - 64
		}
		if s > 0 {
			num, den = num.shr(uint(s)), den.shr(uint(s))
		}
	}

	n, d := num.float64(), den.float64()
	if math.IsInf(n, 0) {
		return 0, fmt.Errorf("num: rat %s as float64: %w", r, ErrOverflow)
	}
	f := n / d
	if r.neg {
		f = -f
	}
	return f, nil
}

// String returns "num/den", or just "num" when the denominator is 1. Negative
// values are prefixed with '-'.
func (r Rat) String() string {
	var sb strings.Builder
	if r.neg {
		sb.WriteByte('-')
	}
	sb.WriteString(r.ratString())
	return sb.String()
}

func (r Rat) ratString() string {
	if r.IsInt() {
		return r.num.string()
	}
	return r.num.string() + "/" + r.den.string()
}

func (r Rat) Format(s fmt.State, c rune) {
	formatDecimal(s, c, "Rat", r.neg, r.ratString())
}

func (r Rat) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rat) UnmarshalText(bts []byte) (err error) {
	v, err := RatFromString(string(bts))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rat) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func (r *Rat) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON("rat", bts)
	if err != nil {
		return err
	}
	v, err := RatFromString(string(bts))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
