package num

import "fmt"

// MustUBigFromString is like UBigFromString but panics if s can't be parsed.
func MustUBigFromString(s string) UBig {
	u, err := UBigFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustUBigFromString(%q) failed: %v", s, err))
	}
	return u
}

// MustIBigFromString is like IBigFromString but panics if s can't be parsed.
func MustIBigFromString(s string) IBig {
	i, err := IBigFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustIBigFromString(%q) failed: %v", s, err))
	}
	return i
}

// MustRatFromString is like RatFromString but panics if s can't be parsed.
func MustRatFromString(s string) Rat {
	r, err := RatFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustRatFromString(%q) failed: %v", s, err))
	}
	return r
}

// MustRat is like NewRat but panics if den is zero.
func MustRat(num, den UBig, neg bool) Rat {
	r, err := NewRat(num, den, neg)
	if err != nil {
		panic(fmt.Sprintf("MustRat(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// MustSub is like Sub but panics if n > u.
func (u UBig) MustSub(n UBig) UBig {
	v, err := u.Sub(n)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", n, err))
	}
	return v
}

// MustQuoRem is like QuoRem but panics if by is zero.
func (u UBig) MustQuoRem(by UBig) (UBig, UBig) {
	q, r, err := u.QuoRem(by)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", by, err))
	}
	return q, r
}

// MustQuoRem is like QuoRem but panics if by is zero.
func (i IBig) MustQuoRem(by IBig) (IBig, IBig) {
	q, r, err := i.QuoRem(by)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", by, err))
	}
	return q, r
}

// MustQuo is like Quo but panics if n is zero.
func (r Rat) MustQuo(n Rat) Rat {
	q, err := r.Quo(n)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", n, err))
	}
	return q
}
