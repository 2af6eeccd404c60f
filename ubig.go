package num

import (
	"fmt"
	"math"
	"math/big"
)

// UBig is an immutable arbitrary-precision unsigned integer. The zero value is
// ready to use and represents 0.
//
// Every operation returns a new UBig; neither the receiver nor the arguments
// are modified, so UBig values can be copied and shared freely.
type UBig struct {
	n nat
}

func UBigFrom64(v uint64) UBig { return UBig{natFromUint64(v)} }
func UBigFrom32(v uint32) UBig { return UBig{natFromUint64(uint64(v))} }
func UBigFrom16(v uint16) UBig { return UBig{natFromUint64(uint64(v))} }
func UBigFrom8(v uint8) UBig   { return UBig{natFromUint64(uint64(v))} }
func UBigFromWord(v Word) UBig { return UBig{natFromUint64(uint64(v))} }

// UBigFromWords copies ws, least significant word first, into a new UBig.
func UBigFromWords(ws []Word) UBig { return UBig{natFromWords(ws)} }

// UBigFromString parses a string of decimal digits. Signs, spaces and other
// non-digit characters fail with ErrInvalidArgument. Leading zeros are
// accepted.
func UBigFromString(s string) (UBig, error) {
	n, err := natFromString(s)
	if err != nil {
		return UBig{}, err
	}
	return UBig{n}, nil
}

// UBigFromBigInt copies v into a UBig. A negative v fails with ErrUnderflow.
func UBigFromBigInt(v *big.Int) (UBig, error) {
	if v.Sign() < 0 {
		return UBig{}, fmt.Errorf("num: ubig from %s: %w", v, ErrUnderflow)
	}
	return UBig{natFromBigWords(v.Bits())}, nil
}

// UBigFromFloat64 truncates f towards zero. NaN and negative values fail with
// ErrInvalidArgument, infinities with ErrOverflow.
func UBigFromFloat64(f float64) (UBig, error) {
	switch {
	case math.IsNaN(f) || f < 0:
		return UBig{}, fmt.Errorf("num: ubig from float %v: %w", f, ErrInvalidArgument)
	case math.IsInf(f, 1):
		return UBig{}, fmt.Errorf("num: ubig from float %v: %w", f, ErrOverflow)
	}
	return UBig{natFromFloat64(f)}, nil
}

func (u UBig) IsZero() bool { return len(u.n) == 0 }

// Sign returns 0 if u is zero, 1 otherwise.
func (u UBig) Sign() int {
	if len(u.n) == 0 {
		return 0
	}
	return 1
}

// Words returns a copy of u's normalized little-endian words. Zero is
// returned as a single zero word.
func (u UBig) Words() []Word {
	if len(u.n) == 0 {
		return []Word{0}
	}
	out := make([]Word, len(u.n))
	copy(out, u.n)
	return out
}

// Len returns the number of words in u's normalized form. Zero has length 1.
func (u UBig) Len() int {
	if len(u.n) == 0 {
		return 1
	}
	return len(u.n)
}

func (u UBig) String() string { return u.n.string() }

// Format implements fmt.Formatter. The decimal verbs are formatted directly;
// everything else, %x and %b included, goes through big.Int.
func (u UBig) Format(s fmt.State, c rune) {
	if !isDecimalVerb(c) {
		u.AsBigInt().Format(s, c)
		return
	}
	formatDecimal(s, c, "UBig", false, u.n.string())
}

func (u UBig) IntoBigInt(b *big.Int) {
	b.SetBits(bigWordsFromNat(u.n))
}

func (u UBig) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	u.IntoBigInt(b)
	return b
}

// Float64 returns the nearest float64 to u. Values too large to represent
// fail with ErrOverflow.
func (u UBig) Float64() (float64, error) {
	f := u.n.float64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("num: ubig %d words as float64: %w", len(u.n), ErrOverflow)
	}
	return f, nil
}

// AsFloat64 is Float64 without the range check: values too large to
// represent return +Inf.
func (u UBig) AsFloat64() float64 { return u.n.float64() }

func (u UBig) IsUint32() bool { return len(u.n) <= 1 }
func (u UBig) IsUint64() bool { return len(u.n) <= 2 }

func (u UBig) Uint32() (uint32, error) {
	if !u.IsUint32() {
		return 0, fmt.Errorf("num: ubig %s as uint32: %w", u, ErrOverflow)
	}
	return uint32(u.n.uint64()), nil
}

func (u UBig) Uint64() (uint64, error) {
	if !u.IsUint64() {
		return 0, fmt.Errorf("num: ubig %s as uint64: %w", u, ErrOverflow)
	}
	return u.n.uint64(), nil
}

// AsUint64 truncates u to its lowest 64 bits.
func (u UBig) AsUint64() uint64 {
	if len(u.n) > 2 {
		return nat(u.n[:2]).uint64()
	}
	return u.n.uint64()
}

func (u UBig) Cmp(n UBig) int               { return u.n.cmp(n.n) }
func (u UBig) Equal(n UBig) bool            { return u.n.cmp(n.n) == 0 }
func (u UBig) GreaterThan(n UBig) bool      { return u.n.cmp(n.n) > 0 }
func (u UBig) GreaterOrEqualTo(n UBig) bool { return u.n.cmp(n.n) >= 0 }
func (u UBig) LessThan(n UBig) bool         { return u.n.cmp(n.n) < 0 }
func (u UBig) LessOrEqualTo(n UBig) bool    { return u.n.cmp(n.n) <= 0 }

func (u UBig) Add(n UBig) UBig     { return UBig{u.n.add(n.n)} }
func (u UBig) AddWord(w Word) UBig { return UBig{u.n.add(natFromUint64(uint64(w)))} }
func (u UBig) Inc() UBig           { return UBig{u.n.add(natOne)} }

// Sub returns u - n, or ErrUnderflow if n > u.
func (u UBig) Sub(n UBig) (UBig, error) {
	z, ok := u.n.sub(n.n)
	if !ok {
		return UBig{}, fmt.Errorf("num: %s - %s: %w", u, n, ErrUnderflow)
	}
	return UBig{z}, nil
}

func (u UBig) SubWord(w Word) (UBig, error) {
	return u.Sub(UBigFromWord(w))
}

// Dec returns u - 1. Dec of zero fails with ErrUnderflow.
func (u UBig) Dec() (UBig, error) {
	z, ok := u.n.sub(natOne)
	if !ok {
		return UBig{}, fmt.Errorf("num: decrement zero: %w", ErrUnderflow)
	}
	return UBig{z}, nil
}

// Mul returns u * n. Operands at or above karatsubaThreshold words use
// divide-and-conquer multiplication; everything else is schoolbook.
func (u UBig) Mul(n UBig) UBig { return UBig{u.n.mul(n.n)} }

func (u UBig) MulWord(w Word) UBig { return UBig{u.n.mulWord(w)} }

// QuoRem returns the quotient and remainder of u / by. A zero divisor fails
// with ErrDivideByZero.
func (u UBig) QuoRem(by UBig) (q, r UBig, err error) {
	if len(by.n) == 0 {
		return q, r, fmt.Errorf("num: %s / 0: %w", u, ErrDivideByZero)
	}
	qn, rn := u.n.divmod(by.n)
	return UBig{qn}, UBig{rn}, nil
}

func (u UBig) Quo(by UBig) (q UBig, err error) {
	q, _, err = u.QuoRem(by)
	return q, err
}

func (u UBig) Rem(by UBig) (r UBig, err error) {
	_, r, err = u.QuoRem(by)
	return r, err
}

// QuoRemWord divides by a single word in one linear pass.
func (u UBig) QuoRemWord(by Word) (q UBig, r Word, err error) {
	if by == 0 {
		return q, r, fmt.Errorf("num: %s / 0: %w", u, ErrDivideByZero)
	}
	qn, r := u.n.divWord(by)
	return UBig{qn}, r, nil
}

func (u UBig) And(n UBig) UBig    { return UBig{u.n.and(n.n)} }
func (u UBig) AndNot(n UBig) UBig { return UBig{u.n.andNot(n.n)} }
func (u UBig) Or(n UBig) UBig     { return UBig{u.n.or(n.n)} }
func (u UBig) Xor(n UBig) UBig    { return UBig{u.n.xor(n.n)} }

func (u UBig) Lsh(n uint) UBig { return UBig{u.n.shl(n)} }

// Rsh shifts u right by n bits. Shifting past the top word yields zero.
func (u UBig) Rsh(n uint) UBig { return UBig{u.n.shr(n)} }

// BitLen returns the number of bits needed to represent u. BitLen of zero
// is 0.
func (u UBig) BitLen() int { return u.n.bitLen() }

// Bit returns the value of the i'th bit of u.
func (u UBig) Bit(i uint) uint { return u.n.bit(i) }

// TrailingZeros returns the number of trailing zero bits in u. It returns 0
// for zero.
func (u UBig) TrailingZeros() uint { return u.n.trailingZeros() }

func (u UBig) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *UBig) UnmarshalText(bts []byte) (err error) {
	v, err := UBigFromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u UBig) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *UBig) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON("ubig", bts)
	if err != nil {
		return err
	}
	v, err := UBigFromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
