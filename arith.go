package num

import "math/bits"

// Word is a single digit of a multi-precision unsigned integer. A UBig is a
// little-endian sequence of Words in base 2^32.
type Word uint32

const (
	_W = 32      // word size in bits
	_B = 1 << _W // digit base
	_M = _B - 1  // digit mask
)

// mulAddWWW returns the double-width result of x*y + c as (hi, lo). It can't
// overflow: (2^32-1)^2 + (2^32-1) < 2^64.
func mulAddWWW(x, y, c Word) (hi, lo Word) {
	t := uint64(x)*uint64(y) + uint64(c)
	return Word(t >> _W), Word(t)
}

// divWW returns the quotient and remainder of (u1<<_W + u0) / v. u1 must be
// less than v or the quotient will not fit in a Word.
func divWW(u1, u0, v Word) (q, r Word) {
	n := uint64(u1)<<_W | uint64(u0)
	return Word(n / uint64(v)), Word(n % uint64(v))
}

func nlz(x Word) uint {
	return uint(bits.LeadingZeros32(uint32(x)))
}

func ntz(x Word) uint {
	return uint(bits.TrailingZeros32(uint32(x)))
}

// pow10Words holds 10^i for every i that fits in a single Word.
var pow10Words = [decChunkDigits + 1]Word{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
}
