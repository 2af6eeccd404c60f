package num

import (
	"fmt"
	"math"
	"strconv"
)

// nat is an unsigned magnitude stored as little-endian Words. A normalized
// nat has no high zero words; zero is the empty nat.
//
// nat values are never modified once returned from one of the functions in
// this file, so results may share backing arrays with their inputs.
type nat []Word

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func natFromUint64(v uint64) nat {
	if v == 0 {
		return nil
	}
	if v>>_W == 0 {
		return nat{Word(v)}
	}
	return nat{Word(v), Word(v >> _W)}
}

func natFromWords(ws []Word) nat {
	z := make(nat, len(ws))
	copy(z, ws)
	return z.norm()
}

func (x nat) isZero() bool { return len(x) == 0 }

func (x nat) uint64() uint64 {
	var v uint64
	switch len(x) {
	case 0:
	case 1:
		v = uint64(x[0])
	default:
		v = uint64(x[1])<<_W | uint64(x[0])
	}
	return v
}

func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (x nat) add(y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)
	if n == 0 {
		return x
	}

	z := make(nat, m+1)
	var c uint64
	i := 0
	for ; i < n; i++ {
		c += uint64(x[i]) + uint64(y[i])
		z[i] = Word(c)
		c >>= _W
	}
	for ; i < m; i++ {
		c += uint64(x[i])
		z[i] = Word(c)
		c >>= _W
	}
	z[m] = Word(c)
	return z.norm()
}

// sub returns x - y. ok is false if y > x.
func (x nat) sub(y nat) (z nat, ok bool) {
	m, n := len(x), len(y)
	if m < n {
		return nil, false
	}
	if n == 0 {
		return x, true
	}

	z = make(nat, m)
	var b uint64
	i := 0
	for ; i < n; i++ {
		t := uint64(x[i]) - uint64(y[i]) - b
		z[i] = Word(t)
		b = t >> 63
	}
	for ; i < m; i++ {
		t := uint64(x[i]) - b
		z[i] = Word(t)
		b = t >> 63
	}
	if b != 0 {
		return nil, false
	}
	return z.norm(), true
}

// mustSub is sub for callers that have already established x >= y.
func (x nat) mustSub(y nat) nat {
	z, ok := x.sub(y)
	if !ok {
		panic("num: nat subtraction underflow")
	}
	return z
}

// mulAddWord returns x*y + r.
func (x nat) mulAddWord(y, r Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		if r == 0 {
			return nil
		}
		return nat{r}
	}
	z := make(nat, m+1)
	c := r
	for i, xi := range x {
		c, z[i] = mulAddWWW(xi, y, c)
	}
	z[m] = c
	return z.norm()
}

func (x nat) mulWord(y Word) nat {
	return x.mulAddWord(y, 0)
}

func (x nat) mul(y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m == 0 || n == 0:
		return nil
	case n == 1:
		return x.mulWord(y[0])
	case m == 1:
		return y.mulWord(x[0])
	}

	k := karatsubaThreshold
	if k < karatsubaMinThreshold {
		k = karatsubaMinThreshold
	}
	if m >= k && n >= k {
		return karatsuba(x, y)
	}
	return basicMul(x, y)
}

// basicMul is schoolbook multiplication. Each row accumulates into z through a
// 64-bit carry: xi*yj + z[k] + c <= 2^64-1.
func basicMul(x, y nat) nat {
	z := make(nat, len(x)+len(y))
	for j, yj := range y {
		if yj == 0 {
			continue
		}
		var c uint64
		k := j
		for _, xi := range x {
			c += uint64(xi)*uint64(yj) + uint64(z[k])
			z[k] = Word(c)
			c >>= _W
			k++
		}
		z[k] = Word(c)
	}
	return z.norm()
}

// karatsuba splits both operands at half the longer length:
//
//	x*y = z2*B^2m + ((x1+x0)(y1+y0) - z2 - z0)*B^m + z0
//
// where z2 = x1*y1 and z0 = x0*y0.
func karatsuba(x, y nat) nat {
	m := len(x)
	if len(y) > m {
		m = len(y)
	}
	m /= 2

	x1, x0 := x.split(m)
	y1, y0 := y.split(m)

	z2 := x1.mul(y1)
	z0 := x0.mul(y0)
	z1 := x1.add(x0).mul(y1.add(y0)).mustSub(z2).mustSub(z0)

	return z2.shlWords(2 * m).add(z1.shlWords(m)).add(z0)
}

// split returns the words of x at and above m, and the words below m.
func (x nat) split(m int) (hi, lo nat) {
	if len(x) <= m {
		return nil, x
	}
	return x[m:], x[:m].norm()
}

func (x nat) shlWords(n int) nat {
	if len(x) == 0 || n == 0 {
		return x
	}
	z := make(nat, len(x)+n)
	copy(z[n:], x)
	return z
}

// divWord returns x / y and x % y. y must not be zero.
func (x nat) divWord(y Word) (q nat, r Word) {
	q = make(nat, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = divWW(r, x[i], y)
	}
	return q.norm(), r
}

// divmod returns u / v and u % v. v must not be zero.
func (u nat) divmod(v nat) (q, r nat) {
	if len(v) == 0 {
		panic("num: nat division by zero")
	}
	if u.cmp(v) < 0 {
		return nil, u
	}
	if len(v) == 1 {
		q, r1 := u.divWord(v[0])
		return q, natFromUint64(uint64(r1))
	}
	return u.divLarge(v)
}

// divLarge is Knuth's Algorithm D (TAOCP vol. 2, 4.3.1), shaped after the
// divmnu routine in Hacker's Delight 9-2. It requires len(v) >= 2 and u >= v.
func (u nat) divLarge(v nat) (q, r nat) {
	n := len(v)
	m := len(u) - n

	// Normalize so the top word of the divisor has its high bit set. The
	// shift never grows v but may grow u by a word; un always gets a spare
	// high word.
	s := nlz(v[n-1])
	vn := v.shl(s)
	un := make(nat, len(u)+1)
	copy(un, u.shl(s))

	q = make(nat, m+1)
	vtop, vnext := uint64(vn[n-1]), uint64(vn[n-2])

	for j := m; j >= 0; j-- {
		num := uint64(un[j+n])<<_W | uint64(un[j+n-1])
		qhat := num / vtop
		rhat := num - qhat*vtop

		for qhat >= _B || qhat*vnext > (rhat<<_W|uint64(un[j+n-2])) {
			qhat--
			rhat += vtop
			if rhat >= _B {
				break
			}
		}

		// Multiply and subtract. k carries the high half of each product
		// plus any borrow into the next position.
		var k int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - k - int64(p&_M)
			un[i+j] = Word(t)
			k = int64(p>>_W) - (t >> _W)
		}
		top := int64(un[j+n]) - k

		// qhat was at most one too large for a correct estimate, but keep
		// adding back until the window is non-negative again.
		for top < 0 {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				c += uint64(un[i+j]) + uint64(vn[i])
				un[i+j] = Word(c)
				c >>= _W
			}
			top += int64(c)
		}
		un[j+n] = Word(top)
		q[j] = Word(qhat)
	}

	return q.norm(), un[:n].norm().shr(s)
}

func (x nat) shl(s uint) nat {
	if len(x) == 0 || s == 0 {
		return x
	}
	ws, bs := int(s/_W), s%_W
	z := make(nat, len(x)+ws+1)
	if bs == 0 {
		copy(z[ws:], x)
	} else {
		var c Word
		for i, xi := range x {
			z[ws+i] = xi<<bs | c
			c = xi >> (_W - bs)
		}
		z[ws+len(x)] = c
	}
	return z.norm()
}

func (x nat) shr(s uint) nat {
	if len(x) == 0 || s == 0 {
		return x
	}
	ws, bs := s/_W, s%_W
	if ws >= uint(len(x)) {
		return nil
	}
	w := int(ws)
	n := len(x) - w
	z := make(nat, n)
	if bs == 0 {
		copy(z, x[w:])
	} else {
		for i := 0; i < n; i++ {
			d := x[w+i] >> bs
			if w+i+1 < len(x) {
				d |= x[w+i+1] << (_W - bs)
			}
			z[i] = d
		}
	}
	return z.norm()
}

// lowBitsSet reports whether any of the lowest s bits of x are set.
func (x nat) lowBitsSet(s uint) bool {
	ws, bs := s/_W, s%_W
	for i := 0; i < len(x); i++ {
		switch {
		case uint(i) < ws:
			if x[i] != 0 {
				return true
			}
		case uint(i) == ws:
			return bs > 0 && x[i]&(1<<bs-1) != 0
		default:
			return false
		}
	}
	return false
}

func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return len(x)*_W - int(nlz(x[len(x)-1]))
}

func (x nat) bit(i uint) uint {
	w := i / _W
	if w >= uint(len(x)) {
		return 0
	}
	return uint(x[w]>>(i%_W)) & 1
}

func (x nat) trailingZeros() uint {
	for i, xi := range x {
		if xi != 0 {
			return uint(i)*_W + ntz(xi)
		}
	}
	return 0
}

func (x nat) and(y nat) nat {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	z := make(nat, n)
	for i := 0; i < n; i++ {
		z[i] = x[i] & y[i]
	}
	return z.norm()
}

func (x nat) andNot(y nat) nat {
	z := make(nat, len(x))
	for i, xi := range x {
		if i < len(y) {
			xi &^= y[i]
		}
		z[i] = xi
	}
	return z.norm()
}

func (x nat) or(y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x))
	copy(z, x)
	for i, yi := range y {
		z[i] |= yi
	}
	return z
}

func (x nat) xor(y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x))
	copy(z, x)
	for i, yi := range y {
		z[i] ^= yi
	}
	return z.norm()
}

// gcd uses Euclid's algorithm. gcd(0, y) is y.
func gcd(x, y nat) nat {
	for len(x) > 0 {
		_, r := y.divmod(x)
		x, y = r, x
	}
	return y
}

func natPow10(n int) nat {
	z := natOne
	for n >= decChunkDigits {
		z = z.mulWord(decChunk)
		n -= decChunkDigits
	}
	if n > 0 {
		z = z.mulWord(pow10Words[n])
	}
	return z
}

func (x nat) float64() float64 {
	var f float64
	for i := len(x) - 1; i >= 0; i-- {
		f = f*wrapWordFloat + float64(x[i])
	}
	return f
}

// natFromFloat64 truncates f towards zero. f must be finite and non-negative.
func natFromFloat64(f float64) nat {
	if f < 1 {
		return nil
	}
	if f < 1<<64 {
		return natFromUint64(uint64(f))
	}
	frac, exp := math.Frexp(f)
	mant := uint64(frac * (1 << 53))
	return natFromUint64(mant).shl(uint(exp - 53))
}

// natFromString parses a string of decimal digits. Digits are consumed in
// chunks of decChunkDigits, with the leading chunk taking the remainder so all
// later chunks are full.
func natFromString(s string) (nat, error) {
	if s == "" {
		return nil, fmt.Errorf("num: empty string: %w", ErrInvalidArgument)
	}

	first := len(s) % decChunkDigits
	if first == 0 {
		first = decChunkDigits
	}

	var z nat
	for pos, end := 0, first; pos < len(s); pos, end = end, end+decChunkDigits {
		var chunk Word
		for i := pos; i < end; i++ {
			c := s[i]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("num: invalid character %q in %q: %w", c, s, ErrInvalidArgument)
			}
			chunk = chunk*10 + Word(c-'0')
		}
		z = z.mulAddWord(pow10Words[end-pos], chunk)
	}
	return z, nil
}

// string formats x in decimal by repeated division by 10^9. Every chunk after
// the most significant one is zero-padded to nine digits.
func (x nat) string() string {
	if len(x) == 0 {
		return "0"
	}

	var chunks []Word
	for q := x; len(q) > 0; {
		var r Word
		q, r = q.divWord(decChunk)
		chunks = append(chunks, r)
	}

	last := len(chunks) - 1
	buf := make([]byte, 0, len(chunks)*decChunkDigits)
	buf = strconv.AppendUint(buf, uint64(chunks[last]), 10)

	var pad [decChunkDigits]byte
	for i := last - 1; i >= 0; i-- {
		c := chunks[i]
		for k := decChunkDigits - 1; k >= 0; k-- {
			pad[k] = byte('0' + c%10)
			c /= 10
		}
		buf = append(buf, pad[:]...)
	}
	return string(buf)
}
