package num

type RandSource interface {
	Uint64() uint64
}

// RandUBig returns a random UBig of at most words words.
func RandUBig(source RandSource, words int) UBig {
	z := make(nat, words)
	for i := 0; i < words; i += 2 {
		v := source.Uint64()
		z[i] = Word(v)
		if i+1 < words {
			z[i+1] = Word(v >> _W)
		}
	}
	return UBig{z.norm()}
}

// DifferenceUBig subtracts the smaller of a and b from the larger.
func DifferenceUBig(a, b UBig) UBig {
	if a.n.cmp(b.n) >= 0 {
		return UBig{a.n.mustSub(b.n)}
	}
	return UBig{b.n.mustSub(a.n)}
}

func LargerUBig(a, b UBig) UBig {
	if b.n.cmp(a.n) > 0 {
		return b
	}
	return a
}

func SmallerUBig(a, b UBig) UBig {
	if b.n.cmp(a.n) < 0 {
		return b
	}
	return a
}

// DifferenceIBig subtracts the smaller of a and b from the larger.
func DifferenceIBig(a, b IBig) IBig {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

// GCD returns the greatest common divisor of a and b. GCD(0, b) is b.
func GCD(a, b UBig) UBig {
	if a.n.cmp(b.n) > 0 {
		a, b = b, a
	}
	return UBig{gcd(a.n, b.n)}
}
