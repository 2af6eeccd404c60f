package num

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a hash of u's value. Equal values hash equally.
func (u UBig) Hash() uint64 {
	d := xxhash.New()
	writeNat(d, u.n)
	return d.Sum64()
}

// Hash returns a hash of i's value. The hash of a negative value is the
// two's complement negation of the hash of its magnitude.
func (i IBig) Hash() uint64 {
	h := UBig{i.mag}.Hash()
	if i.neg {
		h = ^h + 1
	}
	return h
}

// Hash returns a hash of r's value. Rats are always in lowest terms, so equal
// values hash equally.
func (r Rat) Hash() uint64 {
	d := xxhash.New()
	writeNat(d, r.num)
	writeNat(d, r.denom())
	h := d.Sum64()
	if r.neg {
		h = ^h + 1
	}
	return h
}

// writeNat writes x's word count followed by its little-endian words, so two
// nats written back to back can't collide with a different split.
func writeNat(d *xxhash.Digest, x nat) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(x)))
	d.Write(buf[:])
	for _, w := range x {
		binary.LittleEndian.PutUint32(buf[:4], uint32(w))
		d.Write(buf[:4])
	}
}
