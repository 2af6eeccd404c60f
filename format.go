package num

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

func isDecimalVerb(c rune) bool { return c == 'd' || c == 's' || c == 'v' }

// formatDecimal implements fmt.Formatter for the decimal verbs. It honours
// the width and the '+', ' ', '-' and '0' flags the same way fmt does for
// the builtin integer types.
func formatDecimal(s fmt.State, c rune, typ string, neg bool, digits string) {
	if !isDecimalVerb(c) {
		sign := ""
		if neg {
			sign = "-"
		}
		fmt.Fprintf(s, "%%!%c(num.%s=%s%s)", c, typ, sign, digits)
		return
	}

	var sign string
	switch {
	case neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	width, ok := s.Width()
	pad := width - len(sign) - len(digits)
	if !ok || pad <= 0 {
		fmt.Fprint(s, sign, digits)
		return
	}

	switch {
	case s.Flag('-'):
		fmt.Fprint(s, sign, digits, strings.Repeat(" ", pad))
	case s.Flag('0'):
		fmt.Fprint(s, sign, strings.Repeat("0", pad), digits)
	default:
		fmt.Fprint(s, strings.Repeat(" ", pad), sign, digits)
	}
}

// unquoteJSON strips the quotes from a JSON string. A bare JSON number is
// returned unchanged.
func unquoteJSON(typ string, bts []byte) ([]byte, error) {
	ln := len(bts)
	if ln == 0 {
		return nil, fmt.Errorf("num: %s empty JSON: %w", typ, ErrInvalidArgument)
	}
	if bts[0] == '"' {
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("num: %s invalid JSON %q: %w", typ, string(bts), ErrInvalidArgument)
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}

// natFromBigWords converts the absolute value of a big.Int, as returned by
// Bits, into a nat. big.Word is 32 or 64 bits wide depending on the platform.
func natFromBigWords(bw []big.Word) nat {
	if bits.UintSize == 32 {
		z := make(nat, len(bw))
		for i, w := range bw {
			z[i] = Word(w)
		}
		return z.norm()
	}

	z := make(nat, len(bw)*2)
	for i, w := range bw {
		z[2*i] = Word(w)
		z[2*i+1] = Word(uint64(w) >> _W)
	}
	return z.norm()
}

func bigWordsFromNat(x nat) []big.Word {
	if bits.UintSize == 32 {
		out := make([]big.Word, len(x))
		for i, w := range x {
			out[i] = big.Word(w)
		}
		return out
	}

	out := make([]big.Word, (len(x)+1)/2)
	for i, w := range x {
		out[i/2] |= big.Word(w) << (_W * uint(i%2))
	}
	return out
}
