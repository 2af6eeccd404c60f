/*
Package num provides arbitrary-precision unsigned integers (UBig), signed
integers (IBig) and exact rationals (Rat).

UBig, IBig and Rat are immutable value types; all operations return new
values. The zero value of each is ready to use and represents 0.

Simple example:

	u1 := UBigFrom64(math.MaxUint64)
	u2 := UBigFrom64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Values can be created from a variety of sources:

	UBigFrom64(v uint64) UBig
	UBigFrom32(v uint32) UBig
	UBigFromWords(ws []Word) UBig
	UBigFromString(s string) (UBig, error)
	UBigFromBigInt(v *big.Int) (UBig, error)
	UBigFromFloat64(f float64) (UBig, error)
	IBigFrom64(v int64) IBig
	IBigFromUBig(u UBig, neg bool) IBig
	IBigFromString(s string) (IBig, error)
	IBigFromBigInt(v *big.Int) IBig
	NewRat(num, den UBig, neg bool) (Rat, error)
	RatFrom64(num, den int64) (Rat, error)
	RatFromString(s string) (Rat, error)

IBig division is floored, not truncated: the quotient rounds towards negative
infinity and the remainder takes the sign of the divisor.

Rat values are always held in lowest terms. Rat.Approximate trades precision
for size when numerators and denominators grow too large.

Operations that can fail return an error wrapping one of ErrDivideByZero,
ErrUnderflow, ErrOverflow or ErrInvalidArgument.

UBig, IBig and Rat support the following formatting and marshalling
interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
