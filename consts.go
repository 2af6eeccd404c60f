package num

const (
	maxUint32 = 1<<32 - 1
	maxUint64 = 1<<64 - 1

	// decChunkDigits is the number of decimal digits that always fit in one
	// Word. Decimal parsing and formatting work in chunks of this size.
	decChunkDigits = 9
	decChunk       = 1000000000 // 10^decChunkDigits

	wrapWordFloat = float64(_B) // 1 << 32
)

// karatsubaThreshold is the word count at which Mul switches from schoolbook
// to divide-and-conquer multiplication. Both operands must be at or above it.
// It is a var so tests can lower it.
var karatsubaThreshold = 130

// karatsubaMinThreshold guards the recursion: below 4 words the half-sums can
// be as long as the inputs.
const karatsubaMinThreshold = 4

var natOne = nat{1}
