// file: radixmap/radix/errors.go
package radix

import "errors"

// Sentinel errors, each raised at exactly one point per the error model:
// ErrInvalidInput and ErrOverflow only from New, ErrAbsentKey only from
// At/AtMut. The lookup hot path (Get, Contains, Find) never returns an
// error.
var (
	// ErrInvalidInput is returned by New when the supplied key set has
	// duplicates, or a key so positioned that no discriminator byte
	// separates it from another key sharing its full prefix.
	ErrInvalidInput = errors.New("radix: invalid input")

	// ErrAbsentKey is returned by At/AtMut when the requested key is not
	// present in the map.
	ErrAbsentKey = errors.New("radix: absent key")

	// ErrOverflow is returned by New when the entry count exceeds the
	// 31-bit leaf tag capacity (2^31 - 1 entries).
	ErrOverflow = errors.New("radix: too many entries for a 31-bit leaf index")
)

// maxEntries is the largest entry count whose index still fits the 31-bit
// leaf tag (child word = (index<<1)|1 inside a uint32).
const maxEntries = 1<<31 - 1
