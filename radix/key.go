// file: radixmap/radix/key.go
package radix

import "unsafe"

// Keyer is the byte-view adaptor the container needs from a key type:
// a pointer to the first byte and a byte count. Representational
// equality (spec: same length, identical bytes) is the only equality
// the container ever relies on; it never needs ordering.
//
// Four concrete adaptors are provided below: StringKey and BytesKey
// (variable length), CString (null-terminated, length cached once),
// and Fixed[T] (trivially-copyable fixed-size values). A type that
// implements Keyer itself can be used directly as K.
type Keyer interface {
	KeyBytes() []byte
}

// StringKey adapts a Go string: bytes = pointer to the string's own
// backing array (no copy), len = the string's length.
type StringKey string

func (s StringKey) KeyBytes() []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(string(s)), len(s))
}

// BytesKey adapts a borrowed byte slice directly; bytes = the slice's
// own backing array, len = its length.
type BytesKey []byte

func (b BytesKey) KeyBytes() []byte { return b }

// CString adapts a null-terminated byte buffer: the length is the
// distance to the first zero byte, computed once when the CString is
// constructed (NewCString) and cached, mirroring the C adaptor that
// caches strlen at construction instead of recomputing it on every
// lookup.
type CString struct {
	ptr []byte
	n   int
}

// NewCString scans buf once for a terminating zero and caches the
// distance. buf must outlive the returned CString.
func NewCString(buf []byte) CString {
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return CString{ptr: buf, n: n}
}

func (c CString) KeyBytes() []byte { return c.ptr[:c.n] }

// Fixed adapts a trivially-copyable fixed-size value (an integer, or a
// plain struct of such): bytes = the object's raw representation,
// len = sizeof(T). Byte-identity must be semantically correct
// equality for T; callers are responsible for that (e.g. no padding
// bytes that vary between otherwise-equal values).
type Fixed[T any] struct {
	v T
}

// NewFixed wraps v for use as a map key.
func NewFixed[T any](v T) Fixed[T] {
	return Fixed[T]{v: v}
}

func (f Fixed[T]) KeyBytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&f.v)), unsafe.Sizeof(f.v))
}

// Value returns the wrapped value.
func (f Fixed[T]) Value() T { return f.v }
