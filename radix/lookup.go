// file: radixmap/radix/lookup.go
package radix

// lookupChecked walks buf from rootOffset for key and returns the
// entry index of a verified hit. verify receives a candidate leaf
// index and must report whether that entry's own key truly matches
// (length and memcmp) — the container wires this to the generic entry
// slice so this file stays independent of K and V.
//
// This is the hot path of spec.md section 4.4: one comparison, one
// table lookup, one unsigned subtraction per level.
func lookupChecked(buf []uint32, rootOffset uint32, key []byte, verify func(idx int32) bool) (int32, bool) {
	if len(buf) == 0 {
		return 0, false
	}
	l := len(key)
	curr := rootOffset

	for {
		ndx := int(buf[curr])
		info := buf[curr+1]
		min := int(info & 0xFF)
		max := int((info >> 8) & 0xFF)

		var word uint32
		if ndx < l && min <= max {
			diff := uint32(byte(key[ndx])) - uint32(min)
			if diff <= uint32(max-min) {
				word = buf[curr+2+diff]
			}
		} else {
			word = buf[curr+2+uint32(max-min+1)]
		}

		if word == 0 {
			return 0, false
		}
		if word&1 != 0 {
			idx := int32(word >> 1)
			if verify(idx) {
				return idx, true
			}
			return 0, false
		}
		curr = word >> 1
	}
}

// lookupUnchecked is the query_only_existing_keys fast path: it omits
// the range check on the computed slot difference and the final
// memcmp verification at the leaf, trusting the caller's promise that
// key is present. It still never indexes outside buf — Go's slice
// bounds checks make out-of-range access panic rather than corrupt
// memory, satisfying the "never corrupt memory" half of the contract
// even when the "only existing keys" half is violated.
func lookupUnchecked(buf []uint32, rootOffset uint32, key []byte) int32 {
	l := len(key)
	curr := rootOffset

	for {
		ndx := int(buf[curr])
		info := buf[curr+1]
		min := int(info & 0xFF)
		max := int((info >> 8) & 0xFF)

		var word uint32
		if ndx < l && min <= max {
			diff := uint32(byte(key[ndx])) - uint32(min)
			word = buf[curr+2+diff]
		} else {
			word = buf[curr+2+uint32(max-min+1)]
		}

		if word == 0 {
			return -1
		}
		if word&1 != 0 {
			return int32(word >> 1)
		}
		curr = word >> 1
	}
}
