// file: radixmap/radix/builder.go
package radix

// node is an intermediate, build-time-only tree node. It is discarded
// once flatten has produced the contiguous buffer (spec: the builder
// tree does not survive past construction).
type node struct {
	ndx      int
	minSlot  int
	maxSlot  int // minSlot > maxSlot: no byte range; every key goes to the short-key slot (only the single-entry node)
	children []child
}

// child is a tagged slot: exactly one of "leaf index set" or "link set"
// holds, or neither (empty slot).
type child struct {
	leaf int32 // >= 0 for a leaf pointing at entries[leaf]; -1 otherwise
	link *node
}

func (c child) isEmpty() bool { return c.leaf < 0 && c.link == nil }

// slotCount is the number of child slots a node with this min/max
// range occupies, including the trailing short-key slot. The
// minSlot > maxSlot convention (no normal byte range) still yields
// exactly one slot — the short-key slot — by keeping minSlot == maxSlot+1.
func slotCount(minSlot, maxSlot int) int {
	return maxSlot - minSlot + 2
}

// keyBytesOf extracts the byte view for entries[idx] — shorthand used
// throughout the builder.
func keyBytesOf[K Keyer, V any](entries []Entry[K, V], idx int) []byte {
	return entries[idx].Key.KeyBytes()
}

// buildTree constructs the intermediate tree for the given entry set.
// Returns a nil root for an empty entry set.
func buildTree[K Keyer, V any](entries []Entry[K, V]) (*node, error) {
	n := len(entries)
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		// No discriminator byte can separate a single key from anything;
		// route every lookup that reaches this node straight to the
		// short-key slot and let the leaf's memcmp verification decide.
		return &node{
			ndx:      0,
			minSlot:  1,
			maxSlot:  0,
			children: []child{{leaf: 0, link: nil}},
		}, nil
	}

	sel := make([]int, n)
	for i := range sel {
		sel[i] = i
	}
	return buildNode(entries, sel)
}

// buildNode builds one node for the key subset sel (|sel| >= 2).
func buildNode[K Keyer, V any](entries []Entry[K, V], sel []int) (*node, error) {
	ndx, minSlot, maxSlot, err := selectDiscriminator(entries, sel)
	if err != nil {
		return nil, err
	}

	sc := slotCount(minSlot, maxSlot)
	shortSlot := sc - 1
	buckets := make([][]int, sc)
	for _, idx := range sel {
		kb := keyBytesOf(entries, idx)
		if len(kb) > ndx {
			buckets[int(kb[ndx])-minSlot] = append(buckets[int(kb[ndx])-minSlot], idx)
		} else {
			buckets[shortSlot] = append(buckets[shortSlot], idx)
		}
	}

	children := make([]child, sc)
	for i, bucket := range buckets {
		switch len(bucket) {
		case 0:
			children[i] = child{leaf: -1}
		case 1:
			children[i] = child{leaf: int32(bucket[0])}
		default:
			// A bucket that comes out the same size it went in means ndx
			// found no byte to discriminate on among these keys (they are
			// either duplicates or differ only beyond a prefix one of them
			// entirely contains) — recursing would rebuild the identical
			// node forever instead of making progress.
			if len(bucket) == len(sel) {
				return nil, ErrInvalidInput
			}
			sub, err := buildNode(entries, bucket)
			if err != nil {
				return nil, err
			}
			children[i] = child{leaf: -1, link: sub}
		}
	}

	return &node{ndx: ndx, minSlot: minSlot, maxSlot: maxSlot, children: children}, nil
}

// selectDiscriminator runs the greedy, tail-first scan of spec.md
// section 4.2: for each candidate byte position from the longest key's
// last position down to 0, score it by how many distinct bytes it
// splits the set into (count), tie-breaking on the dense-table size
// (span). Scanning from the tail, not the head, is what lets prefix
// chains like a/aa/aaa make progress instead of re-selecting position 0
// forever.
func selectDiscriminator[K Keyer, V any](entries []Entry[K, V], sel []int) (ndx, minSlot, maxSlot int, err error) {
	lMin, lMax := -1, 0
	for _, idx := range sel {
		l := len(keyBytesOf(entries, idx))
		if lMin == -1 || l < lMin {
			lMin = l
		}
		if l > lMax {
			lMax = l
		}
	}

	bestCount, bestSpan, bestNdx := 0, 0, 0
	bestLo, bestHi := 0, 0

	var seen [256]bool
	for i := lMax - 1; i >= 0; i-- {
		for b := range seen {
			seen[b] = false
		}
		lo, hi, count := 255, 0, 0
		for _, idx := range sel {
			kb := keyBytesOf(entries, idx)
			if len(kb) <= i {
				continue
			}
			b := int(kb[i])
			if !seen[b] {
				seen[b] = true
				count++
			}
			if b < lo {
				lo = b
			}
			if b > hi {
				hi = b
			}
		}
		span := 0
		if count > 0 {
			span = hi - lo + 1
		}
		if count > bestCount || (count > 1 && count == bestCount && span <= bestSpan) {
			bestCount, bestSpan, bestNdx = count, span, i
			bestLo, bestHi = lo, hi
		}
	}

	if bestCount == 1 && bestNdx < lMin {
		return 0, 0, 0, ErrInvalidInput
	}

	return bestNdx, bestLo, bestHi, nil
}
