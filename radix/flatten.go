// file: radixmap/radix/flatten.go
package radix

// sentinel occupies word 0 of every buffer so that offset 0 can mean
// "no child" unambiguously; no real node is ever flattened there.
const sentinel uint32 = 0xFFFFFFFF

// flattenTree serialises root post-order into a fresh []uint32 buffer
// and returns (buffer, rootOffset). A nil root (empty map) yields a
// nil buffer and offset 0.
func flattenTree(root *node) ([]uint32, uint32) {
	if root == nil {
		return nil, 0
	}
	buf := make([]uint32, 1, 64)
	buf[0] = sentinel
	rootOffset := flattenNode(root, &buf)
	return buf, rootOffset
}

// flattenNode appends one node (after recursively appending its
// already-built children) and returns the node's own offset.
func flattenNode(n *node, buf *[]uint32) uint32 {
	words := make([]uint32, len(n.children))
	for i, c := range n.children {
		switch {
		case c.link != nil:
			offset := flattenNode(c.link, buf)
			words[i] = offset << 1
		case c.leaf >= 0:
			words[i] = (uint32(c.leaf) << 1) | 1
		default:
			words[i] = 0
		}
	}

	offset := uint32(len(*buf))
	*buf = append(*buf, uint32(n.ndx))
	*buf = append(*buf, uint32(n.minSlot)|(uint32(n.maxSlot)<<8))
	*buf = append(*buf, words...)
	return offset
}
