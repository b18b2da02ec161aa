// file: radixmap/radix/stats.go
package radix

import "time"

// Stats summarizes the shape of a built Map's dispatch tree: how deep it
// is, how its child slots split between interior nodes, leaves, and
// unused slots, and how big the flattened buffer and the whole
// container's memory footprint are. It exists for operators and the
// build/shell commands to report on a map's shape without exposing the
// buffer layout itself.
type Stats struct {
	Entries       int
	BufferWords   int
	BufferBytes   int
	MemoryUsed    uintptr
	Depth         int
	InteriorNodes int
	LeafSlots     int
	EmptySlots    int
	BuildDuration time.Duration
}

// Stats walks m's flattened buffer once and reports its shape.
func (m *Map[K, V]) Stats() Stats {
	s := Stats{
		Entries:       len(m.entries),
		BufferWords:   len(m.buf),
		BufferBytes:   len(m.buf) * 4,
		MemoryUsed:    m.MemoryUsed(),
		BuildDuration: m.buildDuration,
	}
	if len(m.entries) > 0 {
		s.Depth, s.InteriorNodes, s.LeafSlots, s.EmptySlots = treeShape(m.buf, m.rootOffset, 1)
	}
	return s
}

// treeShape recurses the flattened buffer from the node at offset curr,
// counting its own slot kinds plus its descendants' and tracking the
// deepest level reached below curr (curr itself sits at depth).
func treeShape(buf []uint32, curr uint32, depth int) (maxDepth, interior, leafSlots, emptySlots int) {
	interior = 1
	maxDepth = depth

	info := buf[curr+1]
	min := int(info & 0xFF)
	max := int((info >> 8) & 0xFF)
	sc := slotCount(min, max)

	for i := 0; i < sc; i++ {
		word := buf[curr+2+uint32(i)]
		switch {
		case word == 0:
			emptySlots++
		case word&1 != 0:
			leafSlots++
		default:
			d, in, lf, em := treeShape(buf, word>>1, depth+1)
			if d > maxDepth {
				maxDepth = d
			}
			interior += in
			leafSlots += lf
			emptySlots += em
		}
	}
	return
}
