// file: radixmap/radix/map_test.go
package radix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entriesOf(pairs ...string) []Entry[StringKey, int] {
	out := make([]Entry[StringKey, int], len(pairs))
	for i, k := range pairs {
		out[i] = Entry[StringKey, int]{Key: StringKey(k), Value: i}
	}
	return out
}

func TestNew_EmptySet(t *testing.T) {
	m, err := New[StringKey, int](nil)
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Len())

	_, ok := m.Get(StringKey("anything"))
	assert.False(t, ok)
}

func TestNew_SingleKey(t *testing.T) {
	m, err := New(entriesOf("only"))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())

	v, ok := m.Get(StringKey("only"))
	require.True(t, ok)
	assert.Equal(t, 0, v)

	_, ok = m.Get(StringKey("nope"))
	assert.False(t, ok)

	_, ok = m.Get(StringKey(""))
	assert.False(t, ok)
}

func TestNew_EmptyStringKeyAlongsideNonempty(t *testing.T) {
	m, err := New(entriesOf("", "a", "ab"))
	require.NoError(t, err)

	v, ok := m.Get(StringKey(""))
	require.True(t, ok)
	assert.Equal(t, 0, v)

	v, ok = m.Get(StringKey("a"))
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = m.Get(StringKey("ab"))
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = m.Get(StringKey("b"))
	assert.False(t, ok)
}

func TestNew_PrefixChain(t *testing.T) {
	m, err := New(entriesOf("a", "aa", "aaa", "aaaa"))
	require.NoError(t, err)

	for i, k := range []string{"a", "aa", "aaa", "aaaa"} {
		v, ok := m.Get(StringKey(k))
		require.True(t, ok, "key %q must be present", k)
		assert.Equal(t, i, v)
	}

	for _, miss := range []string{"", "ap", "aaaaa", "b"} {
		_, ok := m.Get(StringKey(miss))
		assert.False(t, ok, "key %q must be absent", miss)
	}
}

func TestNew_LongKeysDifferingOnlyInLastByte(t *testing.T) {
	base := "a-very-long-common-prefix-shared-by-every-key-here-"
	m, err := New(entriesOf(base+"a", base+"b", base+"c", base+"z"))
	require.NoError(t, err)

	for i, suffix := range []string{"a", "b", "c", "z"} {
		v, ok := m.Get(StringKey(base + suffix))
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	_, ok := m.Get(StringKey(base + "d"))
	assert.False(t, ok)
	_, ok = m.Get(StringKey(base))
	assert.False(t, ok)
}

func TestNew_DuplicateKeyIsInvalid(t *testing.T) {
	_, err := New(entriesOf("dup", "other", "dup"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestNew_DuplicateEmptyKeyIsInvalid(t *testing.T) {
	_, err := New(entriesOf("", ""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestNew_RegressionInput(t *testing.T) {
	keys := []string{
		"DEY", "UJZRE", "UW", "WUGREJ", "YMDREBPRRAJXJ", "AIXI",
	}
	m, err := New(entriesOf(keys...))
	require.NoError(t, err)

	for i, k := range keys {
		v, ok := m.Get(StringKey(k))
		require.True(t, ok, "key %q must be present", k)
		assert.Equal(t, i, v)
	}

	_, ok := m.Get(StringKey("DEYY"))
	assert.False(t, ok)
	_, ok = m.Get(StringKey("DE"))
	assert.False(t, ok)
}

func TestMap_AtAndAtMut(t *testing.T) {
	m, err := New(entriesOf("x", "y", "z"))
	require.NoError(t, err)

	p, err := m.At(StringKey("y"))
	require.NoError(t, err)
	*p = 99
	v, _ := m.Get(StringKey("y"))
	assert.Equal(t, 99, v)

	_, err = m.At(StringKey("missing"))
	assert.True(t, errors.Is(err, ErrAbsentKey))
}

func TestMap_ContainsCountFindEqualRange(t *testing.T) {
	m, err := New(entriesOf("x", "y", "z"))
	require.NoError(t, err)

	assert.True(t, m.Contains(StringKey("y")))
	assert.False(t, m.Contains(StringKey("w")))
	assert.Equal(t, 1, m.Count(StringKey("y")))
	assert.Equal(t, 0, m.Count(StringKey("w")))

	assert.Equal(t, 1, m.Find(StringKey("y")))
	assert.Equal(t, -1, m.Find(StringKey("w")))

	lo, hi := m.EqualRange(StringKey("y"))
	assert.Equal(t, 1, lo)
	assert.Equal(t, 2, hi)

	lo, hi = m.EqualRange(StringKey("w"))
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}

func TestMap_IterOrderAndReversed(t *testing.T) {
	keys := []string{"x", "y", "z"}
	m, err := New(entriesOf(keys...))
	require.NoError(t, err)

	var got []string
	for _, e := range m.Iter() {
		got = append(got, string(e.Key))
	}
	assert.Equal(t, keys, got)

	var rev []string
	for _, e := range m.IterReversed() {
		rev = append(rev, string(e.Key))
	}
	assert.Equal(t, []string{"z", "y", "x"}, rev)
}

func TestMap_SwapAndClear(t *testing.T) {
	a, err := New(entriesOf("a1", "a2"))
	require.NoError(t, err)
	b, err := New(entriesOf("b1", "b2", "b3"))
	require.NoError(t, err)

	a.Swap(b)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 2, b.Len())
	assert.True(t, a.Contains(StringKey("b1")))
	assert.True(t, b.Contains(StringKey("a1")))

	a.Clear()
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 0, a.Len())
}

func TestMap_CloneIsIndependent(t *testing.T) {
	m, err := New(entriesOf("a", "b"))
	require.NoError(t, err)

	clone := m.Clone()
	p, err := m.At(StringKey("a"))
	require.NoError(t, err)
	*p = 123

	v, _ := clone.Get(StringKey("a"))
	assert.NotEqual(t, 123, v)
}

func TestMap_Equal(t *testing.T) {
	a, err := New(entriesOf("a", "b"))
	require.NoError(t, err)
	b, err := New(entriesOf("a", "b"))
	require.NoError(t, err)
	c, err := New(entriesOf("a", "c"))
	require.NoError(t, err)

	eq := func(x, y int) bool { return x == y }
	assert.True(t, a.Equal(b, eq))
	assert.False(t, a.Equal(c, eq))
}

func TestMap_MemoryUsedIsPositiveAndGrows(t *testing.T) {
	small, err := New(entriesOf("a"))
	require.NoError(t, err)
	large, err := New(entriesOf("a", "b", "c", "d", "e", "f", "g", "h"))
	require.NoError(t, err)

	assert.Greater(t, small.MemoryUsed(), uintptr(0))
	assert.Greater(t, large.MemoryUsed(), small.MemoryUsed())
}

func TestMap_AssumeExistingKeysFastPath(t *testing.T) {
	m, err := New(entriesOf("fast", "path", "keys"), WithAssumeExistingKeys())
	require.NoError(t, err)

	v, ok := m.Get(StringKey("path"))
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestFixedKey(t *testing.T) {
	type point struct{ X, Y int32 }

	entries := []Entry[Fixed[point], string]{
		{Key: NewFixed(point{1, 2}), Value: "a"},
		{Key: NewFixed(point{3, 4}), Value: "b"},
		{Key: NewFixed(point{5, 6}), Value: "c"},
	}
	m, err := New(entries)
	require.NoError(t, err)

	v, ok := m.Get(NewFixed(point{3, 4}))
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = m.Get(NewFixed(point{9, 9}))
	assert.False(t, ok)
}

func TestCStringKey(t *testing.T) {
	buf1 := append([]byte("hello"), 0, 'x', 'x')
	buf2 := append([]byte("world"), 0)

	entries := []Entry[CString, int]{
		{Key: NewCString(buf1), Value: 1},
		{Key: NewCString(buf2), Value: 2},
	}
	m, err := New(entries)
	require.NoError(t, err)

	v, ok := m.Get(NewCString(append([]byte("hello"), 0)))
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestBytesKey(t *testing.T) {
	entries := []Entry[BytesKey, int]{
		{Key: BytesKey([]byte{0x01, 0x02}), Value: 10},
		{Key: BytesKey([]byte{0x01, 0x02, 0x03}), Value: 20},
	}
	m, err := New(entries)
	require.NoError(t, err)

	v, ok := m.Get(BytesKey([]byte{0x01, 0x02}))
	require.True(t, ok)
	assert.Equal(t, 10, v)
}
