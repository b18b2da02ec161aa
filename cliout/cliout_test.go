package cliout_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/maatini/radixmap/cliout"
	"github.com/maatini/radixmap/radix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorized_PlainBufferIsNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, cliout.Colorized(&buf))
}

func TestPrintHit_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	cliout.PrintHit(&buf, "alpha", "1")
	assert.Equal(t, "alpha = 1\n", buf.String())
}

func TestPrintMiss_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	cliout.PrintMiss(&buf, "nope")
	assert.Equal(t, "nope: not found\n", buf.String())
}

func TestPrintError_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	cliout.PrintError(&buf, errors.New("boom"))
	assert.Equal(t, "error: boom\n", buf.String())
}

func TestPrintStats_PlainOutput(t *testing.T) {
	entries := make([]radix.Entry[radix.StringKey, int], 2)
	entries[0] = radix.Entry[radix.StringKey, int]{Key: "alpha", Value: 1}
	entries[1] = radix.Entry[radix.StringKey, int]{Key: "beta", Value: 2}
	m, err := radix.New(entries)
	require.NoError(t, err)

	var buf bytes.Buffer
	cliout.PrintStats(&buf, m.Stats())

	out := buf.String()
	assert.Contains(t, out, "entries=2")
	assert.Contains(t, out, "depth=")
	assert.Contains(t, out, "nodes=")
	assert.Contains(t, out, "buffer_bytes=")
}
