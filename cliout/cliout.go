// file: radixmap/cliout/cliout.go
package cliout

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/maatini/radixmap/radix"
)

var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#78a9ff")).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f4f4f4"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3ddbd9"))
	missStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff832b"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#da1e28")).Bold(true)
)

// Colorized reports whether styled output should be emitted for w: only
// when w is a terminal, never when piped or redirected.
func Colorized(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// PrintHit renders a successful lookup as "key = value".
func PrintHit(w io.Writer, key, value string) {
	if !Colorized(w) {
		fmt.Fprintf(w, "%s = %s\n", key, value)
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", keyStyle.Render(key), okStyle.Render("="), valueStyle.Render(value))
}

// PrintMiss renders an absent key.
func PrintMiss(w io.Writer, key string) {
	if !Colorized(w) {
		fmt.Fprintf(w, "%s: not found\n", key)
		return
	}
	fmt.Fprintf(w, "%s %s\n", keyStyle.Render(key), missStyle.Render("not found"))
}

// PrintError renders an error.
func PrintError(w io.Writer, err error) {
	if !Colorized(w) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s %v\n", errStyle.Render("error:"), err)
}

// PrintStats renders a map's tree-shape summary: entry count, dispatch
// depth, the interior/leaf/empty slot histogram, buffer size, and total
// memory footprint.
func PrintStats(w io.Writer, s radix.Stats) {
	if !Colorized(w) {
		fmt.Fprintf(w, "entries=%d depth=%d nodes=%d leaves=%d empty_slots=%d buffer_bytes=%d memory_used=%d build=%s\n",
			s.Entries, s.Depth, s.InteriorNodes, s.LeafSlots, s.EmptySlots, s.BufferBytes, s.MemoryUsed, s.BuildDuration)
		return
	}
	fmt.Fprintf(w, "%s %s  %s %s  %s %s  %s %s  %s %s  %s %s\n",
		keyStyle.Render("entries"), valueStyle.Render(fmt.Sprint(s.Entries)),
		keyStyle.Render("depth"), valueStyle.Render(fmt.Sprint(s.Depth)),
		keyStyle.Render("nodes"), valueStyle.Render(fmt.Sprintf("interior=%d leaf=%d empty=%d", s.InteriorNodes, s.LeafSlots, s.EmptySlots)),
		keyStyle.Render("buffer"), valueStyle.Render(fmt.Sprintf("%d bytes", s.BufferBytes)),
		keyStyle.Render("memory"), valueStyle.Render(fmt.Sprintf("%d bytes", s.MemoryUsed)),
		keyStyle.Render("build"), valueStyle.Render(s.BuildDuration.String()))
}
