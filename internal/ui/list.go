// ABOUTME: Terminal list renderer for workout entries
// ABOUTME: Buffers the rendered list and writes it on demand

package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/harper/workouts/internal/view"
)

// TerminalList is a view.ListRenderer for the terminal. Entries are kept
// until Render so a re-render replaces the list instead of repeating it.
type TerminalList struct {
	entries []view.Entry
}

// Compile-time check that TerminalList implements view.ListRenderer.
var _ view.ListRenderer = (*TerminalList)(nil)

// NewTerminalList creates an empty list.
func NewTerminalList() *TerminalList {
	return &TerminalList{}
}

// Clear implements view.ListRenderer.
func (l *TerminalList) Clear() {
	l.entries = nil
}

// Append implements view.ListRenderer.
func (l *TerminalList) Append(e view.Entry) {
	l.entries = append(l.entries, e)
}

// Entries returns the current entries.
func (l *TerminalList) Entries() []view.Entry {
	return l.entries
}

// Render writes the list to w.
func (l *TerminalList) Render(w io.Writer) error {
	if len(l.entries) == 0 {
		_, err := fmt.Fprintln(w, color.New(color.Faint).Sprint("No workouts yet."))
		return err
	}
	for _, e := range l.entries {
		if _, err := fmt.Fprintln(w, FormatEntry(e)); err != nil {
			return err
		}
	}
	return nil
}
