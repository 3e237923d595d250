// Package buffer implements the line store: an ordered sequence of text
// lines supporting character-level edits, line splits and joins.
//
// A Buffer always holds at least one line. An empty document is a single
// empty line, never zero lines; every operation preserves this invariant.
package buffer

import "strings"

// Buffer is an ordered sequence of lines.
type Buffer struct {
	lines []Line
}

// New creates an empty buffer containing a single blank line.
func New() *Buffer {
	return &Buffer{lines: []Line{{}}}
}

// FromLines creates a buffer from the given line contents. An empty slice
// produces the single-blank-line empty document.
func FromLines(lines []string) *Buffer {
	if len(lines) == 0 {
		return New()
	}
	b := &Buffer{lines: make([]Line, len(lines))}
	for i, s := range lines {
		b.lines[i] = NewLine(s)
	}
	return b
}

// LineCount returns the number of lines. Always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the content of the line at row, or the empty string for an
// out-of-range row.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row].String()
}

// LineLen returns the length of the line at row, or 0 for an out-of-range
// row.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return b.lines[row].Len()
}

// InsertChar inserts ch at (row, col). Columns at or past end-of-line
// append; out-of-range rows are ignored.
func (b *Buffer) InsertChar(row, col int, ch byte) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	b.lines[row].InsertChar(col, ch)
}

// DeleteChar removes the character at (row, col). Out-of-range positions
// are ignored.
func (b *Buffer) DeleteChar(row, col int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	b.lines[row].DeleteChar(col)
}

// SplitLine truncates row at col and inserts a new line directly below
// holding the removed remainder. Out-of-range rows are ignored.
func (b *Buffer) SplitLine(row, col int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	tail := b.lines[row].split(col)

	b.lines = append(b.lines, Line{})
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = NewLine(tail)
}

// JoinWithPrevious removes row and appends its content to the line above.
// Joining at row 0 is a no-op: there is no previous line, and removing the
// row could leave the buffer empty.
func (b *Buffer) JoinWithPrevious(row int) {
	if row <= 0 || row >= len(b.lines) {
		return
	}
	b.lines[row-1].append(b.lines[row].String())
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
}

// Text serializes the document with lines joined by single newlines. No
// trailing newline is added; this is the contract the save path consumes.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}
