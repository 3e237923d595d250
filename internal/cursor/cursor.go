// Package cursor tracks the editing position within the line store.
package cursor

import (
	"fmt"

	"github.com/minvi/minvi/internal/buffer"
)

// Direction is a single-step cursor movement.
type Direction uint8

const (
	// Left moves one column toward the start of the line.
	Left Direction = iota
	// Down moves one row toward the end of the buffer.
	Down
	// Up moves one row toward the start of the buffer.
	Up
	// Right moves one column toward the end of the line.
	Right
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Cursor is a zero-based (column, row) position in a buffer.
//
// Invariant: 0 <= Y < buffer line count, and 0 <= X <= length of line Y.
// The cursor may sit one column past the last character of its line, never
// further. Move and ClampTo preserve the invariant against the buffer they
// are given.
type Cursor struct {
	X int // column
	Y int // row
}

// String returns a human-readable position.
func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Move applies a single movement against buf. Moves at a buffer edge are
// no-ops. After a vertical move the column is clamped to the destination
// line's length, so landing on a shorter line truncates the column.
func (c *Cursor) Move(d Direction, buf *buffer.Buffer) {
	switch d {
	case Left:
		if c.X > 0 {
			c.X--
		}
	case Down:
		if c.Y < buf.LineCount()-1 {
			c.Y++
		}
	case Up:
		if c.Y > 0 {
			c.Y--
		}
	case Right:
		if c.X < buf.LineLen(c.Y) {
			c.X++
		}
	}
	c.ClampTo(buf)
}

// ClampTo forces the cursor back inside buf's valid range. Used after any
// mutation that can shrink the current line or remove rows.
func (c *Cursor) ClampTo(buf *buffer.Buffer) {
	if c.Y < 0 {
		c.Y = 0
	}
	if max := buf.LineCount() - 1; c.Y > max {
		c.Y = max
	}
	if c.X < 0 {
		c.X = 0
	}
	if max := buf.LineLen(c.Y); c.X > max {
		c.X = max
	}
}
