// Package viewport maps buffer rows onto a fixed-size terminal screen.
//
// The last screen row is reserved for the status line; the rows above it
// form the body area that shows document text. RowOffset is the buffer row
// drawn at the top of the body.
package viewport

// Viewport describes the visible window over the buffer.
type Viewport struct {
	Cols      int
	Rows      int
	RowOffset int
}

// New creates a viewport for a screen of the given size.
func New(cols, rows int) Viewport {
	return Viewport{Cols: cols, Rows: rows}
}

// BodyRows returns the number of screen rows available for document text.
// Degenerate terminal sizes (0 or 1 rows) still yield 1 so callers never
// underflow or divide by zero.
func (v Viewport) BodyRows() int {
	body := v.Rows - 1
	if body < 1 {
		body = 1
	}
	return body
}

// Resize updates the screen dimensions, keeping the current offset.
func (v *Viewport) Resize(cols, rows int) {
	v.Cols = cols
	v.Rows = rows
}

// ScrollTo adjusts RowOffset just enough to bring buffer row cy into the
// body area, and no further. Called before every render.
func (v *Viewport) ScrollTo(cy int) {
	if cy < v.RowOffset {
		v.RowOffset = cy
	}
	if cy >= v.RowOffset+v.BodyRows() {
		v.RowOffset = cy - v.BodyRows() + 1
	}
}

// Contains reports whether buffer row cy is currently inside the body area.
func (v Viewport) Contains(cy int) bool {
	return cy >= v.RowOffset && cy < v.RowOffset+v.BodyRows()
}
