// Package render computes the frame description for one screen update.
//
// Build is pure: it reads the buffer, cursor, viewport and mode state and
// produces a Plan describing exactly what the terminal collaborator should
// draw. No terminal APIs are touched here.
package render

import (
	"github.com/minvi/minvi/internal/buffer"
	"github.com/minvi/minvi/internal/cursor"
	"github.com/minvi/minvi/internal/mode"
	"github.com/minvi/minvi/internal/viewport"
)

// DefaultPlaceholder marks screen rows past the end of the buffer.
const DefaultPlaceholder = "~"

// Frame is the input state for one screen update.
type Frame struct {
	Buffer *buffer.Buffer
	View   viewport.Viewport
	Cursor cursor.Cursor

	// ModeLabel is the active mode's display name, e.g. "NORMAL".
	ModeLabel string

	// CursorStyle is the active mode's cursor style.
	CursorStyle mode.CursorStyle

	// Pending is the command line typed so far; InCommand selects the
	// command-line status rendering.
	Pending   string
	InCommand bool

	// Status is the transient status message.
	Status string

	// Placeholder marks rows past the end of the buffer. Empty selects
	// DefaultPlaceholder.
	Placeholder string
}

// Plan is the ordered description of one frame.
type Plan struct {
	// Rows holds one string per body row, already truncated to the
	// viewport width.
	Rows []string

	// Status is the bottom status line.
	Status Status

	// CursorX and CursorY are the final on-screen cursor position in
	// 0-based screen coordinates. Collaborators with 1-based conventions
	// translate at their own boundary.
	CursorX int
	CursorY int

	// CursorStyle is the cursor shape to display.
	CursorStyle mode.CursorStyle
}

// Status is the content of the bottom screen row.
type Status struct {
	// Content is the text of the status line.
	Content string

	// Inverted selects reverse-video rendering for the full-width bar.
	Inverted bool
}

// Build computes the plan for one frame. The caller is expected to have
// scrolled the viewport so the cursor is inside the body area.
func Build(f Frame) Plan {
	p := Plan{
		Rows:        bodyRows(f),
		Status:      statusLine(f),
		CursorX:     f.Cursor.X,
		CursorY:     f.Cursor.Y - f.View.RowOffset,
		CursorStyle: f.CursorStyle,
	}
	return p
}

// bodyRows renders the visible slice of the buffer, one string per screen
// row, truncated to the screen width.
func bodyRows(f Frame) []string {
	placeholder := f.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	rows := make([]string, f.View.BodyRows())
	for i := range rows {
		bufRow := f.View.RowOffset + i
		if bufRow >= f.Buffer.LineCount() {
			rows[i] = truncate(placeholder, f.View.Cols)
			continue
		}
		rows[i] = truncate(f.Buffer.Line(bufRow), f.View.Cols)
	}
	return rows
}

// truncate limits s to width characters.
func truncate(s string, width int) string {
	if width < 0 {
		width = 0
	}
	if len(s) > width {
		return s[:width]
	}
	return s
}
