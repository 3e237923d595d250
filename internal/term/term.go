// Package term adapts a tcell screen to the editor's terminal contract.
//
// tcell owns the raw-mode acquisition: Init puts the terminal into
// unbuffered, no-echo mode and Fini restores the previous configuration.
// Callers pair them with defer so the terminal is restored on every exit
// path. Key events are translated back into the single-byte vocabulary the
// core state machine consumes.
package term

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/minvi/minvi/internal/mode"
	"github.com/minvi/minvi/internal/render"
)

// ErrClosed indicates the terminal event stream has ended.
var ErrClosed = errors.New("terminal event stream closed")

// Fallback screen size reported when the real size is unavailable.
const (
	fallbackCols = 80
	fallbackRows = 24
)

// Terminal implements the editor's terminal collaborator on top of tcell.
type Terminal struct {
	screen tcell.Screen
}

// New creates a terminal for the controlling tty.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewWithScreen creates a terminal over an existing screen. Used by tests
// with tcell's simulation screen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init acquires the terminal: raw input mode, alternate screen, no echo.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Fini releases the terminal and restores its previous state. Safe to call
// after a failed Init.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Size returns the screen dimensions, or the 80x24 fallback when the
// reported size is unusable.
func (t *Terminal) Size() (int, int) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}

// ReadByte blocks until a key event arrives and returns it as a single
// byte. Events with no byte representation (function keys, modified keys,
// mouse) are skipped; resizes are absorbed here and picked up by the next
// Size call. A nil event means the screen is finalized.
func (t *Terminal) ReadByte() (byte, error) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return 0, ErrClosed
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if b, ok := eventByte(ev); ok {
				return b, nil
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Render draws one frame plan. The cursor is hidden while the screen is
// rewritten to avoid flicker, then repositioned and shown.
func (t *Terminal) Render(p render.Plan) error {
	s := t.screen
	s.HideCursor()
	s.Clear()

	for y, row := range p.Rows {
		drawText(s, y, row, tcell.StyleDefault)
	}

	style := tcell.StyleDefault
	if p.Status.Inverted {
		style = style.Reverse(true)
	}
	drawText(s, len(p.Rows), p.Status.Content, style)

	s.SetCursorStyle(cursorStyle(p.CursorStyle))
	s.ShowCursor(p.CursorX, p.CursorY)
	s.Show()
	return nil
}

// drawText writes s on screen row y starting at column 0.
func drawText(screen tcell.Screen, y int, s string, style tcell.Style) {
	x := 0
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// cursorStyle maps the editor's cursor styles onto tcell's.
func cursorStyle(style mode.CursorStyle) tcell.CursorStyle {
	switch style {
	case mode.CursorBar:
		return tcell.CursorStyleSteadyBar
	case mode.CursorUnderline:
		return tcell.CursorStyleSteadyUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}
