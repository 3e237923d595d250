package mode

import "github.com/minvi/minvi/internal/cursor"

// Mode defines the interface for editor modes. Each mode determines how
// input bytes are interpreted and what cursor style is displayed.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "normal", "insert").
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	// CursorStyle returns the cursor style for this mode.
	CursorStyle() CursorStyle

	// Enter is called when the manager switches into this mode, allowing
	// the mode to reset any mode-local state.
	Enter()

	// HandleByte interprets one input byte. The result carries an action
	// for the editor to apply and, optionally, the name of the mode to
	// switch to.
	HandleByte(b byte) Result
}

// Result describes the outcome of handling one input byte.
type Result struct {
	// Action is the editor mutation requested by the byte, if any.
	Action Action

	// Next names the mode to switch to, or "" to stay in the current mode.
	Next string
}

// ActionKind identifies the kind of editor mutation a mode requests.
type ActionKind uint8

const (
	// ActionNone means the byte was ignored or consumed internally.
	ActionNone ActionKind = iota

	// ActionMove moves the cursor one step in Action.Dir.
	ActionMove

	// ActionInsertChar inserts Action.Char at the cursor.
	ActionInsertChar

	// ActionBreakLine splits the current line at the cursor column.
	ActionBreakLine

	// ActionDeleteBackward deletes before the cursor, joining lines when
	// the cursor is at column zero.
	ActionDeleteBackward

	// ActionSubmitCommand executes the completed command line in
	// Action.Command.
	ActionSubmitCommand
)

// Action is a single editor mutation requested by a mode.
type Action struct {
	Kind    ActionKind
	Dir     cursor.Direction // valid for ActionMove
	Char    byte             // valid for ActionInsertChar
	Command string           // valid for ActionSubmitCommand
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor (command mode).
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// Standard mode names.
const (
	ModeNormal  = "normal"
	ModeInsert  = "insert"
	ModeCommand = "command"
)

// Input byte values with fixed meanings across modes.
const (
	byteEscape    = 0x1b
	byteBackspace = 0x08
	byteDelete    = 0x7f
)

// isLineBreak reports whether b submits/breaks a line (CR or LF).
func isLineBreak(b byte) bool {
	return b == '\r' || b == '\n'
}

// isPrintable reports whether b is a non-control byte that can appear in
// document or command-line text.
func isPrintable(b byte) bool {
	return b >= 0x20 && b != byteDelete
}
