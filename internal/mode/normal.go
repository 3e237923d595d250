package mode

import "github.com/minvi/minvi/internal/cursor"

// NormalMode interprets bytes as commands rather than text input.
type NormalMode struct{}

// NewNormalMode creates a new normal mode instance.
func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

// Name returns the mode identifier.
func (m *NormalMode) Name() string {
	return ModeNormal
}

// DisplayName returns the human-readable mode name.
func (m *NormalMode) DisplayName() string {
	return "NORMAL"
}

// CursorStyle returns the cursor style for normal mode.
func (m *NormalMode) CursorStyle() CursorStyle {
	return CursorBlock
}

// Enter is called when entering normal mode.
func (m *NormalMode) Enter() {}

// HandleByte interprets one byte as a normal-mode command. Unbound bytes
// are ignored.
func (m *NormalMode) HandleByte(b byte) Result {
	switch b {
	case 'i':
		return Result{Next: ModeInsert}
	case ':':
		return Result{Next: ModeCommand}
	case 'h':
		return Result{Action: Action{Kind: ActionMove, Dir: cursor.Left}}
	case 'j':
		return Result{Action: Action{Kind: ActionMove, Dir: cursor.Down}}
	case 'k':
		return Result{Action: Action{Kind: ActionMove, Dir: cursor.Up}}
	case 'l':
		return Result{Action: Action{Kind: ActionMove, Dir: cursor.Right}}
	}
	return Result{}
}
