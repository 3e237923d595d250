package mode

// InsertMode interprets most bytes as text to be inserted.
type InsertMode struct{}

// NewInsertMode creates a new insert mode instance.
func NewInsertMode() *InsertMode {
	return &InsertMode{}
}

// Name returns the mode identifier.
func (m *InsertMode) Name() string {
	return ModeInsert
}

// DisplayName returns the human-readable mode name.
func (m *InsertMode) DisplayName() string {
	return "INSERT"
}

// CursorStyle returns the cursor style for insert mode.
func (m *InsertMode) CursorStyle() CursorStyle {
	return CursorBar
}

// Enter is called when entering insert mode.
func (m *InsertMode) Enter() {}

// HandleByte interprets one byte of insert-mode input. Control bytes other
// than escape, line break and backspace are ignored.
func (m *InsertMode) HandleByte(b byte) Result {
	switch {
	case b == byteEscape:
		return Result{Next: ModeNormal}
	case isLineBreak(b):
		return Result{Action: Action{Kind: ActionBreakLine}}
	case b == byteDelete || b == byteBackspace:
		return Result{Action: Action{Kind: ActionDeleteBackward}}
	case isPrintable(b):
		return Result{Action: Action{Kind: ActionInsertChar, Char: b}}
	}
	return Result{}
}
