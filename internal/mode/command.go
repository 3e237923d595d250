package mode

// CommandMode accumulates a pending command line one byte at a time. The
// pending text lives only inside this mode value; no other mode carries a
// command buffer.
type CommandMode struct {
	pending []byte
}

// NewCommandMode creates a new command mode instance.
func NewCommandMode() *CommandMode {
	return &CommandMode{}
}

// Name returns the mode identifier.
func (m *CommandMode) Name() string {
	return ModeCommand
}

// DisplayName returns the human-readable mode name.
func (m *CommandMode) DisplayName() string {
	return "COMMAND"
}

// CursorStyle returns the cursor style for command mode.
func (m *CommandMode) CursorStyle() CursorStyle {
	return CursorUnderline
}

// Enter clears the pending command line.
func (m *CommandMode) Enter() {
	m.pending = m.pending[:0]
}

// Pending returns the command line accumulated so far.
func (m *CommandMode) Pending() string {
	return string(m.pending)
}

// HandleByte interprets one byte of command-line input. A line break
// submits the pending command; escape abandons it. Both return to normal
// mode with the pending buffer cleared.
func (m *CommandMode) HandleByte(b byte) Result {
	switch {
	case b == byteEscape:
		m.pending = m.pending[:0]
		return Result{Next: ModeNormal}
	case isLineBreak(b):
		cmd := string(m.pending)
		m.pending = m.pending[:0]
		return Result{
			Action: Action{Kind: ActionSubmitCommand, Command: cmd},
			Next:   ModeNormal,
		}
	case b == byteDelete || b == byteBackspace:
		if len(m.pending) > 0 {
			m.pending = m.pending[:len(m.pending)-1]
		}
		return Result{}
	case isPrintable(b):
		m.pending = append(m.pending, b)
		return Result{}
	}
	return Result{}
}
