package mode

import "fmt"

// Manager owns the registered modes and coordinates transitions between
// them. Exactly one mode is active at a time.
type Manager struct {
	modes   map[string]Mode
	current Mode
	command *CommandMode
}

// NewManager creates a manager with the three standard modes registered
// and normal mode active.
func NewManager() *Manager {
	normal := NewNormalMode()
	command := NewCommandMode()
	m := &Manager{
		modes: map[string]Mode{
			ModeNormal:  normal,
			ModeInsert:  NewInsertMode(),
			ModeCommand: command,
		},
		current: normal,
		command: command,
	}
	return m
}

// Current returns the active mode.
func (m *Manager) Current() Mode {
	return m.current
}

// CurrentName returns the name of the active mode.
func (m *Manager) CurrentName() string {
	return m.current.Name()
}

// Pending returns the command line accumulated so far, and whether command
// mode is active.
func (m *Manager) Pending() (string, bool) {
	if m.current.Name() != ModeCommand {
		return "", false
	}
	return m.command.Pending(), true
}

// Switch changes to the named mode, calling Enter on the target.
func (m *Manager) Switch(name string) error {
	next, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("unknown mode: %s", name)
	}
	next.Enter()
	m.current = next
	return nil
}

// HandleByte routes one input byte through the active mode, performs any
// transition the mode requested, and returns the action for the editor to
// apply.
func (m *Manager) HandleByte(b byte) Action {
	res := m.current.HandleByte(b)
	if res.Next != "" {
		// Transitions only ever target registered modes.
		_ = m.Switch(res.Next)
	}
	return res.Action
}
