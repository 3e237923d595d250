// Package excmd parses completed command-line (":") commands.
//
// Parsing is separate from execution: the editor decides what a Write or
// Quit means for its collaborators, while this package only classifies the
// submitted text. Unknown commands are a normal outcome, never an error.
package excmd

import "strings"

// Kind classifies a parsed command.
type Kind uint8

const (
	// Unknown is any command the editor does not recognize.
	Unknown Kind = iota

	// Write saves the document ("w").
	Write

	// Quit stops the editor without saving ("q").
	Quit

	// WriteQuit saves the document, then stops ("wq").
	WriteQuit
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Write:
		return "write"
	case Quit:
		return "quit"
	case WriteQuit:
		return "write-quit"
	default:
		return "unknown"
	}
}

// Command is a classified command line.
type Command struct {
	Kind Kind

	// Raw is the trimmed command text as submitted, kept for reporting
	// unknown commands back to the user.
	Raw string
}

// Parse trims raw and classifies it.
func Parse(raw string) Command {
	trimmed := strings.TrimSpace(raw)
	cmd := Command{Raw: trimmed}
	switch trimmed {
	case "w":
		cmd.Kind = Write
	case "q":
		cmd.Kind = Quit
	case "wq":
		cmd.Kind = WriteQuit
	}
	return cmd
}
