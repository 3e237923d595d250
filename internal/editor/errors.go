package editor

import "errors"

// Editor errors.
var (
	// ErrQuit signals that the editor should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrInputClosed indicates the input stream ended; the loop cannot
	// continue without a source of keystrokes.
	ErrInputClosed = errors.New("input stream closed")
)
