// Package editor wires the line store, cursor, viewport and mode state
// machine into the synchronous event loop at the heart of minvi.
//
// The entire editor state lives in one Editor value owned by the loop;
// there are no package-level variables, so tests construct an Editor
// directly with fake collaborators and drive it byte by byte.
package editor

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/minvi/minvi/internal/buffer"
	"github.com/minvi/minvi/internal/config"
	"github.com/minvi/minvi/internal/cursor"
	"github.com/minvi/minvi/internal/excmd"
	"github.com/minvi/minvi/internal/mode"
	"github.com/minvi/minvi/internal/render"
	"github.com/minvi/minvi/internal/viewport"
)

// Terminal is the screen collaborator. Implementations own raw-mode
// acquisition and escape-sequence mechanics; the editor only asks for the
// screen size, the next input byte, and the drawing of a computed plan.
type Terminal interface {
	// Size returns the screen dimensions in (columns, rows).
	Size() (cols, rows int)

	// ReadByte blocks until one input byte is available. An error means
	// the input stream is gone and the loop must stop.
	ReadByte() (byte, error)

	// Render draws one frame plan.
	Render(render.Plan) error
}

// Storage is the document persistence collaborator.
type Storage interface {
	// Load returns the file's lines. A missing file is reported by an
	// error wrapping fs.ErrNotExist.
	Load(path string) ([]string, error)

	// Save persists the serialized document.
	Save(path, text string) error
}

// Options configures a new Editor.
type Options struct {
	// Filename is the document to load and save. Empty means an unnamed
	// in-memory buffer; saving then reports "No file name".
	Filename string

	// Config supplies display settings. The zero value is usable; empty
	// fields fall back to built-in defaults.
	Config config.Config

	// Logger receives diagnostics. Nil discards them.
	Logger *Logger
}

// Editor is the complete interactive state: line store, cursor, viewport,
// mode state machine, status message and file binding.
type Editor struct {
	buf   *buffer.Buffer
	cur   cursor.Cursor
	view  viewport.Viewport
	modes *mode.Manager

	term  Terminal
	store Storage
	log   *Logger

	filename    string
	status      string
	placeholder string
}

// New creates an editor bound to the given collaborators and loads the
// configured file, if any. A missing file starts a new named document
// rather than failing.
func New(term Terminal, store Storage, opts Options) *Editor {
	cols, rows := term.Size()
	welcome := opts.Config.Editor.WelcomeMessage
	if welcome == "" {
		welcome = config.Default().Editor.WelcomeMessage
	}

	e := &Editor{
		buf:         buffer.New(),
		view:        viewport.New(cols, rows),
		modes:       mode.NewManager(),
		term:        term,
		store:       store,
		log:         opts.Logger,
		filename:    opts.Filename,
		status:      welcome,
		placeholder: opts.Config.Editor.Placeholder,
	}

	if opts.Filename != "" {
		e.open(opts.Filename)
	}
	return e
}

// open loads path into the buffer and sets the load status message.
func (e *Editor) open(path string) {
	lines, err := e.store.Load(path)
	switch {
	case err == nil:
		e.buf = buffer.FromLines(lines)
		e.status = fmt.Sprintf("Opened: %s", path)
		e.log.Info("opened %s (%d lines)", path, e.buf.LineCount())
	case errors.Is(err, fs.ErrNotExist):
		e.status = fmt.Sprintf("New file: %s", path)
		e.log.Info("new file %s", path)
	default:
		// Unreadable but present: surface the reason, keep editing an
		// empty document under the same name.
		e.status = fmt.Sprintf("Error: %v", err)
		e.log.Error("open %s: %v", path, err)
	}
}

// Run drives the event loop: render, block for one byte, dispatch, repeat.
// It returns ErrQuit on a quit command, or the read error when the input
// stream fails.
func (e *Editor) Run() error {
	for {
		if err := e.refresh(); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}

		b, err := e.term.ReadByte()
		if err != nil {
			e.log.Error("input: %v", err)
			return fmt.Errorf("%w: %v", ErrInputClosed, err)
		}

		if !e.HandleByte(b) {
			e.log.Info("quit")
			return ErrQuit
		}
	}
}

// HandleByte feeds one input byte through the mode state machine and
// applies the resulting mutation. It returns false when the editor should
// stop running.
func (e *Editor) HandleByte(b byte) bool {
	act := e.modes.HandleByte(b)
	switch act.Kind {
	case mode.ActionMove:
		e.cur.Move(act.Dir, e.buf)
	case mode.ActionInsertChar:
		e.buf.InsertChar(e.cur.Y, e.cur.X, act.Char)
		e.cur.X++
	case mode.ActionBreakLine:
		e.buf.SplitLine(e.cur.Y, e.cur.X)
		e.cur.Y++
		e.cur.X = 0
	case mode.ActionDeleteBackward:
		e.deleteBackward()
	case mode.ActionSubmitCommand:
		return e.execute(act.Command)
	}
	return true
}

// deleteBackward removes the character before the cursor. At column zero
// it joins the current line into the previous one; at the document start
// it does nothing.
func (e *Editor) deleteBackward() {
	if e.cur.X == 0 && e.cur.Y == 0 {
		return
	}
	if e.cur.X > 0 {
		e.buf.DeleteChar(e.cur.Y, e.cur.X-1)
		e.cur.X--
		return
	}

	// The landing column is the previous line's length before the join,
	// so it must be read before mutating.
	joinCol := e.buf.LineLen(e.cur.Y - 1)
	e.buf.JoinWithPrevious(e.cur.Y)
	e.cur.Y--
	e.cur.X = joinCol
}

// execute runs a submitted command line. It returns false when the editor
// should stop.
func (e *Editor) execute(raw string) bool {
	cmd := excmd.Parse(raw)
	e.log.Debug("command %q -> %s", raw, cmd.Kind)

	switch cmd.Kind {
	case excmd.Write:
		e.saveAndReport()
	case excmd.Quit:
		return false
	case excmd.WriteQuit:
		// Best-effort save: the quit proceeds even when the save fails,
		// with the failure already logged and shown.
		e.saveAndReport()
		return false
	default:
		e.status = fmt.Sprintf("Unknown: %s", cmd.Raw)
	}
	return true
}

// saveAndReport persists the document and records the outcome in the
// status message. Save failures never stop the loop.
func (e *Editor) saveAndReport() {
	if e.filename == "" {
		e.status = "No file name"
		return
	}
	if err := e.store.Save(e.filename, e.buf.Text()); err != nil {
		e.status = fmt.Sprintf("Error: %v", err)
		e.log.Error("save %s: %v", e.filename, err)
		return
	}
	e.status = fmt.Sprintf("Saved to %s", e.filename)
	e.log.Info("saved %s", e.filename)
}

// refresh recomputes the viewport and hands a fresh plan to the terminal.
func (e *Editor) refresh() error {
	cols, rows := e.term.Size()
	e.view.Resize(cols, rows)
	e.view.ScrollTo(e.cur.Y)

	return e.term.Render(render.Build(e.frame()))
}

// frame snapshots the current state as render input.
func (e *Editor) frame() render.Frame {
	pending, inCommand := e.modes.Pending()
	return render.Frame{
		Buffer:      e.buf,
		View:        e.view,
		Cursor:      e.cur,
		ModeLabel:   e.modes.Current().DisplayName(),
		CursorStyle: e.modes.Current().CursorStyle(),
		Pending:     pending,
		InCommand:   inCommand,
		Status:      e.status,
		Placeholder: e.placeholder,
	}
}

// Status returns the current status message.
func (e *Editor) Status() string {
	return e.status
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() cursor.Cursor {
	return e.cur
}

// Buffer returns the line store.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// ModeName returns the name of the active mode.
func (e *Editor) ModeName() string {
	return e.modes.CurrentName()
}

// Viewport returns the current viewport.
func (e *Editor) Viewport() viewport.Viewport {
	return e.view
}
