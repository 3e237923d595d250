package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/minvi/minvi/internal/buffer"
	"github.com/minvi/minvi/internal/cursor"
	"github.com/minvi/minvi/internal/mode"
	"github.com/minvi/minvi/internal/viewport"
)

func TestBuildBodyRows(t *testing.T) {
	buf := buffer.FromLines([]string{"first line", "second", "third"})
	f := Frame{
		Buffer:    buf,
		View:      viewport.Viewport{Cols: 6, Rows: 6},
		ModeLabel: "NORMAL",
	}

	p := Build(f)

	want := []string{"first ", "second", "third", "~", "~"}
	if diff := cmp.Diff(want, p.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRespectsRowOffset(t *testing.T) {
	buf := buffer.FromLines([]string{"a", "b", "c", "d", "e"})
	f := Frame{
		Buffer:    buf,
		View:      viewport.Viewport{Cols: 10, Rows: 3, RowOffset: 2},
		Cursor:    cursor.Cursor{X: 0, Y: 3},
		ModeLabel: "NORMAL",
	}

	p := Build(f)

	want := []string{"c", "d"}
	if diff := cmp.Diff(want, p.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
	if p.CursorY != 1 || p.CursorX != 0 {
		t.Errorf("cursor = (%d,%d), want (0,1)", p.CursorX, p.CursorY)
	}
}

func TestBuildCustomPlaceholder(t *testing.T) {
	f := Frame{
		Buffer:      buffer.New(),
		View:        viewport.Viewport{Cols: 10, Rows: 4},
		Placeholder: "*",
	}

	p := Build(f)

	want := []string{"", "*", "*"}
	if diff := cmp.Diff(want, p.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusLineNormalMode(t *testing.T) {
	f := Frame{
		Buffer:    buffer.New(),
		View:      viewport.Viewport{Cols: 40, Rows: 4},
		Cursor:    cursor.Cursor{X: 3, Y: 7},
		ModeLabel: "NORMAL",
		Status:    "hello",
	}

	p := Build(f)

	if !p.Status.Inverted {
		t.Error("Status.Inverted = false, want true")
	}
	if len(p.Status.Content) != 40 {
		t.Errorf("status width = %d, want 40", len(p.Status.Content))
	}
	wantPrefix := "-- NORMAL -- | Pos: 3,7 | hello"
	if !strings.HasPrefix(p.Status.Content, wantPrefix) {
		t.Errorf("status = %q, want prefix %q", p.Status.Content, wantPrefix)
	}
}

func TestStatusLineTruncatesToWidth(t *testing.T) {
	f := Frame{
		Buffer:    buffer.New(),
		View:      viewport.Viewport{Cols: 10, Rows: 4},
		ModeLabel: "INSERT",
		Status:    "a very long status message that cannot fit",
	}

	p := Build(f)

	if len(p.Status.Content) != 10 {
		t.Errorf("status width = %d, want 10", len(p.Status.Content))
	}
}

func TestStatusLineCommandMode(t *testing.T) {
	f := Frame{
		Buffer:    buffer.New(),
		View:      viewport.Viewport{Cols: 40, Rows: 4},
		ModeLabel: "COMMAND",
		InCommand: true,
		Pending:   "wq",
	}

	p := Build(f)

	if p.Status.Content != ":wq" {
		t.Errorf("status = %q, want %q", p.Status.Content, ":wq")
	}
	if p.Status.Inverted {
		t.Error("command line should not be inverted")
	}
}

func TestBuildCursorStyleCarriedThrough(t *testing.T) {
	f := Frame{
		Buffer:      buffer.New(),
		View:        viewport.Viewport{Cols: 10, Rows: 4},
		CursorStyle: mode.CursorBar,
	}

	if p := Build(f); p.CursorStyle != mode.CursorBar {
		t.Errorf("CursorStyle = %v, want CursorBar", p.CursorStyle)
	}
}

func TestBuildDegenerateScreen(t *testing.T) {
	// A zero-size terminal still produces a well-formed plan.
	f := Frame{
		Buffer:    buffer.FromLines([]string{"abc"}),
		View:      viewport.Viewport{Cols: 0, Rows: 0},
		ModeLabel: "NORMAL",
	}

	p := Build(f)

	if len(p.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(p.Rows))
	}
	if p.Rows[0] != "" {
		t.Errorf("Rows[0] = %q, want empty", p.Rows[0])
	}
	if p.Status.Content != "" {
		t.Errorf("status = %q, want empty", p.Status.Content)
	}
}
