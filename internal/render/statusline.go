package render

import "fmt"

// statusLine formats the bottom screen row. Command mode shows the pending
// command behind a ":" prompt; every other mode shows an inverted bar with
// the mode label, cursor position and status message padded to the full
// screen width.
func statusLine(f Frame) Status {
	if f.InCommand {
		return Status{Content: truncate(":"+f.Pending, f.View.Cols)}
	}

	text := fmt.Sprintf("-- %s -- | Pos: %d,%d | %s",
		f.ModeLabel, f.Cursor.X, f.Cursor.Y, f.Status)
	return Status{
		Content:  pad(text, f.View.Cols),
		Inverted: true,
	}
}

// pad left-justifies s into exactly width characters, truncating when it is
// too long so the highlighted bar always spans the full width.
func pad(s string, width int) string {
	if width < 0 {
		width = 0
	}
	if len(s) >= width {
		return s[:width]
	}
	return fmt.Sprintf("%-*s", width, s)
}
