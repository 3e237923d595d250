package buffer

// Line is one row of document text. The zero value is an empty line.
//
// Content is stored as raw bytes; column arithmetic is byte-based
// throughout the editor.
type Line struct {
	content string
}

// NewLine creates a line with the given content.
func NewLine(s string) Line {
	return Line{content: s}
}

// String returns the line's content.
func (l Line) String() string {
	return l.content
}

// Len returns the number of characters in the line.
func (l Line) Len() int {
	return len(l.content)
}

// InsertChar inserts ch at column at. A column at or past the end of the
// line appends; a cursor sitting one past the last character is a normal
// editing position, not an error.
func (l *Line) InsertChar(at int, ch byte) {
	if at < 0 || at >= len(l.content) {
		l.content += string(ch)
		return
	}
	l.content = l.content[:at] + string(ch) + l.content[at:]
}

// DeleteChar removes the character at column at. Out-of-range columns are
// ignored.
func (l *Line) DeleteChar(at int) {
	if at < 0 || at >= len(l.content) {
		return
	}
	l.content = l.content[:at] + l.content[at+1:]
}

// split truncates the line at col and returns the removed tail.
func (l *Line) split(col int) string {
	if col < 0 {
		col = 0
	}
	if col > len(l.content) {
		col = len(l.content)
	}
	tail := l.content[col:]
	l.content = l.content[:col]
	return tail
}

// append concatenates s onto the end of the line.
func (l *Line) append(s string) {
	l.content += s
}
