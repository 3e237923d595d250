package viewport

import "testing"

func TestBodyRows(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{24, 23},
		{4, 3},
		{2, 1},
		{1, 1},
		{0, 1},
	}

	for _, tt := range tests {
		v := New(80, tt.rows)
		if got := v.BodyRows(); got != tt.want {
			t.Errorf("New(80, %d).BodyRows() = %d, want %d", tt.rows, got, tt.want)
		}
	}
}

func TestScrollTo(t *testing.T) {
	tests := []struct {
		name       string
		rows       int
		offset     int
		cy         int
		wantOffset int
	}{
		{"cursor inside body leaves offset", 4, 0, 2, 0},
		{"cursor just below body scrolls down", 4, 0, 3, 1},
		{"cursor far below scrolls to reveal", 4, 0, 10, 8},
		{"cursor above offset scrolls up", 4, 5, 2, 2},
		{"cursor at offset stays", 4, 5, 5, 5},
		{"single-row terminal tracks cursor", 1, 0, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{Cols: 10, Rows: tt.rows, RowOffset: tt.offset}
			v.ScrollTo(tt.cy)
			if v.RowOffset != tt.wantOffset {
				t.Errorf("RowOffset = %d, want %d", v.RowOffset, tt.wantOffset)
			}
			if !v.Contains(tt.cy) {
				t.Errorf("Contains(%d) = false after ScrollTo", tt.cy)
			}
		})
	}
}

// Minimal-scroll policy: scrolling reveals the cursor and never moves more
// than necessary.
func TestScrollToIsMinimal(t *testing.T) {
	v := Viewport{Cols: 10, Rows: 4, RowOffset: 0}

	// Walking the cursor down one row at a time scrolls one row at a time.
	wantOffsets := []int{0, 0, 0, 1, 2, 3}
	for cy, want := range wantOffsets {
		v.ScrollTo(cy)
		if v.RowOffset != want {
			t.Errorf("cy=%d: RowOffset = %d, want %d", cy, v.RowOffset, want)
		}
	}
}

func TestResizeKeepsOffset(t *testing.T) {
	v := Viewport{Cols: 80, Rows: 24, RowOffset: 12}
	v.Resize(40, 10)

	if v.Cols != 40 || v.Rows != 10 {
		t.Errorf("size = (%d,%d), want (40,10)", v.Cols, v.Rows)
	}
	if v.RowOffset != 12 {
		t.Errorf("RowOffset = %d, want 12", v.RowOffset)
	}
}
