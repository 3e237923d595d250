package term

import "github.com/gdamore/tcell/v2"

// eventByte translates a tcell key event into the single input byte the
// core state machine consumes. Keys outside the editor's byte vocabulary
// report ok=false and are dropped.
func eventByte(ev *tcell.EventKey) (byte, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return 0x1b, true
	case tcell.KeyEnter:
		return '\r', true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return 0x7f, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 0x20 && r < 0x7f && ev.Modifiers()&^tcell.ModShift == 0 {
			return byte(r), true
		}
	}
	return 0, false
}
