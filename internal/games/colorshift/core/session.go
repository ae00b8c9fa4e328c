package core

// Key is a key code delivered by the host. Only the four arrows mean anything.
type Key int

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowRight
	KeyArrowDown
	KeyArrowLeft
)

// Dir returns the direction bound to an arrow key.
func (k Key) Dir() (Dir, bool) {
	switch k {
	case KeyArrowUp:
		return DirTop, true
	case KeyArrowRight:
		return DirRight, true
	case KeyArrowDown:
		return DirBottom, true
	case KeyArrowLeft:
		return DirLeft, true
	default:
		return 0, false
	}
}

// Session owns the one live selection of a game and routes touch and key
// events to the selector and mover. It is not safe for concurrent use; the
// host delivers one event at a time.
type Session struct {
	surface   Surface
	width     int
	selection Selection
}

// NewSession creates a session drawing borders of the given width on surface.
func NewSession(surface Surface, borderWidth int) *Session {
	return &Session{
		surface: surface,
		width:   borderWidth,
	}
}

// Touch replaces the selection with the region containing c.
// On error the previous selection is kept.
func (s *Session) Touch(c Coord) error {
	sel, err := Select(s.surface, c, s.width)
	if err != nil {
		return err
	}
	s.selection = sel
	return nil
}

// KeyDown handles a key press. Keys other than the arrows are ignored.
func (s *Session) KeyDown(k Key) (bool, error) {
	d, ok := k.Dir()
	if !ok {
		return false, nil
	}
	return s.Move(d)
}

// Move shifts the current selection one cell along d.
// With nothing selected it does nothing.
func (s *Session) Move(d Dir) (bool, error) {
	if len(s.selection) == 0 {
		return false, nil
	}
	next, moved, err := Move(s.surface, s.selection, d, s.width)
	if err != nil {
		return false, err
	}
	s.selection = next
	return moved, nil
}

// Selection returns a copy of the current selection.
func (s *Session) Selection() Selection {
	return s.selection.Clone()
}

// HasSelection reports whether a region is selected.
func (s *Session) HasSelection() bool {
	return len(s.selection) > 0
}
