// Package input holds the driver's directional input state and the key
// tables that feed it.
package input

// Direction is one of the four driving controls.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// State is the set of controls currently held. Left and Right may both be
// held; the camera controller decides what that means.
type State struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Press marks a direction as held.
func (s *State) Press(d Direction) {
	s.set(d, true)
}

// Release marks a direction as no longer held.
func (s *State) Release(d Direction) {
	s.set(d, false)
}

// Held reports whether a direction is held.
func (s State) Held(d Direction) bool {
	switch d {
	case Up:
		return s.Up
	case Down:
		return s.Down
	case Left:
		return s.Left
	case Right:
		return s.Right
	}
	return false
}

func (s *State) set(d Direction, held bool) {
	switch d {
	case Up:
		s.Up = held
	case Down:
		s.Down = held
	case Left:
		s.Left = held
	case Right:
		s.Right = held
	}
}

// KeyMap maps a key identity to the direction it controls. Several keys may
// map to the same direction.
type KeyMap[K comparable] map[K]Direction

// KeyDown applies a key-down event. Keys not in the map are ignored.
func (m KeyMap[K]) KeyDown(s *State, key K) bool {
	d, ok := m[key]
	if ok {
		s.Press(d)
	}
	return ok
}

// KeyUp applies a key-up event. Keys not in the map are ignored.
func (m KeyMap[K]) KeyUp(s *State, key K) bool {
	d, ok := m[key]
	if ok {
		s.Release(d)
	}
	return ok
}

// Poll rebuilds the state from a held-key predicate, for hosts that expose
// key state rather than key events.
func (m KeyMap[K]) Poll(pressed func(K) bool) State {
	var s State
	for key, d := range m {
		if pressed(key) {
			s.Press(d)
		}
	}
	return s
}
