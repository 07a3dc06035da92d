package input

// Movement is a bitmask of held directional keys.
type Movement uint8

// Directional bits
const (
	Forward Movement = 1 << iota
	Left
	Back
	Right
)

// Has reports whether every bit in m is set.
func (h Movement) Has(m Movement) bool {
	return h&m == m
}

// Axes returns the held directions as unit steps: right is +1 for Right and
// -1 for Left, forward is +1 for Forward and -1 for Back. Opposing keys
// cancel to 0.
func (h Movement) Axes() (right, forward float32) {
	if h.Has(Right) {
		right++
	}
	if h.Has(Left) {
		right--
	}
	if h.Has(Forward) {
		forward++
	}
	if h.Has(Back) {
		forward--
	}
	return right, forward
}

// State tracks which movement keys are currently held.
//
// It is only changed by explicit key events; losing window focus does not
// release keys.
type State struct {
	held Movement
}

// directionFor maps a key to its movement bit, or 0 for keys that do not move.
func directionFor(key Key) Movement {
	switch key {
	case KeyW:
		return Forward
	case KeyA:
		return Left
	case KeyS:
		return Back
	case KeyD:
		return Right
	}
	return 0
}

// ApplyKeyEvent updates the held set. Auto-repeated key-downs are ignored and
// a key-up always clears the key.
func (s *State) ApplyKeyEvent(key Key, isDown, isRepeat bool) {
	bit := directionFor(key)
	if bit == 0 {
		return
	}

	if !isDown {
		s.held &^= bit
		return
	}
	if isRepeat {
		return
	}
	s.held |= bit
}

// Held returns the current bitmask.
func (s *State) Held() Movement {
	return s.held
}
