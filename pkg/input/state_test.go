package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyKeyEventSetsAndClears(t *testing.T) {
	var s State

	s.ApplyKeyEvent(KeyW, true, false)
	s.ApplyKeyEvent(KeyD, true, false)
	assert.True(t, s.Held().Has(Forward))
	assert.True(t, s.Held().Has(Right))
	assert.False(t, s.Held().Has(Left))
	assert.Equal(t, Forward|Right, s.Held())

	s.ApplyKeyEvent(KeyW, false, false)
	assert.Equal(t, Right, s.Held())
}

func TestRepeatedKeyDownIgnored(t *testing.T) {
	var s State

	s.ApplyKeyEvent(KeyA, true, true)
	assert.Equal(t, Movement(0), s.Held())

	s.ApplyKeyEvent(KeyA, true, false)
	s.ApplyKeyEvent(KeyA, true, true)
	assert.Equal(t, Left, s.Held())
}

func TestKeyUpIgnoresRepeatFlag(t *testing.T) {
	var s State
	s.ApplyKeyEvent(KeyS, true, false)
	s.ApplyKeyEvent(KeyS, false, true)
	assert.Equal(t, Movement(0), s.Held())
}

func TestUnknownKeysIgnored(t *testing.T) {
	var s State
	s.ApplyKeyEvent(KeyEscape, true, false)
	s.ApplyKeyEvent(KeyUnknown, true, false)
	s.ApplyKeyEvent(Key(99), true, false)
	assert.Equal(t, Movement(0), s.Held())
}

// The state after any sequence on one key matches the state after only the
// last effective event.
func TestLastEventWins(t *testing.T) {
	type ev struct{ down, repeat bool }
	sequences := [][]ev{
		{{true, false}, {false, false}},
		{{false, false}, {true, false}},
		{{true, false}, {true, true}, {true, true}},
		{{true, false}, {false, false}, {false, false}},
		{{false, false}, {false, true}, {true, false}, {false, false}, {true, false}},
	}

	for i, seq := range sequences {
		var s State
		for _, e := range seq {
			s.ApplyKeyEvent(KeyD, e.down, e.repeat)
		}

		var want State
		for j := len(seq) - 1; j >= 0; j-- {
			if seq[j].down && seq[j].repeat {
				continue
			}
			want.ApplyKeyEvent(KeyD, seq[j].down, seq[j].repeat)
			break
		}
		assert.Equal(t, want.Held(), s.Held(), "sequence %d", i)
	}
}

func TestEventConstructors(t *testing.T) {
	assert.Equal(t, Event{Kind: EventKey, Key: KeyW, Down: true, Repeat: true}, KeyDown(KeyW, true))
	assert.Equal(t, Event{Kind: EventKey, Key: KeyW}, KeyUp(KeyW))
	assert.Equal(t, EventQuit, Quit().Kind)
	assert.Equal(t, Event{Kind: EventMouseMotion, DX: 1.5, DY: -2}, MouseMotion(1.5, -2))
	assert.Equal(t, Event{Kind: EventResize, Width: 640, Height: 480}, Resize(640, 480))
}

func TestMovementAxes(t *testing.T) {
	for _, tc := range []struct {
		held           Movement
		right, forward float32
	}{
		{0, 0, 0},
		{Forward, 0, 1},
		{Back, 0, -1},
		{Left, -1, 0},
		{Right | Forward, 1, 1},
		{Left | Back, -1, -1},
		{Forward | Back | Left | Right, 0, 0},
	} {
		right, forward := tc.held.Axes()
		assert.Equal(t, tc.right, right, "held %04b", tc.held)
		assert.Equal(t, tc.forward, forward, "held %04b", tc.held)
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit(Quit()))
	assert.True(t, IsQuit(KeyDown(KeyEscape, false)))
	assert.False(t, IsQuit(KeyDown(KeyEscape, true)))
	assert.False(t, IsQuit(KeyUp(KeyEscape)))
	assert.False(t, IsQuit(KeyDown(KeyW, false)))
	assert.False(t, IsQuit(MouseMotion(1, 1)))
	assert.False(t, IsQuit(Resize(10, 10)))
}
