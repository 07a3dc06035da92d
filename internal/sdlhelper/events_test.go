package sdlhelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/leterax/go-gldemos/pkg/input"
)

func TestTranslateEvent(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   sdl.Event
		want input.Event
		ok   bool
	}{
		{"quit", &sdl.QuitEvent{}, input.Quit(), true},
		{"key down", &sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_w}}, input.KeyDown(input.KeyW, false), true},
		{"key repeat", &sdl.KeyboardEvent{State: sdl.PRESSED, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_d}}, input.KeyDown(input.KeyD, true), true},
		{"key up", &sdl.KeyboardEvent{State: sdl.RELEASED, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, input.KeyUp(input.KeyEscape), true},
		{"unknown key", &sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_q}}, input.KeyDown(input.KeyUnknown, false), true},
		{"mouse", &sdl.MouseMotionEvent{XRel: 4, YRel: -2}, input.MouseMotion(4, -2), true},
		{"resize", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 1024, Data2: 768}, input.Resize(1024, 768), true},
		{"other window event", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_LOST}, input.Event{}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := TranslateEvent(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
