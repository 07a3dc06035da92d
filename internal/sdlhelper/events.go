package sdlhelper

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/leterax/go-gldemos/pkg/input"
)

var keyMap = map[sdl.Keycode]input.Key{
	sdl.K_w:      input.KeyW,
	sdl.K_a:      input.KeyA,
	sdl.K_s:      input.KeyS,
	sdl.K_d:      input.KeyD,
	sdl.K_ESCAPE: input.KeyEscape,
}

// TranslateEvent converts the SDL events the demos care about. ok is false
// for everything else.
func TranslateEvent(ev sdl.Event) (e input.Event, ok bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return input.Quit(), true
	case *sdl.KeyboardEvent:
		key, known := keyMap[ev.Keysym.Sym]
		if !known {
			key = input.KeyUnknown
		}
		if ev.State == sdl.RELEASED {
			return input.KeyUp(key), true
		}
		return input.KeyDown(key, ev.Repeat != 0), true
	case *sdl.MouseMotionEvent:
		return input.MouseMotion(float64(ev.XRel), float64(ev.YRel)), true
	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return input.Resize(int(ev.Data1), int(ev.Data2)), true
		}
	}
	return input.Event{}, false
}
