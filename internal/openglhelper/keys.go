package openglhelper

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-gldemos/pkg/input"
)

var keyMap = map[glfw.Key]input.Key{
	glfw.KeyW:      input.KeyW,
	glfw.KeyA:      input.KeyA,
	glfw.KeyS:      input.KeyS,
	glfw.KeyD:      input.KeyD,
	glfw.KeyEscape: input.KeyEscape,
}

// keyEvent converts a GLFW key callback into an input event. GLFW reports
// auto-repeat as its own action.
func keyEvent(key glfw.Key, action glfw.Action) input.Event {
	k, ok := keyMap[key]
	if !ok {
		k = input.KeyUnknown
	}

	switch action {
	case glfw.Release:
		return input.KeyUp(k)
	case glfw.Repeat:
		return input.KeyDown(k, true)
	default:
		return input.KeyDown(k, false)
	}
}
