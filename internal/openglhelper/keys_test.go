package openglhelper

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/leterax/go-gldemos/pkg/input"
)

func TestKeyEvent(t *testing.T) {
	assert.Equal(t, input.KeyDown(input.KeyW, false), keyEvent(glfw.KeyW, glfw.Press))
	assert.Equal(t, input.KeyDown(input.KeyA, true), keyEvent(glfw.KeyA, glfw.Repeat))
	assert.Equal(t, input.KeyUp(input.KeyS), keyEvent(glfw.KeyS, glfw.Release))
	assert.Equal(t, input.KeyDown(input.KeyEscape, false), keyEvent(glfw.KeyEscape, glfw.Press))
	assert.Equal(t, input.KeyDown(input.KeyUnknown, false), keyEvent(glfw.KeySpace, glfw.Press))
}

func TestGLErrorMessage(t *testing.T) {
	err := &GLError{Op: "draw", Codes: []uint32{0x0502, 0x9999}}
	assert.Equal(t, "draw: gl errors [INVALID_OPERATION 0x9999]", err.Error())
}
