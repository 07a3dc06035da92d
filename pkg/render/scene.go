package render

import (
	"embed"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-gldemos/pkg/game"
	"github.com/leterax/go-gldemos/pkg/shape"
)

//go:embed shaders/*
var shaderFS embed.FS

// Program selects one of the embedded shader pairs.
type Program int

const (
	// ProgramColor expects position (3) and color (3).
	ProgramColor Program = iota
	// ProgramTexture expects position (3) and texture coordinates (2).
	ProgramTexture
)

func (p Program) files() (vertex, fragment string) {
	if p == ProgramTexture {
		return "shaders/texture.vert", "shaders/texture.frag"
	}
	return "shaders/color.vert", "shaders/color.frag"
}

// Scene is what a demo draws each frame. A scene without a Prism only
// clears the screen.
type Scene struct {
	Prism   *shape.Prism
	Program Program
	Texture image.Image

	// Model places the prism at a time in seconds. Nil means identity.
	Model game.ModelFunc

	// FlyCamera captures the mouse and uses the camera's view and
	// projection. Otherwise both are identity.
	FlyCamera bool

	ClearColor mgl32.Vec4
}
