// Package shape holds the CPU-side geometry the demos draw: a 2D triangle
// helper and Prism, an owning vertex/index container.
package shape

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex2D is a screen-space vertex with a color.
type Vertex2D struct {
	Position mgl32.Vec2
	Color    color.RGBA
}

// Triangle is three screen-space vertices that can be moved together.
type Triangle struct {
	v [3]Vertex2D
}

// NewTriangle creates a triangle from three vertices.
func NewTriangle(v1, v2, v3 Vertex2D) *Triangle {
	return &Triangle{v: [3]Vertex2D{v1, v2, v3}}
}

// Translate moves every vertex by (xoff, yoff).
func (t *Triangle) Translate(xoff, yoff float32) {
	offset := mgl32.Vec2{xoff, yoff}
	for i := range t.v {
		t.v[i].Position = t.v[i].Position.Add(offset)
	}
}

// Vertices returns a copy of the vertices.
func (t *Triangle) Vertices() [3]Vertex2D {
	return t.v
}
