package sdlhelper

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/leterax/go-gldemos/pkg/shape"
)

// StrokeTriangle draws the outline of t in c.
func StrokeTriangle(r *sdl.Renderer, t *shape.Triangle, c color.RGBA) error {
	if err := r.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}

	v := t.Vertices()
	for i := range v {
		a, b := v[i].Position, v[(i+1)%len(v)].Position
		if err := r.DrawLineF(a.X(), a.Y(), b.X(), b.Y()); err != nil {
			return err
		}
	}
	return nil
}

// FillTriangle draws t filled, interpolating the vertex colors.
func FillTriangle(r *sdl.Renderer, t *shape.Triangle) error {
	var vertices [3]sdl.Vertex
	for i, v := range t.Vertices() {
		vertices[i] = sdl.Vertex{
			Position: sdl.FPoint{X: v.Position.X(), Y: v.Position.Y()},
			Color:    sdl.Color{R: v.Color.R, G: v.Color.G, B: v.Color.B, A: v.Color.A},
		}
	}
	return r.RenderGeometry(nil, vertices[:], nil)
}
