package openglhelper

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/leterax/go-gldemos/pkg/shape"
)

const floatSize = 4

// Mesh is a Prism uploaded to the GPU
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads p and configures one float attribute per layout entry,
// at locations 0, 1, 2, ...
func NewMesh(p *shape.Prism) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(p.Vertices(), StaticDraw)
	ebo := NewEBO(p.Indices(), StaticDraw)

	stride := p.Stride() * floatSize
	offset := 0
	for i, size := range p.Layout() {
		vao.SetVertexAttribPointer(uint32(i), size, gl.FLOAT, false, stride, offset)
		offset += int(size) * floatSize
	}

	// Unbind the VAO first so it keeps the EBO binding
	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(p.IndexCount()),
	}
}

// Draw renders the mesh with the currently bound shader
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
