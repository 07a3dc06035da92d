package shape

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrLayout is returned for an empty layout or a non-positive attribute size.
	ErrLayout = errors.New("invalid vertex layout")
	// ErrVertexData is returned when the vertex data does not fit the layout.
	ErrVertexData = errors.New("vertex data does not match layout")
	// ErrIndexRange is returned when an index points past the last vertex.
	ErrIndexRange = errors.New("index out of range")
)

// Prism is indexed vertex data together with its attribute layout. It owns
// copies of both slices, so counts always match the data.
type Prism struct {
	vertices []float32
	indices  []uint32
	layout   []int32
	stride   int32
}

// NewPrism copies vertices and indices into a new Prism. layout lists the
// float count of each interleaved attribute, in attribute-location order.
func NewPrism(vertices []float32, indices []uint32, layout ...int32) (*Prism, error) {
	if len(layout) == 0 {
		return nil, ErrLayout
	}

	var stride int32
	for i, size := range layout {
		if size <= 0 {
			return nil, fmt.Errorf("%w: attribute %d has size %d", ErrLayout, i, size)
		}
		stride += size
	}

	if len(vertices) == 0 || len(vertices)%int(stride) != 0 {
		return nil, fmt.Errorf("%w: %d floats with stride %d", ErrVertexData, len(vertices), stride)
	}

	vertexCount := len(vertices) / int(stride)
	for i, idx := range indices {
		if int(idx) >= vertexCount {
			return nil, fmt.Errorf("%w: indices[%d]=%d with %d vertices", ErrIndexRange, i, idx, vertexCount)
		}
	}

	return &Prism{
		vertices: slices.Clone(vertices),
		indices:  slices.Clone(indices),
		layout:   slices.Clone(layout),
		stride:   stride,
	}, nil
}

// MustPrism is like NewPrism but panics on error. It is meant for built-in
// geometry.
func MustPrism(vertices []float32, indices []uint32, layout ...int32) *Prism {
	p, err := NewPrism(vertices, indices, layout...)
	if err != nil {
		panic(err)
	}
	return p
}

// Vertices returns the interleaved vertex data. Callers must not modify it.
func (p *Prism) Vertices() []float32 {
	return p.vertices
}

// VertexCount returns the number of vertices.
func (p *Prism) VertexCount() int {
	return len(p.vertices) / int(p.stride)
}

// Indices returns the index data. Callers must not modify it.
func (p *Prism) Indices() []uint32 {
	return p.indices
}

// IndexCount returns the number of indices.
func (p *Prism) IndexCount() int {
	return len(p.indices)
}

// Layout returns a copy of the attribute sizes.
func (p *Prism) Layout() []int32 {
	return slices.Clone(p.layout)
}

// Stride returns the number of floats per vertex.
func (p *Prism) Stride() int32 {
	return p.stride
}
