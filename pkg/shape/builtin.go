package shape

// ColoredTriangle returns a single triangle with position (3) and color (3).
func ColoredTriangle() *Prism {
	vertices := []float32{
		-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // Bottom-left, red
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // Bottom-right, green
		0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // Top, blue
	}
	indices := []uint32{0, 1, 2}

	return MustPrism(vertices, indices, 3, 3)
}

// ColoredCube returns a unit cube with position (3) and color (3), one color
// per face.
func ColoredCube() *Prism {
	vertices := []float32{
		// Front face
		-0.5, -0.5, 0.5, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0,
		-0.5, 0.5, 0.5, 1.0, 0.0, 0.0,

		// Back face
		-0.5, -0.5, -0.5, 0.0, 1.0, 0.0,
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
		0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
		0.5, -0.5, -0.5, 0.0, 1.0, 0.0,

		// Top face
		-0.5, 0.5, -0.5, 0.0, 0.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
		0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
		0.5, 0.5, -0.5, 0.0, 0.0, 1.0,

		// Bottom face
		-0.5, -0.5, -0.5, 1.0, 1.0, 0.0,
		0.5, -0.5, -0.5, 1.0, 1.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 1.0, 0.0,
		-0.5, -0.5, 0.5, 1.0, 1.0, 0.0,

		// Right face
		0.5, -0.5, -0.5, 1.0, 0.0, 1.0,
		0.5, 0.5, -0.5, 1.0, 0.0, 1.0,
		0.5, 0.5, 0.5, 1.0, 0.0, 1.0,
		0.5, -0.5, 0.5, 1.0, 0.0, 1.0,

		// Left face
		-0.5, -0.5, -0.5, 0.0, 1.0, 1.0,
		-0.5, -0.5, 0.5, 0.0, 1.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 1.0, 1.0,
		-0.5, 0.5, -0.5, 0.0, 1.0, 1.0,
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0, // Front face
		4, 5, 6, 6, 7, 4, // Back face
		8, 9, 10, 10, 11, 8, // Top face
		12, 13, 14, 14, 15, 12, // Bottom face
		16, 17, 18, 18, 19, 16, // Right face
		20, 21, 22, 22, 23, 20, // Left face
	}

	return MustPrism(vertices, indices, 3, 3)
}

// TexturedQuad returns a unit quad in the XY plane with position (3) and
// texture coordinates (2).
func TexturedQuad() *Prism {
	vertices := []float32{
		-0.5, -0.5, 0.0, 0.0, 0.0, // Bottom-left
		0.5, -0.5, 0.0, 1.0, 0.0, // Bottom-right
		0.5, 0.5, 0.0, 1.0, 1.0, // Top-right
		-0.5, 0.5, 0.0, 0.0, 1.0, // Top-left
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}

	return MustPrism(vertices, indices, 3, 2)
}
