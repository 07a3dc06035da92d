package shape

import (
	"image"
	"image/color"
)

// Checkerboard returns a size×size image of alternating cells, each cell
// pixels wide, starting with a in the top-left corner.
func Checkerboard(size, cell int, a, b color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if cell <= 0 {
		cell = 1
	}

	for y := range size {
		for x := range size {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	return img
}
