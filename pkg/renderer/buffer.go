package renderer

import "image"

// PixelBuffer holds the final image as 8-bit RGB triples in row-major order.
// Workers write disjoint regions, so the buffer needs no synchronization.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // 3 bytes per pixel, row-major from the top-left
}

// NewPixelBuffer creates a zeroed buffer of the given dimensions
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// SetRGB writes one pixel. (0, 0) is the top-left corner.
func (b *PixelBuffer) SetRGB(x, y int, r, g, bl uint8) {
	idx := (y*b.Width + x) * 3
	b.Pix[idx] = r
	b.Pix[idx+1] = g
	b.Pix[idx+2] = bl
}

// RGB returns one pixel's channels
func (b *PixelBuffer) RGB(x, y int) (r, g, bl uint8) {
	idx := (y*b.Width + x) * 3
	return b.Pix[idx], b.Pix[idx+1], b.Pix[idx+2]
}

// ToImage converts the buffer to an image.RGBA for encoding
func (b *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			src := (y*b.Width + x) * 3
			dst := y*img.Stride + x*4
			img.Pix[dst] = b.Pix[src]
			img.Pix[dst+1] = b.Pix[src+1]
			img.Pix[dst+2] = b.Pix[src+2]
			img.Pix[dst+3] = 255
		}
	}
	return img
}
