package repaint

import (
	"image"
	stdcolor "image/color"
	"sync"

	"github.com/gogpu/repaint/internal/color"
)

// Pixel is a single unpacked canvas sample.
type Pixel = color.ARGB

// Canvas is the photo being repainted: a width*height grid of packed ARGB
// samples stored row-major.
//
// Thread safety: Canvas is safe for concurrent use. Mask groups running on
// different workers write into the same canvas; writes are serialized.
type Canvas struct {
	mu     sync.RWMutex
	width  int
	height int
	pix    []uint32
}

// NewCanvas creates a fully transparent canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// CanvasFromImage copies img into a new canvas.
func CanvasFromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := NewCanvas(b.Dx(), b.Dy())

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range c.height {
			for x := range c.width {
				s := nrgba.Pix[nrgba.PixOffset(x+b.Min.X, y+b.Min.Y):]
				c.pix[y*c.width+x] = Pixel{A: s[3], R: s[0], G: s[1], B: s[2]}.Pack()
			}
		}
		return c
	}

	for y := range c.height {
		for x := range c.width {
			c.pix[y*c.width+x] = color.FromStd(img.At(x+b.Min.X, y+b.Min.Y)).Pack()
		}
	}
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas.
func (c *Canvas) Height() int { return c.height }

// Len returns the number of pixels in the canvas.
func (c *Canvas) Len() int { return len(c.pix) }

// Pixels returns a copy of the packed ARGB samples.
func (c *Canvas) Pixels() []uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]uint32, len(c.pix))
	copy(out, c.pix)
	return out
}

// Pixel returns the sample at (x, y).
// Returns the zero Pixel for coordinates outside the canvas.
func (c *Canvas) Pixel(x, y int) Pixel {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Pixel{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return color.Unpack(c.pix[y*c.width+x])
}

// Clone creates a copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	return &Canvas{
		width:  c.width,
		height: c.height,
		pix:    c.Pixels(),
	}
}

// ToImage converts the canvas to an image.NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))

	c.mu.RLock()
	defer c.mu.RUnlock()
	for i, p := range c.pix {
		px := color.Unpack(p)
		o := i * 4
		img.Pix[o+0] = px.R
		img.Pix[o+1] = px.G
		img.Pix[o+2] = px.B
		img.Pix[o+3] = px.A
	}
	return img
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) stdcolor.Color {
	return c.Pixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() stdcolor.Model {
	return stdcolor.NRGBAModel
}
