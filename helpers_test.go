package repaint

import (
	"testing"

	"github.com/gogpu/repaint/internal/codec"
)

// Test helper functions shared across repaint tests.

// encodeMask builds encoded mask data for a width x height mask with the
// pixels reported by inside set.
func encodeMask(t *testing.T, width, height int, inside func(x, y int) bool) string {
	t.Helper()
	raw := make([]byte, width*height*4)
	for y := range height {
		for x := range width {
			if inside(x, y) {
				// Membership is read from the third byte of each pixel,
				// one position after the decoded byte.
				raw[(y*width+x)*4+1] = 1
			}
		}
	}
	enc, err := codec.Encode(raw)
	if err != nil {
		t.Fatalf("codec.Encode() error = %v", err)
	}
	return enc
}

// setPixel writes one canvas sample.
func setPixel(c *Canvas, x, y int, p Pixel) {
	c.pix[y*c.width+x] = p.Pack()
}

// setMask writes one mask value.
func setMask(m *Mask, x, y int, v uint8) {
	m.data[y*m.width+x] = v
}

// fillMask sets every mask value to v.
func fillMask(m *Mask, v uint8) {
	for i := range m.data {
		m.data[i] = v
	}
}

func everywhere(int, int) bool { return true }

func nowhere(int, int) bool { return false }

// grayCanvas returns an opaque canvas filled with one gray level.
func grayCanvas(width, height int, level uint8) *Canvas {
	c := NewCanvas(width, height)
	for i := range c.pix {
		c.pix[i] = Pixel{A: 255, R: level, G: level, B: level}.Pack()
	}
	return c
}

// gradientCanvas returns an opaque canvas whose gray level grows with x+y.
func gradientCanvas(width, height int) *Canvas {
	c := NewCanvas(width, height)
	for y := range height {
		for x := range width {
			v := uint8((x + y) * 255 / max(width+height-2, 1))
			c.pix[y*width+x] = Pixel{A: 255, R: v, G: v, B: v}.Pack()
		}
	}
	return c
}
