package filter

import "github.com/gogpu/repaint/internal/color"

// ColorMatrix is a 4x5 color transformation matrix in row-major order:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channels are in [0, 255] during the transform. Each result is truncated
// toward zero and reduced to its low 8 bits, so out-of-range values wrap
// rather than saturate.
type ColorMatrix [20]float32

// Identity returns a matrix that leaves every pixel unchanged.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0, // R
		0, 1, 0, 0, 0, // G
		0, 0, 1, 0, 0, // B
		0, 0, 0, 1, 0, // A
	}
}

// NewScaleOffset returns a matrix computing c*scale + offset on R, G and B.
// Alpha passes through.
func NewScaleOffset(scale, offset float32) ColorMatrix {
	return ColorMatrix{
		scale, 0, 0, 0, offset,
		0, scale, 0, 0, offset,
		0, 0, scale, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Apply transforms every pixel of src into a newly allocated buffer.
// Pixels with zero alpha are copied unchanged.
func (m *ColorMatrix) Apply(src []uint32) []uint32 {
	dst := make([]uint32, len(src))
	for i, p := range src {
		dst[i] = m.ApplyPixel(p)
	}
	return dst
}

// ApplyPixel transforms a single packed ARGB pixel.
func (m *ColorMatrix) ApplyPixel(p uint32) uint32 {
	c := color.Unpack(p)
	if c.A == 0 {
		return p
	}

	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)
	a := float64(c.A)

	return color.ARGB{
		R: m.row(0, r, g, b, a),
		G: m.row(1, r, g, b, a),
		B: m.row(2, r, g, b, a),
		A: m.row(3, r, g, b, a),
	}.Pack()
}

// row evaluates one matrix row and wraps the truncated result to a byte.
func (m *ColorMatrix) row(n int, r, g, b, a float64) uint8 {
	k := m[n*5 : n*5+5]
	v := float64(k[0])*r + float64(k[1])*g + float64(k[2])*b + float64(k[3])*a + float64(k[4])
	return uint8(int(v) & 0xFF)
}
