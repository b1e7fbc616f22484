package repaint

import (
	"fmt"
	"image"

	"github.com/gogpu/repaint/internal/codec"
	imgutil "github.com/gogpu/repaint/internal/image"
)

// Mask is a per-pixel opacity buffer marking which canvas pixels belong to a
// surface. Values are 0 (outside) or 255 (inside) for decoded masks.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// DecodeMask decodes an encoded surface mask authored at width x height.
//
// Every nonzero decoded byte marks membership. The bytes are laid out one
// position behind the raster they describe and read back four per pixel,
// with membership taken from the third byte of each group; decoded data
// shorter than the raster leaves the remaining pixels outside the region.
func DecodeMask(encoded string, width, height int) (*Mask, error) {
	raw, truncated, err := codec.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMaskCorrupt, err)
	}
	if truncated {
		Logger().Debug("mask stream ended without final block", "bytes", len(raw))
	}
	return binarize(raw, width, height), nil
}

// binarize expands decoded mask bytes into an opacity mask.
func binarize(raw []byte, width, height int) *Mask {
	m := NewMask(width, height)

	buf := make([]byte, max(len(raw), len(m.data)*4)+1)
	for k, v := range raw {
		if v != 0 {
			buf[k+1] = 0xFF
		}
	}

	// Pixel bytes are A,B,G,R; membership is the third.
	for p := range m.data {
		m.data[p] = buf[p*4+2]
	}
	return m
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Len returns the number of pixels in the mask.
func (m *Mask) Len() int { return len(m.data) }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Coverage returns the number of pixels with nonzero opacity.
func (m *Mask) Coverage() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Alpha returns the mask as an image.Alpha sharing no memory with m.
func (m *Mask) Alpha() *image.Alpha {
	img := image.NewAlpha(m.Bounds())
	copy(img.Pix, m.data)
	return img
}

// Resample returns the mask scaled to exactly width x height with nearest
// neighbor sampling. The mask itself is returned when the size already
// matches.
func (m *Mask) Resample(width, height int) *Mask {
	if m.width == width && m.height == height {
		return m
	}
	if width <= 0 || height <= 0 {
		return NewMask(width, height)
	}
	if m.width == 0 || m.height == 0 {
		return NewMask(width, height)
	}
	scaled := imgutil.ResampleAlpha(m.Alpha(), width, height)
	return &Mask{width: width, height: height, data: scaled.Pix}
}
