package repaint

import (
	"fmt"

	"github.com/gogpu/repaint/internal/blend"
	"github.com/gogpu/repaint/internal/color"
)

// OverlayOpacity is the strength the paint color is blended at.
const OverlayOpacity = blend.FullStrength

// Composite overlays paint onto the mitigated luminance buffer and writes
// the result into dst.
//
// Pixels that are transparent in normalized lie outside the surface and
// leave dst untouched. Every other pixel of dst is replaced by the overlay
// of paint over the normalized gray, which keeps the photo's shading under
// the new color.
func Composite(paint Pixel, normalized []uint32, dst *Canvas) error {
	if len(normalized) != dst.Len() {
		return fmt.Errorf("%w: %d pixels for %dx%d canvas",
			ErrSizeMismatch, len(normalized), dst.Width(), dst.Height())
	}

	w := dst.Width()

	dst.mu.Lock()
	defer dst.mu.Unlock()
	for i, p := range normalized {
		under := color.Unpack(p)
		if under.A == 0 {
			continue
		}
		x, y := i%w, i/w
		dst.pix[y*w+x] = blend.Overlay(paint, under, OverlayOpacity).Pack()
	}
	return nil
}
