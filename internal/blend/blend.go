// Package blend implements the overlay blend used to tint a shaded surface.
//
// Overlay multiplies over dark backdrops and screens over light ones, so a
// flat paint color picks up the light and shadow of the grayscale surface it
// is blended onto.
package blend

import "github.com/gogpu/repaint/internal/color"

// FullStrength blends at full opacity.
const FullStrength float32 = 1

// OverlayChannel blends one channel of src over backdrop dst:
//
//	dst <  128: (dst * src) >> 7
//	dst >= 128: 255 - (((255 - dst) * (255 - src)) >> 7)
func OverlayChannel(dst, src uint8) uint8 {
	d, s := int(dst), int(src)
	if d < 128 {
		return uint8(d * s >> 7)
	}
	return uint8(255 - ((255 - d) * (255 - s) >> 7))
}

// Overlay blends src over dst per channel and mixes the result back into dst
// at the given opacity. The blended alpha is the destination's alpha.
func Overlay(src, dst color.ARGB, opacity float32) color.ARGB {
	result := color.ARGB{
		A: dst.A,
		R: OverlayChannel(dst.R, src.R),
		G: OverlayChannel(dst.G, src.G),
		B: OverlayChannel(dst.B, src.B),
	}
	return Mix(dst, result, opacity)
}

// Mix moves each channel of dst toward result by opacity.
func Mix(dst, result color.ARGB, opacity float32) color.ARGB {
	return color.ARGB{
		A: lerp(dst.A, result.A, opacity),
		R: lerp(dst.R, result.R, opacity),
		G: lerp(dst.G, result.G, opacity),
		B: lerp(dst.B, result.B, opacity),
	}
}
