// Package color provides the pixel representation shared by the repaint stages.
//
// Bulk buffers keep pixels packed as 32-bit ARGB words (alpha in the top byte,
// blue in the bottom byte). ARGB is the unpacked form used wherever a single
// pixel crosses a function boundary, so shift and mask arithmetic stays in
// this package.
package color

// Channel identifies one 8-bit lane of a packed ARGB word by its bit offset.
type Channel uint8

const (
	// ChannelBlue is the lowest byte of a packed pixel.
	ChannelBlue Channel = 0
	// ChannelGreen is the second byte of a packed pixel.
	ChannelGreen Channel = 8
	// ChannelRed is the third byte of a packed pixel.
	ChannelRed Channel = 16
	// ChannelAlpha is the top byte of a packed pixel.
	ChannelAlpha Channel = 24
)

// Of returns the channel value of packed pixel p.
func (c Channel) Of(p uint32) uint8 {
	return uint8(p >> c)
}

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelBlue:
		return "blue"
	case ChannelGreen:
		return "green"
	case ChannelRed:
		return "red"
	case ChannelAlpha:
		return "alpha"
	default:
		return "unknown"
	}
}

// ARGB is an 8-bit-per-channel color with straight (non-premultiplied) alpha.
type ARGB struct {
	A, R, G, B uint8
}

// Unpack splits a packed ARGB word into its channels.
func Unpack(p uint32) ARGB {
	return ARGB{
		A: ChannelAlpha.Of(p),
		R: ChannelRed.Of(p),
		G: ChannelGreen.Of(p),
		B: ChannelBlue.Of(p),
	}
}

// Pack joins the channels into a packed ARGB word.
func (c ARGB) Pack() uint32 {
	return uint32(c.A)<<ChannelAlpha |
		uint32(c.R)<<ChannelRed |
		uint32(c.G)<<ChannelGreen |
		uint32(c.B)<<ChannelBlue
}

// Opaque builds a fully opaque color from a packed 0xRRGGBB value.
// Bits above the low 24 are ignored.
func Opaque(rgb uint32) ARGB {
	c := Unpack(rgb)
	c.A = 0xFF
	return c
}

// Gray returns a gray pixel with the given alpha and intensity.
func Gray(alpha, level uint8) ARGB {
	return ARGB{A: alpha, R: level, G: level, B: level}
}

// RGB returns the low 24 bits of the packed form, without alpha.
func (c ARGB) RGB() uint32 {
	return c.Pack() & 0x00FFFFFF
}
