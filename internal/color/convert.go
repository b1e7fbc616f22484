package color

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Luminance weights used to desaturate a photo. They match the values the
// paint preview has always used, not Rec. 709.
const (
	LumaRed   = 0.299
	LumaGreen = 0.587
	LumaBlue  = 0.114
)

// ErrInvalidToken is returned when a color token cannot be parsed.
var ErrInvalidToken = errors.New("color: invalid color token")

// Luminance returns round(0.299*r + 0.587*g + 0.114*b).
func Luminance(r, g, b uint8) uint8 {
	l := LumaRed*float64(r) + LumaGreen*float64(g) + LumaBlue*float64(b)
	return uint8(math.Floor(l + 0.5))
}

// FromStd converts any standard library color to straight-alpha ARGB.
func FromStd(c stdcolor.Color) ARGB {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return ARGB{A: n.A, R: n.R, G: n.G, B: n.B}
}

// NRGBA converts to the standard library's straight-alpha color.
func (c ARGB) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats the color channels as #rrggbb, ignoring alpha.
func (c ARGB) Hex() string {
	cf, _ := colorful.MakeColor(stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
	return cf.Hex()
}

// ParseToken parses a requested paint color.
//
// The canonical form is a signed 32-bit decimal integer holding packed RGB
// (for example "16777215" for white); only the low 24 bits are used and the
// result is always opaque. A "#rrggbb" or "#rgb" hex string is also accepted.
// Surrounding whitespace is not trimmed and makes the token invalid.
func ParseToken(token string) (ARGB, error) {
	if token == "" {
		return ARGB{}, fmt.Errorf("%w: empty", ErrInvalidToken)
	}
	if strings.HasPrefix(token, "#") {
		cf, err := colorful.Hex(token)
		if err != nil {
			return ARGB{}, fmt.Errorf("%w: %q: %w", ErrInvalidToken, token, err)
		}
		r, g, b := cf.RGB255()
		return ARGB{A: 0xFF, R: r, G: g, B: b}, nil
	}
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return ARGB{}, fmt.Errorf("%w: %q: %w", ErrInvalidToken, token, err)
	}
	return Opaque(uint32(int32(v))), nil
}
