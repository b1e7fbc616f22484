package repaint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/repaint/internal/color"
)

const (
	// SurfaceDataDelimiter separates the fields of a surface parameter value.
	SurfaceDataDelimiter = "~"

	// PaintMarker opens a value whose color is carried in its second field.
	PaintMarker = "paint"

	// DefaultSurfacePrefix is the naming prefix used when a project has no
	// surfaces.
	DefaultSurfacePrefix = "Surface"

	namingPrefixLen = 7
)

// ColorRequest binds a surface to the paint color requested for it.
type ColorRequest struct {
	// Surface is the surface name, taken from the parameter key.
	Surface string

	// Token is the color token extracted from the parameter value.
	Token string

	// Color is the parsed token. It is only meaningful when Err is nil.
	Color Pixel

	// Err is non-nil when Token could not be parsed; it wraps ErrInvalidColor.
	Err error
}

// ParseColorRequests extracts one ColorRequest per parameter whose key starts
// with prefix. Requests are sorted by surface name.
//
// Values have the form "<field>~<color>" or "<field>~paint~<color>~<rest>";
// see ColorToken.
func ParseColorRequests(params map[string]string, prefix string) []ColorRequest {
	var reqs []ColorRequest
	for key, value := range params {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		req := ColorRequest{Surface: key, Token: ColorToken(value)}
		c, err := color.ParseToken(req.Token)
		if err != nil {
			req.Err = fmt.Errorf("%w: surface %q: %v", ErrInvalidColor, key, err)
		} else {
			req.Color = c
		}
		reqs = append(reqs, req)
	}

	slices.SortFunc(reqs, func(a, b ColorRequest) int {
		return strings.Compare(a.Surface, b.Surface)
	})
	return reqs
}

// ColorToken returns the color field of a surface parameter value.
//
// The value is cut after its first delimiter (kept whole when there is none).
// If what remains starts with PaintMarker, the token is the field after the
// next delimiter, up to the delimiter following it or the end of the value.
func ColorToken(value string) string {
	_, rest, found := strings.Cut(value, SurfaceDataDelimiter)
	if !found {
		rest = value
	}
	if !strings.HasPrefix(rest, PaintMarker) {
		return rest
	}

	if _, after, ok := strings.Cut(rest, SurfaceDataDelimiter); ok {
		rest = after
	}
	token, _, _ := strings.Cut(rest, SurfaceDataDelimiter)
	return token
}
