package repaint

import (
	"errors"
	"testing"
)

func TestColorToken(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"wall~16711680", "16711680"},
		{"16711680", "16711680"},
		{"wall~paint~255~SW 6258", "255"},
		{"wall~paint~255", "255"},
		{"wall~paint", "paint"},
		{"paint~789~z", "789~z"},
		{"wall~12~extra", "12~extra"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := ColorToken(tt.value); got != tt.want {
				t.Errorf("ColorToken(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseColorRequests(t *testing.T) {
	params := map[string]string{
		"SurfaceB": "x~paint~65280~Green",
		"SurfaceA": "x~255",
		"SurfaceC": "x~#ff0000",
		"SurfaceD": "x~teal",
		"i":        "rooms/kitchen",
		"w":        "640",
	}

	reqs := ParseColorRequests(params, "Surface")
	if len(reqs) != 4 {
		t.Fatalf("len(reqs) = %d, want 4", len(reqs))
	}

	want := []struct {
		surface string
		color   Pixel
		invalid bool
	}{
		{"SurfaceA", Pixel{A: 255, B: 255}, false},
		{"SurfaceB", Pixel{A: 255, G: 255}, false},
		{"SurfaceC", Pixel{A: 255, R: 255}, false},
		{"SurfaceD", Pixel{}, true},
	}
	for i, w := range want {
		r := reqs[i]
		if r.Surface != w.surface {
			t.Errorf("reqs[%d].Surface = %q, want %q", i, r.Surface, w.surface)
		}
		if w.invalid {
			if !errors.Is(r.Err, ErrInvalidColor) {
				t.Errorf("reqs[%d].Err = %v, want ErrInvalidColor", i, r.Err)
			}
			continue
		}
		if r.Err != nil {
			t.Errorf("reqs[%d].Err = %v", i, r.Err)
		}
		if r.Color != w.color {
			t.Errorf("reqs[%d].Color = %+v, want %+v", i, r.Color, w.color)
		}
	}
}

func TestParseColorRequestsHighBitsIgnored(t *testing.T) {
	// Only the low 24 bits carry color; alpha is always opaque.
	reqs := ParseColorRequests(map[string]string{"Wall": "x~-1"}, "Wall")
	if len(reqs) != 1 || reqs[0].Err != nil {
		t.Fatalf("ParseColorRequests() = %+v", reqs)
	}
	if got := reqs[0].Color; got != (Pixel{A: 255, R: 255, G: 255, B: 255}) {
		t.Errorf("Color = %+v, want opaque white", got)
	}
}
