package repaint

import (
	"errors"
	"testing"

	"github.com/gogpu/repaint/internal/color"
)

func TestComposite(t *testing.T) {
	background := Pixel{A: 255, R: 1, G: 2, B: 3}
	c := NewCanvas(2, 2)
	for y := range 2 {
		for x := range 2 {
			setPixel(c, x, y, background)
		}
	}

	normalized := []uint32{
		color.Gray(0, 100).Pack(),
		color.Gray(255, 100).Pack(),
		color.Gray(255, 200).Pack(),
		color.Gray(0, 200).Pack(),
	}
	paint := Pixel{A: 255, R: 200, G: 50, B: 0}

	if err := Composite(paint, normalized, c); err != nil {
		t.Fatalf("Composite() error = %v", err)
	}

	tests := []struct {
		x, y int
		want Pixel
	}{
		{0, 0, background},
		{1, 0, Pixel{A: 255, R: 156, G: 39, B: 0}},
		{0, 1, Pixel{A: 255, R: 232, G: 167, B: 146}},
		{1, 1, background},
	}
	for _, tt := range tests {
		if got := c.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCompositeKeepsMaskAlpha(t *testing.T) {
	c := grayCanvas(1, 1, 0)
	if err := Composite(Pixel{A: 255, R: 255, G: 255, B: 255}, []uint32{color.Gray(77, 128).Pack()}, c); err != nil {
		t.Fatalf("Composite() error = %v", err)
	}
	if got := c.Pixel(0, 0).A; got != 77 {
		t.Errorf("alpha = %d, want 77", got)
	}
}

func TestCompositeAllTransparentLeavesCanvas(t *testing.T) {
	c := gradientCanvas(4, 4)
	before := c.Pixels()

	normalized := make([]uint32, c.Len())
	if err := Composite(Pixel{A: 255, R: 255}, normalized, c); err != nil {
		t.Fatalf("Composite() error = %v", err)
	}

	for i, p := range c.Pixels() {
		if p != before[i] {
			t.Fatalf("pixel %d changed: %#08x -> %#08x", i, before[i], p)
		}
	}
}

func TestCompositeSizeMismatch(t *testing.T) {
	err := Composite(Pixel{}, make([]uint32, 3), NewCanvas(2, 2))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Composite() error = %v, want ErrSizeMismatch", err)
	}
}
