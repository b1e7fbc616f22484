package repaint

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"testing"

	"github.com/klauspost/compress/zlib"
)

func TestNewMask(t *testing.T) {
	mask := NewMask(100, 100)
	if mask.Width() != 100 || mask.Height() != 100 {
		t.Errorf("expected 100x100, got %dx%d", mask.Width(), mask.Height())
	}
	if mask.At(50, 50) != 0 {
		t.Errorf("expected 0, got %d", mask.At(50, 50))
	}
	if mask.Coverage() != 0 {
		t.Errorf("Coverage() = %d, want 0", mask.Coverage())
	}
}

func TestMaskCoverage(t *testing.T) {
	mask := NewMask(10, 10)
	fillMask(mask, 255)
	if mask.Coverage() != 100 {
		t.Errorf("Coverage() = %d, want 100", mask.Coverage())
	}

	setMask(mask, 0, 0, 0)
	if mask.Coverage() != 99 {
		t.Errorf("Coverage() = %d, want 99", mask.Coverage())
	}
}

func TestMaskClone(t *testing.T) {
	mask := NewMask(100, 100)
	fillMask(mask, 200)

	clone := mask.Clone()
	fillMask(mask, 0)

	if clone.At(50, 50) != 200 {
		t.Errorf("clone should not be affected, expected 200, got %d", clone.At(50, 50))
	}
}

func TestMaskBounds(t *testing.T) {
	mask := NewMask(100, 100)
	fillMask(mask, 255)

	for _, pt := range [][2]int{{-1, 50}, {100, 50}, {50, -1}, {50, 100}} {
		if mask.At(pt[0], pt[1]) != 0 {
			t.Errorf("At(%d, %d) should be 0 out of bounds", pt[0], pt[1])
		}
	}
	if mask.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Errorf("Bounds() = %v", mask.Bounds())
	}
}

func TestBinarize(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []uint8
	}{
		{
			name: "membership from second decoded byte",
			raw:  []byte{0, 1, 0, 0, 0, 9, 0, 0},
			want: []uint8{255, 255},
		},
		{
			name: "other bytes ignored",
			raw:  []byte{7, 0, 7, 7, 7, 0, 7, 7},
			want: []uint8{0, 0},
		},
		{
			name: "short data leaves tail outside",
			raw:  []byte{0, 1},
			want: []uint8{255, 0},
		},
		{
			name: "long data truncated to raster",
			raw:  []byte{0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0},
			want: []uint8{0, 255},
		},
		{
			name: "empty data",
			raw:  nil,
			want: []uint8{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := binarize(tt.raw, 2, 1)
			for i, want := range tt.want {
				if m.data[i] != want {
					t.Errorf("pixel %d = %d, want %d", i, m.data[i], want)
				}
			}
		})
	}
}

func TestDecodeMask(t *testing.T) {
	enc := encodeMask(t, 4, 3, func(x, y int) bool { return x >= 2 })

	m, err := DecodeMask(enc, 4, 3)
	if err != nil {
		t.Fatalf("DecodeMask() error = %v", err)
	}
	for y := range 3 {
		for x := range 4 {
			want := uint8(0)
			if x >= 2 {
				want = 255
			}
			if got := m.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDecodeMaskAllZero(t *testing.T) {
	m, err := DecodeMask(encodeMask(t, 5, 5, nowhere), 5, 5)
	if err != nil {
		t.Fatalf("DecodeMask() error = %v", err)
	}
	if m.Coverage() != 0 {
		t.Errorf("Coverage() = %d, want 0", m.Coverage())
	}
}

func TestDecodeMaskCorrupt(t *testing.T) {
	_, err := DecodeMask("not a mask", 2, 2)
	if !errors.Is(err, ErrMaskCorrupt) {
		t.Errorf("DecodeMask() error = %v, want ErrMaskCorrupt", err)
	}
}

func TestMaskResample(t *testing.T) {
	m := NewMask(2, 2)
	setMask(m, 1, 0, 255)

	up := m.Resample(4, 4)
	if up.Width() != 4 || up.Height() != 4 {
		t.Fatalf("Resample() = %dx%d, want 4x4", up.Width(), up.Height())
	}
	for y := range 4 {
		for x := range 4 {
			want := uint8(0)
			if x >= 2 && y < 2 {
				want = 255
			}
			if got := up.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}

	if same := m.Resample(2, 2); same != m {
		t.Error("Resample to the same size should return the mask")
	}
	if empty := NewMask(0, 0).Resample(3, 3); empty.Len() != 9 || empty.Coverage() != 0 {
		t.Error("Resample of an empty mask should be transparent")
	}
}

func TestDecodeMaskUnterminatedStream(t *testing.T) {
	raw := make([]byte, 4*4*4)
	for p := range 8 {
		raw[p*4+1] = 1
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		t.Fatal(err)
	}
	if err := zw.Flush(); err != nil {
		t.Fatal(err)
	}

	m, err := DecodeMask(base64.StdEncoding.EncodeToString(buf.Bytes()), 4, 4)
	if err != nil {
		t.Fatalf("DecodeMask() error = %v", err)
	}
	if m.Coverage() != 8 {
		t.Errorf("Coverage() = %d, want 8", m.Coverage())
	}
	if m.At(3, 1) != 255 || m.At(0, 2) != 0 {
		t.Errorf("top half should be covered, bottom half clear")
	}
}
