package repaint

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.floor != 0x40 || o.ceiling != 0xC0 {
		t.Errorf("band = [%#x, %#x], want [0x40, 0xc0]", o.floor, o.ceiling)
	}
	if o.workers != 1 {
		t.Errorf("workers = %d, want 1", o.workers)
	}
}

func TestOptionsApply(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{
		WithMitigationRange(10, 20),
		WithWorkers(8),
		WithMaskSize(640, 480),
	} {
		opt(&o)
	}

	if o.floor != 10 || o.ceiling != 20 {
		t.Errorf("band = [%d, %d], want [10, 20]", o.floor, o.ceiling)
	}
	if o.workers != 8 {
		t.Errorf("workers = %d, want 8", o.workers)
	}
	if o.maskW != 640 || o.maskH != 480 {
		t.Errorf("mask size = %dx%d, want 640x480", o.maskW, o.maskH)
	}
}

func TestOptionsMaskSize(t *testing.T) {
	canvas := NewCanvas(30, 20)

	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"unset uses canvas", 0, 0, 30, 20},
		{"explicit", 60, 40, 60, 40},
		{"partial falls back", 60, 0, 30, 20},
		{"negative falls back", -1, 40, 30, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			WithMaskSize(tt.w, tt.h)(&o)
			w, h := o.maskSize(canvas)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("maskSize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
