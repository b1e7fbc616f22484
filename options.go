package repaint

// Option configures a Render call.
//
// Example:
//
//	// Defaults: band 0x40-0xC0, sequential, masks authored at canvas size
//	report, err := repaint.Render(canvas, masks, params)
//
//	// Masks authored against the full-size photo, four workers
//	report, err := repaint.Render(canvas, masks, params,
//	    repaint.WithMaskSize(4032, 3024),
//	    repaint.WithWorkers(4))
type Option func(*options)

// options holds optional configuration for Render.
type options struct {
	floor   int
	ceiling int
	workers int
	maskW   int
	maskH   int
}

// defaultOptions returns the default render options.
func defaultOptions() options {
	return options{
		floor:   MitigatedMin,
		ceiling: MitigatedMax,
		workers: 1,
		maskW:   0, // canvas width
		maskH:   0, // canvas height
	}
}

// WithMitigationRange sets the intensity band that masked luminance is
// compressed into before the paint color is blended. Values are 0-255 and
// floor must be below ceiling; Render fails with ErrInvalidRange otherwise.
func WithMitigationRange(floor, ceiling int) Option {
	return func(o *options) {
		o.floor = floor
		o.ceiling = ceiling
	}
}

// WithWorkers sets how many mask groups are processed concurrently.
// Values below 2 process groups sequentially on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMaskSize sets the size masks were authored against. Masks are decoded
// at this size and resampled to the canvas. Non-positive dimensions fall
// back to the canvas size.
func WithMaskSize(w, h int) Option {
	return func(o *options) {
		o.maskW = w
		o.maskH = h
	}
}

// maskSize resolves the native mask size for a canvas.
func (o *options) maskSize(c *Canvas) (int, int) {
	if o.maskW <= 0 || o.maskH <= 0 {
		return c.Width(), c.Height()
	}
	return o.maskW, o.maskH
}
