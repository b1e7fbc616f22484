package repaint

import "errors"

// Pipeline errors. Each one is fatal only to the mask group it occurred in;
// Render records it in the Report and moves on to the next surface.
var (
	// ErrMaskCorrupt is returned when an encoded mask fails to decode or
	// decompress.
	ErrMaskCorrupt = errors.New("repaint: mask data is corrupt")

	// ErrEmptyMask is returned when a mask has no opaque pixels. It marks a
	// valid "nothing to paint" outcome rather than a failure.
	ErrEmptyMask = errors.New("repaint: mask has no opaque coverage")

	// ErrDegenerateMapping is returned when both anchors of a linear mapping
	// share the same input value.
	ErrDegenerateMapping = errors.New("repaint: linear mapping anchors share an input")

	// ErrInsufficientPoints is returned by Solve with fewer than two anchors.
	ErrInsufficientPoints = errors.New("repaint: linear mapping needs two anchors")

	// ErrTooManyPoints is returned by Map when two anchors are already set.
	ErrTooManyPoints = errors.New("repaint: linear mapping takes exactly two anchors")

	// ErrInvalidColor is returned when a requested color token cannot be parsed.
	ErrInvalidColor = errors.New("repaint: invalid color")

	// ErrSizeMismatch is returned when a buffer does not match the canvas size.
	ErrSizeMismatch = errors.New("repaint: buffer size does not match canvas")

	// ErrInvalidRange is returned when the mitigation floor is not below the
	// ceiling.
	ErrInvalidRange = errors.New("repaint: mitigation floor must be below ceiling")
)
