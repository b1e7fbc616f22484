package repaint

import "fmt"

// anchor is one (input, output) pair of a LinearMapping.
type anchor struct {
	in, out float32
}

// LinearMapping fits y = slope*x + intercept through exactly two anchors.
//
// Example:
//
//	var lm repaint.LinearMapping
//	_ = lm.Map(0, 64)
//	_ = lm.Map(255, 192)
//	slope, intercept, err := lm.Solve() // 0.50196, 64, nil
type LinearMapping struct {
	anchors [2]anchor
	n       int
}

// Map adds an anchor. A third call fails with ErrTooManyPoints.
func (lm *LinearMapping) Map(in, out float32) error {
	if lm.n == len(lm.anchors) {
		return fmt.Errorf("%w: (%g, %g)", ErrTooManyPoints, in, out)
	}
	lm.anchors[lm.n] = anchor{in: in, out: out}
	lm.n++
	return nil
}

// Solve returns the slope and intercept of the line through both anchors.
func (lm *LinearMapping) Solve() (slope, intercept float32, err error) {
	if lm.n < len(lm.anchors) {
		return 0, 0, fmt.Errorf("%w: have %d", ErrInsufficientPoints, lm.n)
	}
	a, b := lm.anchors[0], lm.anchors[1]
	if a.in == b.in {
		return 0, 0, fmt.Errorf("%w: input %g", ErrDegenerateMapping, a.in)
	}
	slope = (a.out - b.out) / (a.in - b.in)
	intercept = a.out - slope*a.in
	return slope, intercept, nil
}
