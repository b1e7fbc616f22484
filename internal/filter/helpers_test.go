package filter

import "github.com/gogpu/repaint/internal/color"

// Test helper functions shared across filter tests.

// grayBuffer returns n packed gray pixels with the given alpha and level.
func grayBuffer(n int, alpha, level uint8) []uint32 {
	buf := make([]uint32, n)
	for i := range buf {
		buf[i] = color.Gray(alpha, level).Pack()
	}
	return buf
}
