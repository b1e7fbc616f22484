package blend

// lerp interpolates from a toward b by t, truncating and keeping the low
// 8 bits of the result.
func lerp(a, b uint8, t float32) uint8 {
	v := float32(a) + float32(int(b)-int(a))*t
	return uint8(int(v) & 0xFF)
}
