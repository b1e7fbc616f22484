package repaint

import (
	"fmt"
	"slices"

	"github.com/gogpu/repaint/internal/color"
	"github.com/gogpu/repaint/internal/filter"
)

// Default intensity band that masked luminance is mitigated into.
const (
	MitigatedMin = 0x40
	MitigatedMax = 0xC0
)

// Desaturate extracts the luminance of src under mask m.
//
// The result has one packed pixel per canvas pixel: gray at the rounded
// luminance of the source, with the mask's opacity as alpha. Pixels outside
// the mask come out fully transparent and are ignored by later stages.
func Desaturate(src *Canvas, m *Mask) ([]uint32, error) {
	if m.Len() != src.Len() {
		return nil, fmt.Errorf("%w: mask %dx%d, canvas %dx%d",
			ErrSizeMismatch, m.Width(), m.Height(), src.Width(), src.Height())
	}

	src.mu.RLock()
	defer src.mu.RUnlock()

	out := make([]uint32, len(src.pix))
	for i, p := range src.pix {
		px := color.Unpack(p)
		out[i] = color.Gray(m.data[i], color.Luminance(px.R, px.G, px.B)).Pack()
	}
	return out, nil
}

// Mitigate compresses the luminance of the opaque pixels in buf toward the
// band [floor, ceiling] and returns the transformed buffer.
//
// When the luminance spread is wider than the band, a two-point mapping
// pins the median to the band's middle and the outlying side of the
// distribution to the band edge or beyond it. Otherwise the values are only
// shifted so their median sits at the band's middle. Transparent pixels are
// passed through untouched.
//
// A buffer with no opaque pixels yields ErrEmptyMask.
func Mitigate(buf []uint32, floor, ceiling int) ([]uint32, error) {
	if floor >= ceiling {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, floor, ceiling)
	}

	samples := make([]int, 0, len(buf))
	for _, p := range buf {
		if color.ChannelAlpha.Of(p) != 0 {
			samples = append(samples, int(color.ChannelRed.Of(p)))
		}
	}
	if len(samples) == 0 {
		return nil, ErrEmptyMask
	}

	lo, hi, avg := intensityStats(samples)
	slope, offset, err := mitigationLine(lo, hi, avg, floor, ceiling)
	if err != nil {
		return nil, fmt.Errorf("repaint: mitigate: %w", err)
	}

	Logger().Debug("mitigate",
		"samples", len(samples), "min", lo, "max", hi, "median", avg,
		"slope", slope, "offset", offset)

	m := filter.NewScaleOffset(slope, offset)
	return m.Apply(buf), nil
}

// intensityStats sorts samples in place and returns their range and median.
// The median of an even count is the integer mean of the two middle values.
// A single-valued range is widened by one unit and the median moved to its
// integer midpoint.
func intensityStats(samples []int) (lo, hi int, avg float32) {
	slices.Sort(samples)

	n := len(samples)
	lo, hi = samples[0], samples[n-1]
	mid := n / 2
	if n%2 == 0 {
		avg = float32((samples[mid-1] + samples[mid]) / 2)
	} else {
		avg = float32(samples[mid])
	}

	if lo == hi {
		if lo > 0 {
			lo--
		} else {
			hi++
		}
		avg = float32((lo + hi) / 2)
	}
	return lo, hi, avg
}

// mitigationLine returns the scale and offset mapping intensities in
// [lo, hi] with median avg into [floor, ceiling].
func mitigationLine(lo, hi int, avg float32, floor, ceiling int) (slope, offset float32, err error) {
	midTarget := float32((floor + ceiling) / 2)

	if hi-lo <= ceiling-floor {
		return 1, midTarget - avg, nil
	}

	var lm LinearMapping
	if err := lm.Map(avg, midTarget); err != nil {
		return 0, 0, err
	}

	above := int(float32(hi) - avg)
	below := int(avg - float32(lo))
	if below < above {
		// Skewed low: leave the bright outliers at or above the ceiling.
		err = lm.Map(float32(hi), float32(max(hi, ceiling)))
	} else {
		err = lm.Map(float32(lo), float32(min(lo, floor)))
	}
	if err != nil {
		return 0, 0, err
	}
	return lm.Solve()
}
