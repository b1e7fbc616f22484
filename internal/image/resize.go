package image

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Fit scales img toward a requested size while keeping its aspect ratio.
//
// With both dimensions positive, the image is scaled to whichever of the two
// it can match more closely: the ratio min(tw/w, th/h) is applied and the
// dimension left with the smaller error is fixed exactly, the other following
// the aspect ratio. Ties go to the height when th < tw, otherwise to the
// width. With only one dimension positive, it bounds the longer side of the
// image, whichever of tw and th was given. With neither positive, or when
// the image already has the requested size, img is returned unchanged.
func Fit(img image.Image, tw, th int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return img
	}

	switch {
	case tw <= 0 && th <= 0:
		return img
	case tw == w && th == h:
		return img
	case tw <= 0 || th <= 0:
		return fitLongerSide(img, w, h, max(tw, th))
	}

	if fitHeight(w, h, tw, th) {
		return imaging.Resize(img, 0, th, imaging.Lanczos)
	}
	return imaging.Resize(img, tw, 0, imaging.Lanczos)
}

// fitLongerSide scales the longer side of a w x h image to size. Square
// images are fitted by width.
func fitLongerSide(img image.Image, w, h, size int) image.Image {
	if w >= h {
		if w == size {
			return img
		}
		return imaging.Resize(img, size, 0, imaging.Lanczos)
	}
	if h == size {
		return img
	}
	return imaging.Resize(img, 0, size, imaging.Lanczos)
}

// fitHeight reports whether the height is the dimension to match exactly.
func fitHeight(w, h, tw, th int) bool {
	ratio := math.Min(float64(tw)/float64(w), float64(th)/float64(h))
	wDist := math.Abs(ratio*float64(w) - float64(tw))
	hDist := math.Abs(ratio*float64(h) - float64(th))

	switch {
	case hDist < wDist:
		return true
	case wDist < hDist:
		return false
	default:
		return th < tw
	}
}

// ResampleAlpha scales a coverage mask to exactly w x h using nearest
// neighbor, so binary coverage stays binary.
func ResampleAlpha(src *image.Alpha, w, h int) *image.Alpha {
	if b := src.Bounds(); b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
