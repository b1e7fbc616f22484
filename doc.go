// Package repaint renders paint color previews onto room photographs.
//
// # Overview
//
// A project pairs a photo with one binary mask per paintable surface (walls,
// trim, ceiling). Render recolors the requested surfaces in place while
// keeping the light, shadow and texture of the photo, so the result looks
// repainted rather than flat-filled.
//
// # Quick Start
//
//	import "github.com/gogpu/repaint"
//
//	canvas := repaint.CanvasFromImage(photo)
//
//	// surface name -> encoded mask, usually from a project file
//	masks := map[string]string{"SurfaceWall": wallMask}
//
//	// request parameters: surface name -> "<field>~<color>"
//	params := map[string]string{"SurfaceWall": "w~16711680"}
//
//	report, err := repaint.Render(canvas, masks, params)
//
// # Pipeline
//
// Each distinct mask goes through the same stages:
//   - DecodeMask: base64 and zlib decode, binarize, resample to the canvas
//   - Desaturate: luminance of the original photo under the mask
//   - Mitigate: compress the luminance into a band around mid gray
//   - Composite: overlay-blend the paint color and write into the canvas
//
// Surfaces sharing byte-identical masks are grouped so the pipeline runs
// once per mask. A surface that fails at any stage is left unchanged and
// reported in the Report; the remaining surfaces are still painted.
//
// # Pixels
//
// Buffers between stages are row-major []uint32 slices of packed ARGB,
// alpha in the high byte. Pixel is the unpacked form.
package repaint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
