// Package server exposes paint previews over HTTP.
//
// A request names a photo by base path and carries the paint colors as query
// parameters:
//
//	GET /preview?i=rooms/kitchen&w=800&SurfaceWall=wall~paint~16711680~SW
//
// The handler reads <root>/rooms/kitchen.jpg and its descriptor
// <root>/rooms/kitchen.xml, fits the photo to the optional w and h, paints
// the requested surfaces and answers with a JPEG. With response=text it
// answers with a plain-text processing report instead. Failures answer with
// an empty body and are logged.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gogpu/repaint"
	"github.com/gogpu/repaint/internal/cache"
	imgutil "github.com/gogpu/repaint/internal/image"
	"github.com/gogpu/repaint/internal/project"
)

// Request parameters.
const (
	ParamImage    = "i"
	ParamWidth    = "w"
	ParamHeight   = "h"
	ParamResponse = "response"

	// ResponseText selects the plain-text report.
	ResponseText = "text"
)

// Content types.
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypeText = "text/plain; charset=utf-8"
)

// ErrMissingImage is reported when a request has no image parameter.
var ErrMissingImage = errors.New("server: missing image parameter")

// Config configures a Handler.
type Config struct {
	// Root is the directory photos and descriptors are served from.
	Root string

	// Quality is the JPEG quality of previews. Zero means
	// image.DefaultQuality.
	Quality int

	// Workers is passed to repaint.WithWorkers.
	Workers int

	// CacheSize is how many decoded photos and parsed descriptors are kept
	// between requests. Zero disables caching.
	CacheSize int
}

// Handler serves paint previews.
type Handler struct {
	cfg      Config
	photos   *cache.Cache[cache.FileKey, image.Image]
	projects *cache.Cache[cache.FileKey, *project.Project]
}

// New creates a Handler.
func New(cfg Config) *Handler {
	if cfg.Quality == 0 {
		cfg.Quality = imgutil.DefaultQuality
	}
	return &Handler{
		cfg:      cfg,
		photos:   cache.New[cache.FileKey, image.Image](cfg.CacheSize),
		projects: cache.New[cache.FileKey, *project.Project](cfg.CacheSize),
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	log := repaint.Logger()
	start := time.Now()
	params := flatten(r)

	text := params[ParamResponse] == ResponseText
	contentType := ContentTypeJPEG
	if text {
		contentType = ContentTypeText
	}
	w.Header().Set("Content-Type", contentType)

	body, err := h.render(params, text)
	if err != nil {
		log.Error("could not render preview", "image", params[ParamImage], "err", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	log.Info("preview rendered",
		"image", params[ParamImage], "bytes", len(body), "elapsed", time.Since(start))

	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

// render produces the response body for one request.
func (h *Handler) render(params map[string]string, text bool) ([]byte, error) {
	log := repaint.Logger()

	base := params[ParamImage]
	if base == "" {
		return nil, ErrMissingImage
	}
	path := h.resolve(base)
	width := dimension(params, ParamWidth)
	height := dimension(params, ParamHeight)

	readStart := time.Now()
	photo, err := h.loadPhoto(path + ".jpg")
	if err != nil {
		return nil, err
	}
	log.Debug("photo read", "path", path+".jpg", "elapsed", time.Since(readStart))

	masks := map[string]string{}
	maskW, maskH := 0, 0
	proj, err := h.loadProject(path + ".xml")
	if err != nil {
		log.Error("could not read project descriptor", "path", path+".xml", "err", err)
	} else {
		masks = proj.SurfaceMasks()
		maskW, maskH = proj.MaskSize()
	}
	if maskW == 0 || maskH == 0 {
		b := photo.Bounds()
		maskW, maskH = b.Dx(), b.Dy()
	}

	canvas := repaint.CanvasFromImage(imgutil.Fit(photo, width, height))
	report, err := repaint.Render(canvas, masks, params,
		repaint.WithMaskSize(maskW, maskH),
		repaint.WithWorkers(h.cfg.Workers))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if text {
		fmt.Fprintf(&buf, "image: %s\nsize: %dx%d\nsurfaces: %d\n",
			base, canvas.Width(), canvas.Height(), len(masks))
		if err := report.WriteText(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	if err := imgutil.EncodeJPEG(&buf, canvas, h.cfg.Quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// loadPhoto reads the photo at path through the photo cache. Cached images
// are only read: Render works on a canvas copy.
func (h *Handler) loadPhoto(path string) (image.Image, error) {
	key, err := cache.StatKey(path)
	if err != nil {
		return nil, err
	}
	return h.photos.GetOrLoad(key, func() (image.Image, error) {
		return imgutil.LoadImage(path)
	})
}

func (h *Handler) loadProject(path string) (*project.Project, error) {
	key, err := cache.StatKey(path)
	if err != nil {
		return nil, err
	}
	return h.projects.GetOrLoad(key, func() (*project.Project, error) {
		return project.Load(path)
	})
}

// CacheStats reports the photo and descriptor cache counters.
func (h *Handler) CacheStats() (photos, projects cache.Stats) {
	return h.photos.Stats(), h.projects.Stats()
}

// resolve maps a request base path into the root directory. Rooting the
// path before cleaning removes any leading "..".
func (h *Handler) resolve(base string) string {
	return filepath.Join(h.cfg.Root, filepath.Clean("/"+filepath.FromSlash(base)))
}

// flatten keeps the first value of every query parameter.
func flatten(r *http.Request) map[string]string {
	q := r.URL.Query()
	params := make(map[string]string, len(q))
	for k, v := range q {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

// dimension parses a size parameter. Missing, malformed or negative values
// mean "keep the photo's size".
func dimension(params map[string]string, key string) int {
	raw, ok := params[key]
	if !ok || raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		repaint.Logger().Warn("ignoring size parameter", "param", key, "value", raw)
		return 0
	}
	return v
}
