package repaint

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gogpu/repaint/internal/parallel"
)

// Outcome is what happened to one color request during Render.
type Outcome uint8

const (
	// OutcomeApplied means the surface was painted.
	OutcomeApplied Outcome = iota

	// OutcomeAlreadyApplied means another surface sharing the same mask was
	// painted first; the mask is painted once per Render.
	OutcomeAlreadyApplied

	// OutcomeEmptyMask means the mask has no opaque pixels over the canvas.
	OutcomeEmptyMask

	// OutcomeCorruptMask means the mask data could not be decoded.
	OutcomeCorruptMask

	// OutcomeSolverFailure means no intensity mapping could be built.
	OutcomeSolverFailure

	// OutcomeInvalidColor means the requested color could not be parsed.
	OutcomeInvalidColor

	// OutcomeNoMask means no surface of that name has a mask.
	OutcomeNoMask

	// OutcomeFailed covers any other failure of the surface's pipeline.
	OutcomeFailed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeAlreadyApplied:
		return "already-applied"
	case OutcomeEmptyMask:
		return "empty-mask"
	case OutcomeCorruptMask:
		return "corrupt-mask"
	case OutcomeSolverFailure:
		return "solver-failure"
	case OutcomeInvalidColor:
		return "invalid-color"
	case OutcomeNoMask:
		return "no-mask"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SurfaceResult records the outcome of one color request.
type SurfaceResult struct {
	Surface string
	Token   string
	Color   Pixel
	Outcome Outcome
	Err     error
}

// Report summarizes a Render call.
type Report struct {
	// Prefix is the naming prefix that selected the color parameters.
	Prefix string

	// Groups is the number of distinct masks.
	Groups int

	// Executions is the number of masks that entered the paint pipeline.
	Executions int

	// Surfaces holds one result per color request, sorted by surface name.
	Surfaces []SurfaceResult

	// Elapsed is the wall time spent in Render.
	Elapsed time.Duration
}

// Applied returns the number of surfaces that were painted.
func (r *Report) Applied() int {
	n := 0
	for _, s := range r.Surfaces {
		if s.Outcome == OutcomeApplied {
			n++
		}
	}
	return n
}

// WriteText writes a plain-text summary of the report to w.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "prefix: %s\ngroups: %d\nexecutions: %d\nelapsed: %s\n",
		r.Prefix, r.Groups, r.Executions, r.Elapsed); err != nil {
		return err
	}
	for _, s := range r.Surfaces {
		hex := "-"
		if s.Outcome != OutcomeInvalidColor {
			hex = s.Color.Hex()
		}
		line := fmt.Sprintf("%s\t%s\t%s", s.Surface, hex, s.Outcome)
		if s.Err != nil {
			line += "\t" + s.Err.Error()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Render paints the requested surfaces of canvas in place.
//
// surfaceMasks maps surface names to encoded masks. params is the flat
// request parameter map: every key starting with the surfaces' naming prefix
// is a surface name, and its value carries the paint color (see ColorToken).
//
// Surfaces that share a mask are painted once, by the first request in
// surface-name order. Every stage reads the photo as it was when Render was
// called, so surfaces never shade each other. A failing surface is recorded
// in the Report and the others are still painted; Render only returns an
// error for invalid options.
func Render(canvas *Canvas, surfaceMasks map[string]string, params map[string]string, opts ...Option) (*Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.floor >= o.ceiling {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, o.floor, o.ceiling)
	}

	start := time.Now()
	log := Logger()

	groups := GroupMasks(surfaceMasks)
	prefix := groups.NamingPrefix()
	reqs := ParseColorRequests(params, prefix)

	report := &Report{
		Prefix:   prefix,
		Groups:   groups.Len(),
		Surfaces: make([]SurfaceResult, len(reqs)),
	}

	original := canvas.Clone()
	maskW, maskH := o.maskSize(canvas)

	var jobs []func() error
	var owners []int
	for i, req := range reqs {
		res := &report.Surfaces[i]
		res.Surface = req.Surface
		res.Token = req.Token
		res.Color = req.Color

		g, ok := groups.Lookup(req.Surface)
		switch {
		case !ok:
			res.Outcome = OutcomeNoMask
			log.Debug("surface has no mask", "surface", req.Surface)
			continue
		case req.Err != nil:
			res.Outcome = OutcomeInvalidColor
			res.Err = req.Err
			log.Warn("skipping surface", "surface", req.Surface, "token", req.Token, "err", req.Err)
			continue
		case !g.claim():
			res.Outcome = OutcomeAlreadyApplied
			continue
		}

		encoded, paint := g.Encoded(), req.Color
		jobs = append(jobs, func() error {
			return paintSurface(original, canvas, encoded, paint, maskW, maskH, o.floor, o.ceiling)
		})
		owners = append(owners, i)
	}
	report.Executions = len(jobs)

	for k, err := range runJobs(jobs, o.workers) {
		res := &report.Surfaces[owners[k]]
		res.Outcome = outcomeOf(err)
		res.Err = err
		switch res.Outcome {
		case OutcomeApplied:
		case OutcomeEmptyMask:
			log.Warn("mask has no coverage", "surface", res.Surface)
		default:
			log.Error("surface not painted", "surface", res.Surface, "outcome", res.Outcome, "err", err)
		}
	}

	report.Elapsed = time.Since(start)
	log.Debug("render complete",
		"groups", report.Groups, "requests", len(reqs),
		"executions", report.Executions, "applied", report.Applied(),
		"elapsed", report.Elapsed)

	return report, nil
}

// paintSurface runs one mask through decode, desaturate, mitigate and
// composite.
func paintSurface(original, canvas *Canvas, encoded string, paint Pixel, maskW, maskH, floor, ceiling int) error {
	m, err := DecodeMask(encoded, maskW, maskH)
	if err != nil {
		return err
	}
	m = m.Resample(canvas.Width(), canvas.Height())

	gray, err := Desaturate(original, m)
	if err != nil {
		return err
	}
	normalized, err := Mitigate(gray, floor, ceiling)
	if err != nil {
		return err
	}
	return Composite(paint, normalized, canvas)
}

// runJobs runs jobs on a worker pool, or in order on the calling goroutine
// when fewer than two workers are configured.
func runJobs(jobs []func() error, workers int) []error {
	if workers < 2 || len(jobs) < 2 {
		errs := make([]error, len(jobs))
		for i, job := range jobs {
			errs[i] = job()
		}
		return errs
	}

	pool := parallel.NewWorkerPool(min(workers, len(jobs)))
	defer pool.Close()
	return pool.ExecuteAll(jobs)
}

func outcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeApplied
	case errors.Is(err, ErrEmptyMask):
		return OutcomeEmptyMask
	case errors.Is(err, ErrMaskCorrupt):
		return OutcomeCorruptMask
	case errors.Is(err, ErrDegenerateMapping),
		errors.Is(err, ErrInsufficientPoints),
		errors.Is(err, ErrTooManyPoints):
		return OutcomeSolverFailure
	default:
		return OutcomeFailed
	}
}
