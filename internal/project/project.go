// Package project reads project descriptors: the XML file stored next to a
// room photo that lists its paintable surfaces and their encoded masks.
//
// A descriptor looks like:
//
//	<Project image="kitchen.jpg" width="1024" height="768" version="2">
//	  <Surface name="SurfaceWall" region="wall" category="interior">
//	    <SurfaceMask color="16711680" version="1" string="eJzt..."/>
//	    <SurfaceOverlay width="10" height="10" type="grid"/>
//	  </Surface>
//	</Project>
//
// Surfaces may also appear under a <surfaces> wrapper, and mask entries may
// be nested inside a wrapping <SurfaceMask> element.
package project

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrEmptyDescriptor is returned when the input holds no XML document.
var ErrEmptyDescriptor = errors.New("project: empty descriptor")

// Project is a parsed project descriptor.
type Project struct {
	Image   string `xml:"image,attr"`
	Width   int    `xml:"width,attr"`
	Height  int    `xml:"height,attr"`
	Version int    `xml:"version,attr"`
	Empty   bool   `xml:"empty,attr"`

	Surfaces []Surface `xml:"Surface"`

	// Wrapped holds surfaces listed under a <surfaces> wrapper.
	Wrapped        []Surface `xml:"surfaces>surfaces"`
	WrappedSurface []Surface `xml:"surfaces>Surface"`
}

// Surface is one paintable region of the photo.
type Surface struct {
	Name        string `xml:"name,attr"`
	Region      string `xml:"region,attr"`
	Width       int    `xml:"width,attr"`
	Height      int    `xml:"height,attr"`
	Version     int    `xml:"version,attr"`
	AutoQuad    bool   `xml:"autoQuad,attr"`
	Category    string `xml:"category,attr"`
	Sensitivity int    `xml:"sensitivity,attr"`
	Intensity   int    `xml:"intensity,attr"`
	Thickness   int    `xml:"thickness,attr"`
	Brightness  int    `xml:"brightness,attr"`
	Rotate      int    `xml:"rotate,attr"`
	GridLength  int    `xml:"gridLength,attr"`
	GridWidth   int    `xml:"gridWidth,attr"`
	MaxY        int    `xml:"maxY,attr"`
	MinY        int    `xml:"minY,attr"`
	MaxX        int    `xml:"maxX,attr"`
	MinX        int    `xml:"minX,attr"`
	Quad        string `xml:"quad,attr"`
	Asset       string `xml:"asset,attr"`

	Masks   []SurfaceMask   `xml:"SurfaceMask"`
	Overlay *SurfaceOverlay `xml:"SurfaceOverlay"`
}

// SurfaceMask carries a surface's encoded mask in its string attribute.
type SurfaceMask struct {
	Color   string `xml:"color,attr"`
	Version int    `xml:"version,attr"`
	String  string `xml:"string,attr"`

	// Inner holds entries of a wrapping <SurfaceMask> element.
	Inner []SurfaceMask `xml:"SurfaceMask"`
}

// SurfaceOverlay describes a texture overlay placed on a surface.
type SurfaceOverlay struct {
	Width   int    `xml:"width,attr"`
	Height  int    `xml:"height,attr"`
	Length  int    `xml:"length,attr"`
	CenterX int    `xml:"centerX,attr"`
	CenterY int    `xml:"centerY,attr"`
	Type    string `xml:"type,attr"`
	Rotate  int    `xml:"rotate,attr"`
}

// Parse decodes a project descriptor from r.
func Parse(r io.Reader) (*Project, error) {
	var p Project
	if err := xml.NewDecoder(r).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDescriptor
		}
		return nil, fmt.Errorf("project: parse: %w", err)
	}
	return &p, nil
}

// Load reads and parses the descriptor at path.
func Load(path string) (*Project, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("project: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// AllSurfaces returns the surfaces in document order, bare ones first.
func (p *Project) AllSurfaces() []Surface {
	all := make([]Surface, 0, len(p.Surfaces)+len(p.Wrapped)+len(p.WrappedSurface))
	all = append(all, p.Surfaces...)
	all = append(all, p.Wrapped...)
	all = append(all, p.WrappedSurface...)
	return all
}

// SurfaceMasks maps each surface name to its encoded mask. Surfaces without
// mask data are left out; a name listed twice keeps its last mask.
func (p *Project) SurfaceMasks() map[string]string {
	masks := make(map[string]string)
	for _, s := range p.AllSurfaces() {
		if enc, ok := s.Mask(); ok {
			masks[s.Name] = enc
		}
	}
	return masks
}

// MaskSize returns the size the masks were authored at, or zeros when the
// descriptor does not record it.
func (p *Project) MaskSize() (width, height int) {
	if p.Width <= 0 || p.Height <= 0 {
		return 0, 0
	}
	return p.Width, p.Height
}

// Mask returns the surface's first non-empty encoded mask. There should be
// only one per surface.
func (s *Surface) Mask() (string, bool) {
	return firstMask(s.Masks)
}

func firstMask(masks []SurfaceMask) (string, bool) {
	for _, m := range masks {
		if m.String != "" {
			return m.String, true
		}
		if enc, ok := firstMask(m.Inner); ok {
			return enc, true
		}
	}
	return "", false
}
