package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/repaint"
	imgutil "github.com/gogpu/repaint/internal/image"
	"github.com/gogpu/repaint/internal/project"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [descriptor]",
	Short: "List the surfaces of a project descriptor and their shared masks",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	proj, err := project.Load(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	masks := proj.SurfaceMasks()
	groups := repaint.GroupMasks(masks)
	w, h := proj.MaskSize()
	sizeFrom := "descriptor"
	if w == 0 && proj.Image != "" {
		w, h = photoSize(filepath.Join(filepath.Dir(path), proj.Image))
		sizeFrom = "photo"
	}

	fmt.Printf("File:      %s\n", path)
	if proj.Image != "" {
		fmt.Printf("Image:     %s\n", proj.Image)
	}
	if w > 0 {
		fmt.Printf("Mask size: %d x %d (%s)\n", w, h, sizeFrom)
	} else {
		fmt.Println("Mask size: unknown")
	}
	fmt.Printf("Surfaces:  %d (%d with masks)\n", len(proj.AllSurfaces()), len(masks))
	fmt.Printf("Prefix:    %s\n", groups.NamingPrefix())
	fmt.Printf("Masks:     %d distinct\n", groups.Len())

	for i, g := range groups.Groups() {
		fmt.Printf("  [%d] %s\n", i, strings.Join(g.Names(), ", "))
		if w > 0 {
			fmt.Printf("      coverage: %s\n", coverage(g.Encoded(), w, h))
		}
	}

	for _, s := range proj.AllSurfaces() {
		if _, ok := masks[s.Name]; ok {
			continue
		}
		fmt.Printf("  no mask: %s\n", s.Name)
	}
	return nil
}

// photoSize returns the dimensions of the photo at path, or zeros when it
// cannot be read.
func photoSize(path string) (int, int) {
	img, err := imgutil.LoadImage(path)
	if err != nil {
		repaint.Logger().Warn("could not read photo", "path", path, "err", err)
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// coverage decodes an encoded mask and describes how much of the photo it
// covers.
func coverage(encoded string, w, h int) string {
	m, err := repaint.DecodeMask(encoded, w, h)
	if err != nil {
		return err.Error()
	}
	n := m.Coverage()
	return fmt.Sprintf("%d px (%.1f%%)", n, 100*float64(n)/float64(m.Len()))
}
