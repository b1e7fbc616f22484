package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/repaint"
	imgutil "github.com/gogpu/repaint/internal/image"
	"github.com/gogpu/repaint/internal/project"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Paint surfaces of a photo and write a JPEG preview",
	Example: `  repaint render --photo kitchen.jpg --project kitchen.xml \
    --color SurfaceWall=16711680 --color SurfaceTrim=#ffffff -w 800 --out preview.jpg`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("photo", "p", "", "room photo (JPEG, PNG or WebP)")
	renderCmd.Flags().String("project", "", "project descriptor (default: photo path with .xml)")
	renderCmd.Flags().StringP("out", "o", "", "output JPEG path")
	renderCmd.Flags().StringArrayP("color", "c", nil, "surface=color pair, repeatable")
	renderCmd.Flags().IntP("width", "w", 0, "target width; alone it bounds the longer side")
	renderCmd.Flags().IntP("height", "H", 0, "target height; alone it bounds the longer side")
	renderCmd.Flags().IntP("quality", "q", imgutil.DefaultQuality, "JPEG quality (1-100)")
	renderCmd.Flags().Int("workers", 1, "paint distinct masks concurrently")
	renderCmd.Flags().Bool("report", false, "print the processing report")
	_ = renderCmd.MarkFlagRequired("photo")
	_ = renderCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	photoPath, _ := cmd.Flags().GetString("photo")
	projectPath, _ := cmd.Flags().GetString("project")
	outPath, _ := cmd.Flags().GetString("out")
	colors, _ := cmd.Flags().GetStringArray("color")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	quality, _ := cmd.Flags().GetInt("quality")
	workers, _ := cmd.Flags().GetInt("workers")
	showReport, _ := cmd.Flags().GetBool("report")

	if projectPath == "" {
		projectPath = strings.TrimSuffix(photoPath, extension(photoPath)) + ".xml"
	}

	params, err := colorParams(colors)
	if err != nil {
		return err
	}

	photo, err := imgutil.LoadImage(photoPath)
	if err != nil {
		return fmt.Errorf("reading photo: %w", err)
	}
	proj, err := project.Load(projectPath)
	if err != nil {
		return fmt.Errorf("reading project: %w", err)
	}

	maskW, maskH := proj.MaskSize()
	if maskW == 0 || maskH == 0 {
		b := photo.Bounds()
		maskW, maskH = b.Dx(), b.Dy()
	}

	canvas := repaint.CanvasFromImage(imgutil.Fit(photo, width, height))
	report, err := repaint.Render(canvas, proj.SurfaceMasks(), params,
		repaint.WithMaskSize(maskW, maskH),
		repaint.WithWorkers(workers))
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	if err := imgutil.SaveJPEG(outPath, canvas, quality); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if showReport {
		if err := report.WriteText(os.Stdout); err != nil {
			return err
		}
	}
	fmt.Printf("Wrote %s (%dx%d, %d of %d surfaces painted)\n",
		outPath, canvas.Width(), canvas.Height(), report.Applied(), len(report.Surfaces))
	return nil
}

// colorParams turns surface=color flags into request parameters.
func colorParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("invalid --color %q: want surface=color", pair)
		}
		params[name] = value
	}
	return params, nil
}

func extension(path string) string {
	if i := strings.LastIndexByte(path, '.'); i > strings.LastIndexAny(path, `/\`) {
		return path[i:]
	}
	return ""
}
