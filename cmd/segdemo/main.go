// Command segdemo renders text as segmented displays to PNG or SVG.
//
// Usage:
//
//	segdemo [flags] [line ...]
//
// Each argument becomes one display row. With -sheet, every kind is shown
// in every style preset with a caption.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xTibor/segdisplay"
	"github.com/xTibor/segdisplay/recording"
	_ "github.com/xTibor/segdisplay/recording/backends/raster"
	_ "github.com/xTibor/segdisplay/recording/backends/svg"
)

type config struct {
	kind        segdisplay.Kind
	metrics     segdisplay.MetricsPreset
	style       segdisplay.StylePreset
	height      float64
	decorations segdisplay.Decorations
	fold        bool
	backend     string
	output      string
	padding     float64
	sheet       bool
	lines       []string
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "segdemo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	rec := recording.NewRecorder(
		recording.WithPadding(cfg.padding),
		recording.WithBackground(segdisplay.Hex("#202020")),
	)

	var captions []caption
	if cfg.sheet {
		captions, err = drawSheet(rec, cfg)
		if err != nil {
			return err
		}
	} else {
		for _, line := range cfg.lines {
			newDisplay(cfg, cfg.kind, cfg.style).PushString(line).Paint(rec)
		}
	}

	r := rec.FinishRecording()
	backend, err := recording.NewBackend(cfg.backend)
	if err != nil {
		return err
	}
	if err := r.Playback(backend); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	if len(captions) > 0 {
		if ib, ok := backend.(recording.ImageBackend); ok {
			if err := drawCaptions(ib.Image(), captions); err != nil {
				return err
			}
		} else {
			segdisplay.Logger().Warn("segdemo: captions need an image backend",
				slog.String("backend", cfg.backend))
		}
	}

	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write files", cfg.backend)
	}
	if err := fb.SaveToFile(cfg.output); err != nil {
		return err
	}
	fmt.Printf("saved %s (%dx%d)\n", cfg.output, r.Width(), r.Height())
	return nil
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("segdemo", flag.ContinueOnError)
	var (
		kind        = fs.String("kind", "seven-segment", "display kind: seven-segment, nine-segment, sixteen-segment")
		metrics     = fs.String("metrics", "default", "metrics preset")
		style       = fs.String("style", "default", "style preset")
		height      = fs.Float64("height", segdisplay.DefaultDigitHeight, "digit height in pixels")
		dots        = fs.Bool("dots", true, "show decimal dots")
		colons      = fs.Bool("colons", true, "show colons")
		apostrophes = fs.Bool("apostrophes", true, "show apostrophes")
		fold        = fs.Bool("fold", false, "fold full-width characters before decomposing")
		backend     = fs.String("backend", "", "output backend (raster, svg); default from -output extension")
		output      = fs.String("output", "display.png", "output file")
		padding     = fs.Float64("padding", 8, "gap between rows in pixels")
		sheet       = fs.Bool("sheet", false, "render every kind in every style")
		verbose     = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if *verbose {
		segdisplay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config{
		height:      *height,
		decorations: segdisplay.Decorations{Dots: *dots, Colons: *colons, Apostrophes: *apostrophes},
		fold:        *fold,
		backend:     *backend,
		output:      *output,
		padding:     *padding,
		sheet:       *sheet,
		lines:       fs.Args(),
	}

	var err error
	if cfg.kind, err = segdisplay.ParseKind(*kind); err != nil {
		return config{}, err
	}
	if cfg.metrics, err = segdisplay.ParseMetricsPreset(*metrics); err != nil {
		return config{}, err
	}
	if cfg.style, err = segdisplay.ParseStylePreset(*style); err != nil {
		return config{}, err
	}
	if cfg.height <= 0 {
		return config{}, fmt.Errorf("invalid -height %v", cfg.height)
	}
	if cfg.backend == "" {
		cfg.backend = backendForPath(cfg.output)
	}
	if !cfg.sheet && len(cfg.lines) == 0 {
		return config{}, errors.New("no text given (pass lines as arguments or use -sheet)")
	}
	return cfg, nil
}

// backendForPath picks a backend from the output file extension.
func backendForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return "svg"
	}
	return "raster"
}

func newDisplay(cfg config, kind segdisplay.Kind, style segdisplay.StylePreset) *segdisplay.Display {
	opts := []segdisplay.Option{
		segdisplay.WithMetricsPreset(cfg.metrics),
		segdisplay.WithStylePreset(style),
		segdisplay.WithDigitHeight(cfg.height),
		segdisplay.WithDecorations(cfg.decorations),
	}
	if cfg.fold {
		opts = append(opts, segdisplay.WithWidthFolding())
	}
	return segdisplay.New(kind, opts...)
}
