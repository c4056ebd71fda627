// Command pagemesh generates a page mesh grid and writes it out.
//
// Usage:
//
//	pagemesh -width 1080 -height 1920 -cols 30 -rows 50 -format json
//	pagemesh -config mesh.yml -format png -labels -output mesh.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/peyilo/pagemesh"
	"github.com/peyilo/pagemesh/internal/preview"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.SetFlags(0)
		log.Fatalf("pagemesh: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pagemesh", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML mesh config file")
		width      = fs.Float64("width", 0, "page width (overrides config)")
		height     = fs.Float64("height", 0, "page height (overrides config)")
		cols       = fs.Int("cols", 0, "horizontal mesh cells (overrides config)")
		rows       = fs.Int("rows", 0, "vertical mesh cells (overrides config)")
		origin     = fs.String("origin", "", "row 0 edge: top-left or bottom-left (overrides config)")
		format     = fs.String("format", "text", "output format: text, json, yaml, bin, png")
		labels     = fs.Bool("labels", false, "draw vertex indices in png output")
		scale      = fs.Float64("scale", 1, "pixels per page unit in png output")
		output     = fs.String("output", "", "output file (default stdout)")
		verbose    = fs.Bool("v", false, "debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		pagemesh.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Page.Width = float32(*width)
		case "height":
			cfg.Page.Height = float32(*height)
		case "cols":
			cfg.Mesh.Width = *cols
		case "rows":
			cfg.Mesh.Height = *rows
		case "origin":
			cfg.Origin = *origin
		}
	})

	spec, opts, err := cfg.Spec()
	if err != nil {
		return err
	}
	g, err := pagemesh.NewGrid(spec, opts...)
	if err != nil {
		return err
	}

	popts := preview.DefaultOptions()
	popts.Labels = *labels
	popts.Scale = float32(*scale)

	if *output == "" {
		if err := write(stdout, *format, g, popts); err != nil {
			return fmt.Errorf("write %s: %w", *format, err)
		}
		return nil
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := writeAndClose(f, *format, g, popts); err != nil {
		return fmt.Errorf("%s: %w", *output, err)
	}
	pagemesh.Logger().Info("mesh written", "path", *output, "spec", spec.String(), "vertices", g.Len())
	return nil
}

// writeAndClose writes g to wc and closes it, reporting the close error
// when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, format string, g *pagemesh.Grid, opts preview.Options) error {
	if err := write(wc, format, g, opts); err != nil {
		wc.Close()
		return fmt.Errorf("write %s: %w", format, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
