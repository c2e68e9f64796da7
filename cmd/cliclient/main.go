// cliclient renders a fractal progressively and saves it as a PNG file.
// Interrupting it stops the render at the next checkpoint; the partial image is still saved.

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	fractal "github.com/marben/progressive_fractal"
	"github.com/marben/progressive_fractal/internal/config"
	"github.com/marben/progressive_fractal/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run renders the configured window and saves it as a PNG file.
// Returns an error if any step fails.
func run() error {
	cfg := config.Register(flag.CommandLine)
	out := flag.String("o", "fractal.png", "output file")
	stamp := flag.Bool("stamp", true, "print render time into the image")
	verbose := flag.Bool("v", false, "log scheduler passes")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Step 1: Resolve window, parameters and palette
	win, err := cfg.Window()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	params, err := cfg.Params()
	if err != nil {
		return fmt.Errorf("params: %w", err)
	}
	mapper, err := cfg.Mapper()
	if err != nil {
		return err
	}

	// Step 2: Start the render; Ctrl-C cancels it
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sched := fractal.Scheduler{Kernel: render.Kernel{}, Mapper: mapper}
	grid := fractal.NewResultGrid(win.W, win.H)
	log.Printf("Rendering %dx%d, %s %s, %d iterations...", win.W, win.H, params.Type, params.Algorithm, params.MaxIterations)
	job := fractal.Start(ctx, sched, win, params, grid)

	// Step 3: Follow progress
	for f := range job.Frames() {
		log.Printf("progress: %3.0f%%", f.Progress*100)
	}
	res, err := job.Wait()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if res.Cancelled {
		log.Printf("Render cancelled after %d rows, saving partial image", res.Rows)
	} else {
		log.Printf("Render finished in %s", res.Elapsed)
	}

	// Step 4: Save the image
	img := res.Frame
	if *stamp {
		label := fmt.Sprintf("%s  %dx%d", res.Elapsed.Round(time.Millisecond), win.W, win.H)
		if res.Cancelled {
			label += "  (cancelled)"
		}
		stampLabel(img, label)
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("Image saved to %q", *out)
	return nil
}

// stampLabel writes text into the bottom left corner with a one pixel shadow.
func stampLabel(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	x, y := 4, img.Rect.Dy()-4
	shadow := &font.Drawer{Dst: img, Src: image.NewUniform(color.Black), Face: face, Dot: fixed.P(x+1, y+1)}
	shadow.DrawString(text)
	d := &font.Drawer{Dst: img, Src: image.NewUniform(color.White), Face: face, Dot: fixed.P(x, y)}
	d.DrawString(text)
}
