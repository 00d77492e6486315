// Command snapshot renders the scene without a window, as a PNG still or an
// animated GIF with rain.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"isocity/internal/app"
	"isocity/internal/core"
	"isocity/internal/rain"
	"isocity/internal/render"
	"isocity/internal/terrain"
	"isocity/internal/texture"
	"isocity/internal/viewport"

	"golang.org/x/image/draw"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

var background = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}

type options struct {
	out      string
	zoom     float64
	frames   int
	overlay  string
	rainSeed uint64
	timeout  time.Duration
}

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 800, 600
	cfg.Bind(flag.CommandLine)

	var opts options
	flag.StringVar(&opts.out, "out", "isocity.png", "output file (.png or .gif)")
	flag.Float64Var(&opts.zoom, "zoom", 1, "zoom factor, clamped to [0.5, 3]")
	flag.IntVar(&opts.frames, "frames", 1, "animated frames to render (GIF output only)")
	flag.StringVar(&opts.overlay, "overlay", "", "debug overlay: coast or river")
	flag.Uint64Var(&opts.rainSeed, "rain-seed", 0, "rain seed (0 picks one from the clock)")
	flag.DurationVar(&opts.timeout, "timeout", 10*time.Second, "how long to wait for textures")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, opts, osfs.New(cfg.Assets), f); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%dx%d)", opts.out, cfg.Width, cfg.Height)
}

func run(cfg *app.Config, opts options, assets billy.Filesystem, w io.Writer) error {
	ter, err := terrain.New(cfg.TerrainParams())
	if err != nil {
		return err
	}
	reg, err := cfg.Registry(ter)
	if err != nil {
		return err
	}
	mode, err := parseOverlay(opts.overlay)
	if err != nil {
		return err
	}

	textures := texture.New(assets, reg)
	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()
	textures.Load(ctx)
	if err := textures.Wait(ctx); err != nil {
		log.Printf("textures: %v; drawing what is ready", err)
	}

	size := core.Size{W: cfg.Width, H: cfg.Height}
	view := viewport.New(size)
	view.SetZoom(opts.zoom)
	plan := render.Plan(nil, ter, view.Projection(ter.Width, ter.Height))

	base := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	draw.Draw(base, base.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	raster := render.NewRaster(reg, textures)
	raster.DrawTiles(base, plan)
	if mode != render.OverlayNone {
		raster.DrawOverlay(base, plan, func(x, y int) (color.NRGBA, bool) {
			return render.OverlayColor(mode, ter, x, y)
		})
	}

	if !strings.EqualFold(filepath.Ext(opts.out), ".gif") {
		return png.Encode(w, base)
	}
	return encodeRain(w, base, size, cfg, opts)
}

func encodeRain(w io.Writer, base *image.RGBA, size core.Size, cfg *app.Config, opts options) error {
	rng := rain.NewRand()
	if opts.rainSeed != 0 {
		rng = rand.New(rand.NewPCG(opts.rainSeed, opts.rainSeed^0x9e3779b97f4a7c15))
	}
	layer := rain.New(cfg.Rain, size, rng)
	delay := max(2, 100/cfg.RainTPS)

	frames := max(1, opts.frames)
	anim := &gif.GIF{}
	frame := image.NewRGBA(base.Rect)
	for i := 0; i < frames; i++ {
		copy(frame.Pix, base.Pix)
		render.DrawRain(frame, layer.Drops())
		layer.Step()

		p := image.NewPaletted(frame.Rect, palette.Plan9)
		draw.FloydSteinberg.Draw(p, p.Rect, frame, image.Point{})
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

func parseOverlay(name string) (render.Overlay, error) {
	switch strings.ToLower(name) {
	case "":
		return render.OverlayNone, nil
	case "coast":
		return render.OverlayCoast, nil
	case "river":
		return render.OverlayRiver, nil
	}
	return render.OverlayNone, fmt.Errorf("unknown overlay %q", name)
}
