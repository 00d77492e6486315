//go:build ebiten

package app

import (
	"context"
	"image/color"

	"isocity/internal/ambience"
	"isocity/internal/core"
	"isocity/internal/rain"
	"isocity/internal/render"
	"isocity/internal/terrain"
	"isocity/internal/texture"
	"isocity/internal/tiles"
	"isocity/internal/ui"
	"isocity/internal/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	billy "gopkg.in/src-d/go-billy.v4"
)

var background = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}

// Game adapts the scene to the ebiten.Game interface. The terrain is drawn
// into its own surface only when the viewport is dirty; the rain surface is
// cleared and redrawn on its own clock.
type Game struct {
	cfg      *Config
	terrain  *terrain.Terrain
	textures *texture.Manager
	view     *viewport.Controller

	painter *render.TerrainPainter
	plan    []render.Tile
	surface *ebiten.Image

	rain        *rain.Layer
	rainClock   *core.FixedStep
	rainSurface *ebiten.Image

	overlay  *ui.Overlay
	hud      *ui.HUD
	ambience *ambience.Player

	cancel context.CancelFunc
}

// New builds the scene and starts loading textures from assets.
func New(cfg *Config, t *terrain.Terrain, reg tiles.Registry, assets billy.Filesystem) *Game {
	ctx, cancel := context.WithCancel(context.Background())
	textures := texture.New(assets, reg)
	textures.Load(ctx)

	size := core.Size{W: cfg.Width, H: cfg.Height}
	painter := render.NewTerrainPainter(reg, textures)
	g := &Game{
		cfg:       cfg,
		terrain:   t,
		textures:  textures,
		view:      viewport.New(size),
		painter:   painter,
		rain:      rain.New(cfg.Rain, size, rain.NewRand()),
		rainClock: core.NewFixedStep(cfg.RainTPS),
		overlay:   ui.NewOverlay(t, painter, render.NewMinimap(t, reg)),
		hud:       ui.NewHUD(),
		cancel:    cancel,
	}
	if !cfg.Mute {
		g.ambience = ambience.NewPlayer(assets, ambience.DefaultTracks())
	}
	return g
}

// Close releases background work and audio.
func (g *Game) Close() {
	g.cancel()
	if g.ambience != nil {
		g.ambience.Close()
	}
}

// Update handles input and advances the rain.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && g.ambience != nil {
		g.ambience.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.overlay.Update()

	if _, dy := ebiten.Wheel(); dy != 0 {
		hostZoom := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
		g.view.Scroll(dy, hostZoom)
	}
	if g.textures.Poll() {
		g.view.Invalidate()
	}

	for n := g.rainClock.Steps(); n > 0; n-- {
		g.rain.Step()
	}
	return nil
}

// Draw composites the terrain, rain, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.ensureSurfaces()
	if g.view.TakeDirty() {
		g.redrawTerrain()
	}
	screen.Fill(background)
	screen.DrawImage(g.surface, nil)

	g.rainSurface.Clear()
	render.DrawRainDrops(g.rainSurface, g.rain.Drops())
	screen.DrawImage(g.rainSurface, nil)

	g.overlay.Draw(screen, g.plan)
	g.hud.Draw(screen, g.status())
}

func (g *Game) redrawTerrain() {
	g.surface.Clear()
	g.plan = render.Plan(g.plan, g.terrain, g.view.Projection(g.terrain.Width, g.terrain.Height))
	g.painter.Draw(g.surface, g.plan)
}

// Layout follows the window size so the canvas always fills it. A change is
// a resize event: both surfaces are recreated in lockstep.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && g.view.Resize(outsideWidth, outsideHeight) && g.surface != nil {
		g.surface.Deallocate()
		g.rainSurface.Deallocate()
		g.surface = nil
	}
	g.ensureSurfaces()
	s := g.view.Size()
	return s.W, s.H
}

func (g *Game) ensureSurfaces() {
	if g.surface != nil {
		return
	}
	s := g.view.Size()
	g.surface = ebiten.NewImage(s.W, s.H)
	g.rainSurface = ebiten.NewImage(s.W, s.H)
	g.rain.Resize(s)
	g.view.Invalidate()
}

func (g *Game) status() ui.Status {
	ready, total := g.textures.Counts()
	s := ui.Status{
		Zoom:          g.view.Zoom(),
		CoastSeed:     uint32(g.cfg.CoastSeed),
		RiverSeed:     uint32(g.cfg.RiverSeed),
		TexturesReady: ready,
		TexturesTotal: total,
		Overlay:       g.overlay.Name(),
		AmbienceMute:  g.ambience == nil,
	}
	if g.ambience != nil {
		s.AmbienceOn = g.ambience.Playing()
	}
	cx, cy := ebiten.CursorPosition()
	p := g.view.Projection(g.terrain.Width, g.terrain.Height)
	if x, y, ok := p.ToGrid(float64(cx), float64(cy), g.terrain.Width, g.terrain.Height); ok {
		s.Hovered, s.HoverX, s.HoverY = true, x, y
		s.HoverType = g.terrain.TypeAt(x, y)
		if bx, by := g.terrain.Building(); x == bx && y == by {
			s.HoverType = tiles.Building
		}
	}
	return s
}
