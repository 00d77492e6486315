package app

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strings"

	"isocity/internal/rain"
	"isocity/internal/terrain"
	"isocity/internal/tiles"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ";")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	CoastSeed  uint
	RiverSeed  uint
	Roughness  int
	Grid       int
	CarveRiver bool

	Assets string
	Tiles  kvList

	Rain    int
	RainTPS int
	TPS     int

	Width  int
	Height int
	Mute   bool
}

// NewConfig returns a Config populated with the reference scene defaults.
func NewConfig() *Config {
	return &Config{
		CoastSeed: uint(terrain.DefaultCoastSeed),
		RiverSeed: uint(terrain.DefaultRiverSeed),
		Roughness: terrain.DefaultRoughness,
		Grid:      terrain.DefaultGridSize,
		Assets:    ".",
		Rain:      rain.DefaultCount,
		RainTPS:   60,
		TPS:       60,
		Width:     1280,
		Height:    800,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.UintVar(&c.CoastSeed, "seed", c.CoastSeed, "coastline seed")
	fs.UintVar(&c.RiverSeed, "river-seed", c.RiverSeed, "river path seed")
	fs.IntVar(&c.Roughness, "roughness", c.Roughness, "coastline midpoint-displacement passes")
	fs.IntVar(&c.Grid, "grid", c.Grid, "grid width and height in cells")
	fs.BoolVar(&c.CarveRiver, "carve-river", c.CarveRiver, "draw the river path into grass cells")
	fs.StringVar(&c.Assets, "assets", c.Assets, "directory holding textures/ and sounds/")
	fs.Var(&c.Tiles, "tile", "tile override type=#color[,texture] (repeatable)")
	fs.IntVar(&c.Rain, "rain", c.Rain, "number of rain drops")
	fs.IntVar(&c.RainTPS, "rain-tps", c.RainTPS, "rain animation steps per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "do not load ambience audio")
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var errs []error
	if c.CoastSeed > math.MaxUint32 {
		errs = append(errs, fmt.Errorf("seed %d exceeds 32 bits", c.CoastSeed))
	}
	if c.RiverSeed > math.MaxUint32 {
		errs = append(errs, fmt.Errorf("river-seed %d exceeds 32 bits", c.RiverSeed))
	}
	if c.Grid < 3 {
		errs = append(errs, fmt.Errorf("grid %d: need at least 3 cells", c.Grid))
	}
	if c.Roughness < 0 || c.Roughness > 16 {
		errs = append(errs, fmt.Errorf("roughness %d: want 0..16", c.Roughness))
	}
	if c.Rain < 0 {
		errs = append(errs, fmt.Errorf("rain %d: must not be negative", c.Rain))
	}
	if c.RainTPS <= 0 || c.TPS <= 0 {
		errs = append(errs, errors.New("tick rates must be positive"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window %dx%d: must be positive", c.Width, c.Height))
	}
	return errors.Join(errs...)
}

// TerrainParams converts the config into generator parameters.
func (c *Config) TerrainParams() terrain.Params {
	return terrain.Params{
		Width:      c.Grid,
		Height:     c.Grid,
		Roughness:  c.Roughness,
		CoastSeed:  uint32(c.CoastSeed),
		RiverSeed:  uint32(c.RiverSeed),
		CarveRiver: c.CarveRiver,
	}
}

// Registry builds the tile registry with overrides applied and checks that
// every type t can produce is drawable.
func (c *Config) Registry(t *terrain.Terrain) (tiles.Registry, error) {
	reg := tiles.Default()
	for _, def := range c.Tiles {
		if err := reg.Override(def); err != nil {
			return nil, err
		}
	}
	if err := reg.Validate(t.Types()...); err != nil {
		return nil, err
	}
	return reg, nil
}
