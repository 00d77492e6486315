package tiles

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// Type names a kind of tile.
type Type string

const (
	Water    Type = "water"
	Grass    Type = "grass"
	Building Type = "building"
	River    Type = "river"
)

var (
	// ErrNoAppearance marks a tile type that has neither a colour nor a
	// texture, leaving the renderer nothing to draw.
	ErrNoAppearance = errors.New("tile type has no color and no texture")
	// ErrUnknownType is returned when a required type is not registered.
	ErrUnknownType = errors.New("unknown tile type")
)

// Spec describes how a tile type is drawn. Color is the fallback fill used
// whenever the texture is missing, still loading or failed to load.
type Spec struct {
	Color    color.RGBA
	HasColor bool
	Texture  string
}

// Registry maps tile types to their appearance.
type Registry map[Type]Spec

// Default returns the reference tile configuration.
func Default() Registry {
	return Registry{
		Water:    {Color: mustHex("#3498db"), HasColor: true, Texture: "textures/water.png"},
		Grass:    {Color: mustHex("#2ecc71"), HasColor: true, Texture: "textures/grass.png"},
		Building: {Color: mustHex("#6cf"), HasColor: true, Texture: "textures/building.png"},
		River:    {Color: mustHex("#2980b9"), HasColor: true},
	}
}

// Types returns the registered types in a stable order.
func (r Registry) Types() []Type {
	types := make([]Type, 0, len(r))
	for t := range r {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Validate checks every entry has something to draw and that each of the
// required types is present.
func (r Registry) Validate(required ...Type) error {
	var errs []error
	for _, t := range r.Types() {
		spec := r[t]
		if !spec.HasColor && spec.Texture == "" {
			errs = append(errs, fmt.Errorf("tile %q: %w", t, ErrNoAppearance))
		}
	}
	for _, t := range required {
		if _, ok := r[t]; !ok {
			errs = append(errs, fmt.Errorf("tile %q: %w", t, ErrUnknownType))
		}
	}
	return errors.Join(errs...)
}

// Fallback returns the flat colour for t. Unknown types yield opaque magenta
// so a misconfiguration is visible rather than transparent.
func (r Registry) Fallback(t Type) color.RGBA {
	spec, ok := r[t]
	if !ok || !spec.HasColor {
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	return spec.Color
}

// Override applies a "type=#color[,texture]" definition, as passed on the
// command line. "type=" clears both colour and texture; "type=,path" keeps
// the existing colour and replaces the texture.
func (r Registry) Override(def string) error {
	name, value, ok := strings.Cut(def, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("tile override %q: want type=#color[,texture]", def)
	}
	t := Type(name)
	spec := r[t]

	colorPart, texture, hasTexture := strings.Cut(value, ",")
	colorPart = strings.TrimSpace(colorPart)
	switch {
	case colorPart != "":
		c, err := ParseHex(colorPart)
		if err != nil {
			return fmt.Errorf("tile override %q: %w", def, err)
		}
		spec.Color = c
		spec.HasColor = true
	case !hasTexture:
		spec = Spec{}
	}
	if hasTexture {
		spec.Texture = strings.TrimSpace(texture)
	}
	r[t] = spec
	return nil
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("color %q: missing '#'", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want 3 or 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func mustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
