package core

// Size describes pixel dimensions of a drawing surface.
type Size struct {
	W int
	H int
}
