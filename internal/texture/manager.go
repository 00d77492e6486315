// Package texture loads tile textures in the background and hands the
// renderer whatever is ready at draw time.
package texture

import (
	"context"
	"fmt"
	"image"
	"log"

	// Registered decoders for texture files.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"isocity/internal/tiles"

	billy "gopkg.in/src-d/go-billy.v4"
)

// State is the load state of one texture.
type State int

const (
	// Absent means the type has no texture configured, or is not registered.
	Absent State = iota
	// Pending means a load is in flight.
	Pending
	// Ready means the image decoded successfully.
	Ready
	// Failed means the load resolved without an image. It is never retried.
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "absent"
	}
}

type entry struct {
	state State
	img   image.Image
}

type result struct {
	tile tiles.Type
	img  image.Image
	err  error
}

// Manager owns the texture cache. Loads run on their own goroutines but only
// Poll writes to the cache, so every other method is meant to be called from
// the same goroutine as Poll.
type Manager struct {
	fs       billy.Filesystem
	registry tiles.Registry

	cache   map[tiles.Type]entry
	results chan result
	pending int
}

// New creates a Manager reading texture paths from the registry relative to fs.
func New(fs billy.Filesystem, registry tiles.Registry) *Manager {
	return &Manager{
		fs:       fs,
		registry: registry,
		cache:    make(map[tiles.Type]entry),
	}
}

// Load starts one background load per type with a texture path. It returns
// immediately; calling it again is a no-op.
func (m *Manager) Load(ctx context.Context) {
	if m.results != nil {
		return
	}
	var jobs []tiles.Type
	for _, t := range m.registry.Types() {
		if m.registry[t].Texture != "" {
			jobs = append(jobs, t)
		}
	}
	m.results = make(chan result, len(jobs))
	for _, t := range jobs {
		m.cache[t] = entry{state: Pending}
		m.pending++
		go func(t tiles.Type, path string) {
			img, err := m.decode(ctx, path)
			m.results <- result{tile: t, img: img, err: err}
		}(t, m.registry[t].Texture)
	}
}

func (m *Manager) decode(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := m.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("decode %s: empty %s image", path, format)
	}
	return img, nil
}

// Poll moves every resolved load into the cache without blocking. It reports
// whether the cache changed, which callers treat as a redraw trigger.
func (m *Manager) Poll() bool {
	changed := false
	for m.pending > 0 {
		select {
		case r := <-m.results:
			m.resolve(r)
			changed = true
		default:
			return changed
		}
	}
	return changed
}

// Wait blocks until every load has resolved or ctx is done.
func (m *Manager) Wait(ctx context.Context) error {
	for m.pending > 0 {
		select {
		case r := <-m.results:
			m.resolve(r)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (m *Manager) resolve(r result) {
	m.pending--
	if r.err != nil {
		log.Printf("texture %s: %v; using fallback color", r.tile, r.err)
		m.cache[r.tile] = entry{state: Failed}
		return
	}
	m.cache[r.tile] = entry{state: Ready, img: r.img}
}

// Lookup returns the texture for t when it is ready. Absent, pending and
// failed textures all report false.
func (m *Manager) Lookup(t tiles.Type) (image.Image, bool) {
	e := m.cache[t]
	if e.state != Ready {
		return nil, false
	}
	return e.img, true
}

// State reports the load state of t.
func (m *Manager) State(t tiles.Type) State {
	return m.cache[t].state
}

// Counts returns how many textures are ready and how many were requested.
func (m *Manager) Counts() (ready, total int) {
	for _, e := range m.cache {
		if e.state == Ready {
			ready++
		}
		total++
	}
	return ready, total
}

// Pending returns the number of loads still in flight.
func (m *Manager) Pending() int { return m.pending }
