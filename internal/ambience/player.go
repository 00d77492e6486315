//go:build ebiten

package ambience

import (
	"bytes"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	billy "gopkg.in/src-d/go-billy.v4"
)

// Player owns the looping tracks. Tracks that cannot be opened or decoded
// are skipped; a Player with no tracks is silent but still usable.
type Player struct {
	players []*audio.Player
	playing bool
}

// NewPlayer decodes tracks from fs into infinite loops.
func NewPlayer(fs billy.Filesystem, tracks []Track) *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	p := &Player{}
	for _, t := range tracks {
		ap, err := newLoop(ctx, fs, t)
		if err != nil {
			log.Printf("ambience %s: %v; skipping", t.Name, err)
			continue
		}
		p.players = append(p.players, ap)
	}
	return p
}

func newLoop(ctx *audio.Context, fs billy.Filesystem, t Track) (*audio.Player, error) {
	f, err := fs.Open(t.Path)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return nil, err
	}
	stream, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	ap, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, err
	}
	ap.SetVolume(clampVolume(t.Volume))
	return ap, nil
}

// Toggle starts or pauses every track together.
func (p *Player) Toggle() {
	p.playing = !p.playing
	for _, ap := range p.players {
		if p.playing {
			ap.Play()
		} else {
			ap.Pause()
		}
	}
}

// Playing reports whether the tracks are playing.
func (p *Player) Playing() bool { return p.playing }

// Close stops and releases every track.
func (p *Player) Close() {
	for _, ap := range p.players {
		ap.Close()
	}
	p.players = nil
	p.playing = false
}
