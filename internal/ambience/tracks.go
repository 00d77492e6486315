// Package ambience loops the background audio tracks. It shares the window
// with the scene but nothing in the scene depends on it.
package ambience

// Track is one looping audio file.
type Track struct {
	Name   string
	Path   string
	Volume float64
}

// DefaultTracks returns the rain and city loops.
func DefaultTracks() []Track {
	return []Track{
		{Name: "rain", Path: "sounds/rain.mp3", Volume: 0.7},
		{Name: "city", Path: "sounds/city.mp3", Volume: 0.5},
	}
}

// SampleRate is the audio context rate the tracks are resampled to.
const SampleRate = 44100

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}
