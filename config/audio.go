package config

// AudioConfig contains music playback settings. Music is optional: the first
// existing file in MusicFiles (relative to the working directory) is looped.
type AudioConfig struct {
	SampleRate   int
	MusicVolume  float64
	DuckedVolume float64 // while a question is on screen
	MusicFiles   []string
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:   44100,
		MusicVolume:  0.6,
		DuckedVolume: 0.25,
		MusicFiles:   []string{"Background.beat.wav", "Background.beat.ogg"},
	}
}

// VolumeFor returns the music volume for the current mute and duck state.
func (a AudioConfig) VolumeFor(muted, ducked bool) float64 {
	switch {
	case muted:
		return 0
	case ducked:
		return a.DuckedVolume
	}
	return a.MusicVolume
}
