package scenes

import (
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/wask-game/wask/assets"
	cfg "github.com/wask-game/wask/config"
)

// Global audio context - created once and shared across all scenes
var (
	audioContext  *audio.Context
	audioInitOnce sync.Once
)

func initAudio() {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// Music is the looping background track. Without a track every method is a
// no-op.
type Music struct {
	player *audio.Player
	muted  bool
	ducked bool
}

// StartMusic loads the first configured track found in fsys and starts it.
func StartMusic(fsys fs.FS, muted bool) *Music {
	initAudio()
	m := &Music{muted: muted}

	player, path, err := assets.NewAudioLoader(audioContext, fsys).LoadFirstMusic(cfg.Audio.MusicFiles)
	if err != nil {
		log.Printf("Warning: background music disabled: %v", err)
		return m
	}
	log.Printf("[audio] playing %s", path)

	m.player = player
	m.apply()
	m.player.Play()
	return m
}

// ToggleMute flips the mute state and returns the new value.
func (m *Music) ToggleMute() bool {
	m.muted = !m.muted
	m.apply()
	return m.muted
}

// SetDucked lowers the music while a question is on screen.
func (m *Music) SetDucked(ducked bool) {
	if m.ducked == ducked {
		return
	}
	m.ducked = ducked
	m.apply()
}

func (m *Music) Muted() bool {
	return m.muted
}

func (m *Music) apply() {
	if m.player == nil {
		return
	}
	m.player.SetVolume(cfg.Audio.VolumeFor(m.muted, m.ducked))
}
