package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/controls"
	"github.com/wask-game/wask/leaderboard"
	"github.com/wask-game/wask/shared/leveldata"
	"github.com/wask-game/wask/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Shared is what outlives any single scene: the simulation world and the
// player's profile, plus optional collaborators that may be nil.
type Shared struct {
	World   donburi.World
	Profile *systems.SavedProfile
	Music   *Music

	// Leaderboard service for the in-game table; nil hides the scores.
	Client *leaderboard.Client
	// Shown behind the second level instead of the plain backdrop.
	Background *ebiten.Image
	// Level hot reload, when playing from a directory.
	Watcher   *leveldata.Watcher
	LevelsDir string
}

// ForState returns the scene that presents the given session state, or nil
// when the game should exit.
func ForState(sc SceneChanger, sh *Shared, state cfg.SessionState) interface{} {
	switch state {
	case cfg.StateMenu:
		return NewMenuScene(sc, sh)
	case cfg.StateNameEntry:
		return NewNameEntryScene(sc, sh)
	case cfg.StatePlay, cfg.StateQuestion:
		return NewPlayScene(sc, sh)
	case cfg.StateDefeated, cfg.StateVictory:
		return NewResultScene(sc, sh)
	case cfg.StateLeaderboard:
		return NewLeaderboardScene(sc, sh)
	}
	return nil
}

// follow switches scenes when the session moved to a state the current scene
// does not present. It reports whether it did.
func follow(sc SceneChanger, sh *Shared, presents ...cfg.SessionState) bool {
	state := systems.SessionOf(sh.World).State
	for _, p := range presents {
		if state == p {
			return false
		}
	}
	if next := ForState(sc, sh, state); next != nil {
		sc.ChangeScene(next)
	}
	return true
}

// poll pushes this frame's input into the world and returns it. Mute is left
// alone on screens where M is typed as text.
func (sh *Shared) poll(allowMute bool) *components.InputData {
	controls.Update(sh.World)
	in := systems.InputOf(sh.World)
	if allowMute && in.JustPressed(cfg.ActionMute) {
		sh.toggleMute()
	}
	return in
}

func (sh *Shared) toggleMute() {
	sh.Profile.Muted = sh.Music.ToggleMute()
	sh.saveProfile()
}

// rememberRun folds a finished run into the saved profile.
func (sh *Shared) rememberRun() {
	systems.RememberRun(sh.World, sh.Profile)
	sh.saveProfile()
}

// saveProfile writes the profile. On failure the game carries on with the
// in-memory copy.
func (sh *Shared) saveProfile() {
	if err := systems.SaveProfile(sh.Profile); err != nil {
		log.Printf("[profile] %v", err)
	}
}
