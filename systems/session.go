package systems

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/leaderboard"
	"github.com/wask-game/wask/systems/factory"
	"github.com/wask-game/wask/tags"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrNotInState   = errors.New("transition not allowed from current state")
)

func requireState(s *components.SessionData, allowed ...cfg.SessionState) error {
	for _, a := range allowed {
		if s.State == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotInState, s.State)
}

// StartNameEntry shows the name entry screen, from the menu or after a win.
func StartNameEntry(w donburi.World) error {
	s := SessionOf(w)
	if err := requireState(s, cfg.StateMenu, cfg.StateVictory); err != nil {
		return err
	}
	s.State = cfg.StateNameEntry
	return nil
}

// OpenLeaderboard shows the leaderboard screen from the menu.
func OpenLeaderboard(w donburi.World) error {
	s := SessionOf(w)
	if err := requireState(s, cfg.StateMenu); err != nil {
		return err
	}
	s.State = cfg.StateLeaderboard
	return nil
}

// ReturnToMenu goes back to the main menu from any screen outside a run.
func ReturnToMenu(w donburi.World) error {
	s := SessionOf(w)
	if err := requireState(s, cfg.StateNameEntry, cfg.StateDefeated, cfg.StateLeaderboard); err != nil {
		return err
	}
	s.State = cfg.StateMenu
	return nil
}

// Quit marks the session as finished; the game loop exits on it.
func Quit(w donburi.World) {
	SessionOf(w).State = cfg.StateQuit
}

func clampLength(v string, n int) string {
	r := []rune(strings.TrimSpace(v))
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

// StartRun begins a new run on the first level with full lives. The name is
// required; the email is optional.
func StartRun(w donburi.World, name, email string) error {
	s := SessionOf(w)
	if err := requireState(s, cfg.StateNameEntry); err != nil {
		return err
	}
	name = clampLength(name, cfg.Session.MaxNameLength)
	if name == "" {
		return ErrNameRequired
	}

	s.PlayerName = name
	s.PlayerEmail = clampLength(email, cfg.Session.MaxEmailLength)

	for _, e := range collect(w, tags.Projectile) {
		factory.Destroy(w, e)
	}
	components.Lives.Get(PlayerOf(w)).Lives = cfg.Player.StartingLives
	LoadLevel(w, 0)
	beginRun(w)

	log.Printf("[session] run started by %q", s.PlayerName)
	return nil
}

// Respawn restarts the level the player died on with full lives and a fresh
// clock.
func Respawn(w donburi.World) error {
	s := SessionOf(w)
	if err := requireState(s, cfg.StateDefeated); err != nil {
		return err
	}
	components.Lives.Get(PlayerOf(w)).Lives = cfg.Player.StartingLives
	LoadLevel(w, LevelOf(w).LevelIndex)
	beginRun(w)
	return nil
}

func beginRun(w donburi.World) {
	s := SessionOf(w)
	s.State = cfg.StatePlay
	s.StartedAt = ClockOf(w).Now
	s.Finished = false
	s.FinalTime = 0
	s.Outcome = ""
	s.Question = nil
}

func ask(w donburi.World, kind components.QuestionKind, q cfg.Question) {
	s := SessionOf(w)
	s.Question = &components.PendingQuestion{Kind: kind, Question: q}
	s.State = cfg.StateQuestion
}

// AnswerQuestion resolves the pending question and returns to play. A right
// answer grants the question's reward; a wrong one costs nothing.
func AnswerQuestion(w donburi.World, choice int) (bool, error) {
	s := SessionOf(w)
	if err := requireState(s, cfg.StateQuestion); err != nil {
		return false, err
	}
	pending := s.Question
	s.Question = nil
	s.State = cfg.StatePlay

	correct := pending.Question.IsCorrect(choice)
	if !correct {
		return false, nil
	}

	switch pending.Kind {
	case components.QuestionLife:
		components.Lives.Get(PlayerOf(w)).Gain(cfg.Collectible.LifeReward)
	case components.QuestionPortal:
		advanceLevel(w)
	}
	return true, nil
}

// Victory ends the run as a win.
func Victory(w donburi.World) {
	clearHazards(w)
	SessionOf(w).State = cfg.StateVictory
	finishRun(w, cfg.OutcomeWin)
}

// checkLifeLoss ends the run as a loss once the player is out of lives.
func checkLifeLoss(w donburi.World) {
	s := SessionOf(w)
	if s.State != cfg.StatePlay || components.Lives.Get(PlayerOf(w)).Lives > 0 {
		return
	}
	s.State = cfg.StateDefeated
	finishRun(w, cfg.OutcomeLose)
}

// finishRun freezes the run time and reports it, once per run.
func finishRun(w donburi.World, outcome cfg.Outcome) {
	s := SessionOf(w)
	if s.Finished {
		return
	}
	s.FinalTime = ClockOf(w).Now - s.StartedAt
	s.Finished = true
	s.Outcome = outcome

	log.Printf("[session] run over: %s in %.2fs", outcome, s.FinalTime.Seconds())
	servicesOf(w).Reporter.Report(leaderboard.NewResult(
		s.PlayerName, s.PlayerEmail, s.FinalTime, string(outcome),
	))
}

// Elapsed is the run time shown on the HUD: live while playing, frozen once
// the run is over.
func Elapsed(w donburi.World) time.Duration {
	s := SessionOf(w)
	if s.Finished {
		return s.FinalTime
	}
	switch s.State {
	case cfg.StatePlay, cfg.StateQuestion:
		return ClockOf(w).Now - s.StartedAt
	}
	return 0
}
