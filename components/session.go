package components

import (
	"math/rand"
	"time"

	"github.com/yohamta/donburi"

	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/leaderboard"
)

// QuestionKind says what a correct answer unlocks.
type QuestionKind int

const (
	QuestionLife   QuestionKind = iota // collectible pickup, +1 life
	QuestionPortal                     // level exit, advance
)

// PendingQuestion is the interstitial currently on screen.
type PendingQuestion struct {
	Kind     QuestionKind
	Question cfg.Question
}

// SessionData is the top-level run state.
type SessionData struct {
	State cfg.SessionState

	PlayerName  string
	PlayerEmail string

	StartedAt time.Duration // clock time the run (or respawn) began
	Finished  bool
	FinalTime time.Duration
	Outcome   cfg.Outcome

	Question *PendingQuestion
}

var Session = donburi.NewComponentType[SessionData]()

// ClockData is the simulation clock. It advances one fixed tick per update
// while a run is active, so timers are deterministic.
type ClockData struct {
	Frame int
	Now   time.Duration
}

var Clock = donburi.NewComponentType[ClockData]()

// ServicesData carries the collaborators injected into the simulation.
type ServicesData struct {
	Reporter  leaderboard.Reporter
	Rand      *rand.Rand
	Questions cfg.QuestionPools
}

var Services = donburi.NewComponentType[ServicesData]()
