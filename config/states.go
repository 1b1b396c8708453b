package config

// SessionState is the top-level screen the game is on.
type SessionState int

const (
	StateMenu SessionState = iota
	StateNameEntry
	StatePlay
	StateQuestion
	StateDefeated
	StateVictory
	StateLeaderboard
	StateQuit
)

func (s SessionState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateNameEntry:
		return "name_entry"
	case StatePlay:
		return "play"
	case StateQuestion:
		return "question"
	case StateDefeated:
		return "game_over"
	case StateVictory:
		return "win"
	case StateLeaderboard:
		return "leaderboard"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// BossPhase is the boss controller's current phase.
type BossPhase int

const (
	BossGround BossPhase = iota
	BossTakeoff
	BossHover
	BossFall
)

func (p BossPhase) String() string {
	switch p {
	case BossGround:
		return "ground"
	case BossTakeoff:
		return "takeoff"
	case BossHover:
		return "hover"
	case BossFall:
		return "fall"
	}
	return "unknown"
}

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)
