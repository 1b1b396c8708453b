// Package leaderboard holds the run-result contract shared by the game and
// the leaderboard service, plus the client side used by the game.
package leaderboard

import (
	"strings"
	"time"
)

// DefaultName is used when a result arrives without a player name.
const DefaultName = "Player"

// Outcomes a finished run can report.
const (
	OutcomeWin     = "win"
	OutcomeLose    = "lose"
	OutcomeUnknown = "unknown"
)

// Result is the end-of-run payload posted to /submit_result.
type Result struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	TimeS   float64 `json:"time_s"`
	Outcome string  `json:"outcome"`
}

// Record is a stored result as served by /leaderboard.
type Record struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	TimeS     float64 `json:"time_s"`
	Outcome   string  `json:"outcome"`
	Timestamp string  `json:"timestamp"`
}

// NewResult builds a normalized result for a finished run.
func NewResult(name, email string, elapsed time.Duration, outcome string) Result {
	return Result{
		Name:    name,
		Email:   email,
		TimeS:   elapsed.Seconds(),
		Outcome: outcome,
	}.Normalize()
}

// Normalize trims fields and fills the defaults the service applies.
func (r Result) Normalize() Result {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		r.Name = DefaultName
	}
	r.Email = strings.TrimSpace(r.Email)
	r.Outcome = strings.TrimSpace(r.Outcome)
	if r.Outcome == "" {
		r.Outcome = OutcomeUnknown
	}
	return r
}
