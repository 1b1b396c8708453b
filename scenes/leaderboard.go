package scenes

import (
	"context"
	"errors"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/leaderboard"
	"github.com/wask-game/wask/systems"
	"github.com/wask-game/wask/ui"
)

// Rows shown in the in-game table.
const leaderboardRows = 10

var errNoLeaderboard = errors.New("no leaderboard server configured")

// LeaderboardScene fetches the fastest runs in the background and lists them.
type LeaderboardScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	boardUI      *ui.LeaderboardUI
	once         sync.Once

	mu             sync.Mutex
	fetchedRecords []leaderboard.Record
	fetchErr       error
	fetchDone      bool
}

func NewLeaderboardScene(sc SceneChanger, sh *Shared) *LeaderboardScene {
	return &LeaderboardScene{sceneChanger: sc, shared: sh}
}

func (s *LeaderboardScene) Update() {
	s.once.Do(s.configure)

	in := s.shared.poll(true)
	if in.JustPressed(cfg.ActionBack) {
		_ = systems.ReturnToMenu(s.shared.World)
	} else {
		s.boardUI.Update()
	}

	// Apply fetch results on the main goroutine
	s.mu.Lock()
	if s.fetchDone {
		records := s.fetchedRecords
		err := s.fetchErr
		s.fetchDone = false
		s.fetchedRecords = nil
		s.fetchErr = nil
		s.mu.Unlock()

		s.boardUI.SetRefreshing(false)
		if err != nil {
			s.boardUI.SetStatus(err.Error())
		} else {
			s.boardUI.SetRecords(records)
			s.boardUI.SetStatus("")
		}
	} else {
		s.mu.Unlock()
	}

	follow(s.sceneChanger, s.shared, cfg.StateLeaderboard)
}

func (s *LeaderboardScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if s.boardUI == nil {
		return
	}
	s.boardUI.UI.Draw(screen)
}

func (s *LeaderboardScene) configure() {
	s.boardUI = ui.NewLeaderboardUI(
		func() { s.fetchScores() },
		func() { _ = systems.ReturnToMenu(s.shared.World) },
	)

	// Auto-fetch on scene entry
	s.fetchScores()
}

func (s *LeaderboardScene) fetchScores() {
	s.boardUI.SetStatus("Fetching scores...")
	s.boardUI.SetRefreshing(true)

	go s.queryLeaderboard()
}

func (s *LeaderboardScene) queryLeaderboard() {
	var records []leaderboard.Record
	err := errNoLeaderboard
	if client := s.shared.Client; client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Leaderboard.FetchTimeout)
		records, err = client.Top(ctx, leaderboardRows)
		cancel()
	}
	if err != nil {
		log.Printf("[leaderboard] fetch failed: %v", err)
	}

	s.mu.Lock()
	s.fetchedRecords = records
	s.fetchErr = err
	s.fetchDone = true
	s.mu.Unlock()
}
