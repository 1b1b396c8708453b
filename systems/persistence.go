package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"

	cfg "github.com/wask-game/wask/config"
)

const profileKey = "profile"

// SavedProfile is what the game remembers between launches.
type SavedProfile struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Muted     bool    `json:"muted"`
	BestTimeS float64 `json:"bestTimeS"` // fastest win, 0 if none
}

// itemStore is the subset of *gdata.Manager the profile needs.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var profileStore itemStore

// InitPersistence opens the gdata storage for the player profile.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "wask",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	profileStore = m
	return nil
}

// LoadProfile loads the saved profile. A missing store or item yields an
// empty profile.
func LoadProfile() (*SavedProfile, error) {
	profile := &SavedProfile{}
	if profileStore == nil {
		return profile, nil
	}

	data, err := profileStore.LoadItem(profileKey)
	if err != nil {
		log.Printf("Warning: Could not load profile: %v", err)
		return profile, nil
	}
	if len(data) == 0 {
		return profile, nil
	}

	if err := json.Unmarshal(data, profile); err != nil {
		log.Printf("Warning: Could not parse saved profile: %v", err)
		return &SavedProfile{}, err
	}
	return profile, nil
}

// SaveProfile writes the profile to disk.
func SaveProfile(p *SavedProfile) error {
	if profileStore == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := profileStore.SaveItem(profileKey, data); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// RememberRun folds a finished run into the profile: the player's details
// for the next name entry and, for a win, the best time.
func RememberRun(w donburi.World, p *SavedProfile) {
	s := SessionOf(w)
	if !s.Finished {
		return
	}
	p.Name = s.PlayerName
	p.Email = s.PlayerEmail
	if s.Outcome == cfg.OutcomeWin {
		t := s.FinalTime.Seconds()
		if p.BestTimeS == 0 || t < p.BestTimeS {
			p.BestTimeS = t
		}
	}
}
