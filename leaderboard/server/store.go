// Package server implements the leaderboard HTTP service.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wask-game/wask/leaderboard"
)

// TimestampLayout is how submission times are rendered and stored.
const TimestampLayout = "2006-01-02 15:04:05 UTC"

const scoresKey = "scores"

// ItemStore persists opaque blobs by key. *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store is an in-memory list of results, optionally persisted as a whole
// after every write.
type Store struct {
	mu      sync.RWMutex
	records []leaderboard.Record
	items   ItemStore
	now     func() time.Time
}

// NewStore loads any previously saved records from items. A nil items keeps
// everything in memory.
func NewStore(items ItemStore) (*Store, error) {
	s := &Store{items: items, now: time.Now}
	if items == nil {
		return s, nil
	}

	data, err := items.LoadItem(scoresKey)
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		return nil, fmt.Errorf("parse scores: %w", err)
	}
	log.Printf("[leaderboard] loaded %d records", len(s.records))
	return s, nil
}

// Add normalizes and stores a result, returning the stored record.
func (s *Store) Add(res leaderboard.Result) (leaderboard.Record, error) {
	res = res.Normalize()
	rec := leaderboard.Record{
		ID:        uuid.NewString(),
		Name:      res.Name,
		Email:     res.Email,
		TimeS:     res.TimeS,
		Outcome:   res.Outcome,
		Timestamp: s.now().UTC().Format(TimestampLayout),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	if err := s.persistLocked(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return leaderboard.Record{}, err
	}
	return rec, nil
}

// List returns every record ordered by time, fastest first. Equal times keep
// submission order.
func (s *Store) List() []leaderboard.Record {
	s.mu.RLock()
	result := make([]leaderboard.Record, len(s.records))
	copy(result, s.records)
	s.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TimeS < result[j].TimeS
	})
	return result
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) persistLocked() error {
	if s.items == nil {
		return nil
	}
	data, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	if err := s.items.SaveItem(scoresKey, data); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	return nil
}
