package systems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems struct {
	items map[string][]byte
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	m.items[key] = append([]byte(nil), data...)
	return nil
}

type failingItems struct {
	memItems
	err error
}

func (f *failingItems) SaveItem(string, []byte) error {
	return f.err
}

func useMemStore(t *testing.T) *memItems {
	t.Helper()
	prev := profileStore
	store := &memItems{items: map[string][]byte{}}
	profileStore = store
	t.Cleanup(func() { profileStore = prev })
	return store
}

func TestLoadProfileWithoutSave(t *testing.T) {
	useMemStore(t)
	p, err := LoadProfile()
	require.NoError(t, err)
	assert.Equal(t, &SavedProfile{}, p)
}

func TestProfileSurvivesRestart(t *testing.T) {
	useMemStore(t)
	require.NoError(t, SaveProfile(&SavedProfile{Name: "Ada", Email: "ada@example.com", Muted: true, BestTimeS: 42.5}))

	p, err := LoadProfile()
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
	assert.True(t, p.Muted)
	assert.Equal(t, 42.5, p.BestTimeS)
}

func TestSaveProfileReportsStoreFailure(t *testing.T) {
	prev := profileStore
	t.Cleanup(func() { profileStore = prev })
	diskFull := errors.New("disk full")
	profileStore = &failingItems{memItems: memItems{items: map[string][]byte{}}, err: diskFull}

	err := SaveProfile(&SavedProfile{Name: "Ada"})

	require.Error(t, err)
	assert.ErrorIs(t, err, diskFull)
	assert.Contains(t, err.Error(), "save profile")
}

func TestLoadProfileCorrupt(t *testing.T) {
	store := useMemStore(t)
	store.items[profileKey] = []byte("{not json")

	p, err := LoadProfile()
	assert.Error(t, err)
	assert.Equal(t, &SavedProfile{}, p)
}

func TestRememberRunKeepsBestWin(t *testing.T) {
	w, _ := newRun(t)
	p := &SavedProfile{BestTimeS: 5}

	RememberRun(w, p)
	assert.Empty(t, p.Name, "an unfinished run is not remembered")

	for i := 0; i < 10*60; i++ {
		Step(w)
	}
	Victory(w)
	RememberRun(w, p)
	assert.Equal(t, "Tester", p.Name)
	assert.Equal(t, "tester@example.com", p.Email)
	assert.Equal(t, 5.0, p.BestTimeS, "slower win keeps the record")

	p.BestTimeS = 0
	RememberRun(w, p)
	assert.InDelta(t, 10.0, p.BestTimeS, 1e-6)
}

func TestRememberRunIgnoresLossTime(t *testing.T) {
	w, _ := newRun(t)
	loseLastLife(t, w, 380)

	p := &SavedProfile{}
	RememberRun(w, p)
	assert.Equal(t, "Tester", p.Name)
	assert.Zero(t, p.BestTimeS)
}
