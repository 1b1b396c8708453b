package leaderboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingServer struct {
	mu      sync.Mutex
	results []Result
}

func (s *recordingServer) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/submit_result", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var res Result
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&res)) {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.results = append(s.results, res)
		s.mu.Unlock()
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

func TestNewResultDefaults(t *testing.T) {
	res := NewResult("  ", " a@b.c ", 1500*time.Millisecond, OutcomeWin)
	assert.Equal(t, Result{Name: "Player", Email: "a@b.c", TimeS: 1.5, Outcome: "win"}, res)

	res = NewResult("neo", "", time.Second, "")
	assert.Equal(t, OutcomeUnknown, res.Outcome)
}

func TestHTTPReporterPostsResult(t *testing.T) {
	rec := &recordingServer{}
	srv := httptest.NewServer(rec.handler(t))
	defer srv.Close()

	r := NewHTTPReporter(srv.URL, time.Second)
	r.Report(NewResult("trinity", "t@example.com", 42*time.Second, OutcomeLose))
	r.Wait()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.results, 1)
	assert.Equal(t, "trinity", rec.results[0].Name)
	assert.Equal(t, 42.0, rec.results[0].TimeS)
	assert.Equal(t, "lose", rec.results[0].Outcome)
}

func TestHTTPReporterSwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewHTTPReporter(srv.URL, time.Second)
	assert.NotPanics(t, func() {
		r.Report(NewResult("x", "", time.Second, OutcomeWin))
		r.Wait()
	})
}

func TestHTTPReporterDoesNotBlockCaller(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	r := NewHTTPReporter(srv.URL, 200*time.Millisecond)
	start := time.Now()
	r.Report(NewResult("x", "", time.Second, OutcomeWin))
	assert.Less(t, time.Since(start), 50*time.Millisecond, "Report must return immediately")

	r.Wait()
	assert.Less(t, time.Since(start), 2*time.Second, "submission is bounded by the timeout")
}

func TestClientSubmitTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond)
	err := c.Submit(context.Background(), NewResult("x", "", time.Second, OutcomeWin))
	assert.Error(t, err)
}

func TestClientTop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leaderboard", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]Record{
			{Name: "a", TimeS: 10},
			{Name: "b", TimeS: 20},
			{Name: "c", TimeS: 30},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	records, err := c.Top(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Name)

	all, err := c.Top(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestClientUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Top(context.Background(), 0)
	assert.ErrorContains(t, err, "unexpected status: 404")
	assert.Error(t, c.SubmitLegacy(context.Background(), "x", 1))
}
