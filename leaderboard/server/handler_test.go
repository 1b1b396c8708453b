package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wask-game/wask/leaderboard"
)

func newTestRouter(t *testing.T) (http.Handler, *Store) {
	t.Helper()
	s, err := NewStore(nil)
	require.NoError(t, err)
	return NewRouter(s), s
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSubmitResult_StoresAndEchoes(t *testing.T) {
	h, s := newTestRouter(t)

	w := do(h, http.MethodPost, "/submit_result", `{"name":"Ada","email":"ada@example.com","time_s":42.5,"outcome":"win"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp submitResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "Ada", resp.Received.Name)
	assert.Equal(t, 42.5, resp.Received.TimeS)
	assert.Equal(t, "win", resp.Received.Outcome)
	assert.Equal(t, 1, s.Len())
}

func TestSubmitResult_Defaults(t *testing.T) {
	h, s := newTestRouter(t)

	w := do(h, http.MethodPost, "/submit_result", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, leaderboard.DefaultName, list[0].Name)
	assert.Equal(t, leaderboard.OutcomeUnknown, list[0].Outcome)
	assert.Equal(t, 0.0, list[0].TimeS)
}

func TestSubmitResult_Rejects(t *testing.T) {
	h, s := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPost, "/submit_result", `{bad`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPost, "/submit_result", `{"time_s":-1}`).Code)

	huge := `{"name":"` + strings.Repeat("a", maxRequestBody) + `"}`
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPost, "/submit_result", huge).Code)

	assert.Equal(t, 0, s.Len())
}

func TestSubmitResult_WrongMethod(t *testing.T) {
	h, _ := newTestRouter(t)
	assert.Equal(t, http.StatusMethodNotAllowed, do(h, http.MethodGet, "/submit_result", "").Code)
}

func TestSubmitLegacy(t *testing.T) {
	h, s := newTestRouter(t)

	w := do(h, http.MethodPost, "/submit", `{"name":"Bob","score":33}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())

	w = do(h, http.MethodPost, "/submit", `{"name":"Cy","time_s":21}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPost, "/submit", `{"score":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPost, "/submit", `{"name":"Dee"}`).Code)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Cy", list[0].Name)
	assert.Equal(t, "Bob", list[1].Name)
	assert.Equal(t, leaderboard.OutcomeUnknown, list[1].Outcome)
}

func TestListScores_Sorted(t *testing.T) {
	h, _ := newTestRouter(t)
	do(h, http.MethodPost, "/submit_result", `{"name":"b","time_s":50}`)
	do(h, http.MethodPost, "/submit_result", `{"name":"a","time_s":10}`)

	w := do(h, http.MethodGet, "/leaderboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var list []leaderboard.Record
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name)
	assert.NotEmpty(t, list[0].ID)
	assert.NotEmpty(t, list[0].Timestamp)
}

func TestListScores_EmptyIsArray(t *testing.T) {
	h, _ := newTestRouter(t)
	w := do(h, http.MethodGet, "/leaderboard", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestIndex_PodiumRows(t *testing.T) {
	h, _ := newTestRouter(t)
	for _, body := range []string{
		`{"name":"first","time_s":1}`,
		`{"name":"second","time_s":2}`,
		`{"name":"third","time_s":3}`,
		`{"name":"<fourth>","time_s":4}`,
	} {
		do(h, http.MethodPost, "/submit_result", body)
	}

	w := do(h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	page := w.Body.String()
	assert.Contains(t, page, `class="gold"`)
	assert.Contains(t, page, `class="silver"`)
	assert.Contains(t, page, `class="bronze"`)
	assert.Contains(t, page, `class="normal-row"`)
	assert.Contains(t, page, "&lt;fourth&gt;")
	assert.Less(t, strings.Index(page, "first"), strings.Index(page, "second"))
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)
	w := do(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
