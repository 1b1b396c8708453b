package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/wask-game/wask/leaderboard"
)

const maxRequestBody = 1 << 16 // 64 KB

type submitResponse struct {
	Status   string             `json:"status"`
	Received leaderboard.Result `json:"received"`
}

type legacyRequest struct {
	Name  string   `json:"name"`
	Score *float64 `json:"score"`
	TimeS *float64 `json:"time_s"`
}

// NewRouter wires every leaderboard endpoint.
func NewRouter(store *Store) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", Index(store)).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard", ListScores(store)).Methods(http.MethodGet)
	r.HandleFunc("/submit_result", SubmitResult(store)).Methods(http.MethodPost)
	r.HandleFunc("/submit", SubmitLegacy(store)).Methods(http.MethodPost)
	r.HandleFunc("/health", Health()).Methods(http.MethodGet)
	return r
}

func ListScores(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if err := json.NewEncoder(w).Encode(store.List()); err != nil {
			log.Printf("[leaderboard] list encode error: %v", err)
		}
	}
}

func SubmitResult(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req leaderboard.Result
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}
		if req.TimeS < 0 {
			http.Error(w, `{"error":"time_s must not be negative"}`, http.StatusBadRequest)
			return
		}

		rec, err := store.Add(req)
		if err != nil {
			log.Printf("[leaderboard] store error: %v", err)
			http.Error(w, `{"error":"storage failure"}`, http.StatusInternalServerError)
			return
		}
		log.Printf("[leaderboard] %s: %q %.2fs (id=%s)", rec.Outcome, rec.Name, rec.TimeS, rec.ID)

		_ = json.NewEncoder(w).Encode(submitResponse{
			Status: "ok",
			Received: leaderboard.Result{
				Name:    rec.Name,
				Email:   rec.Email,
				TimeS:   rec.TimeS,
				Outcome: rec.Outcome,
			},
		})
	}
}

// SubmitLegacy accepts the older {name, score} payload. time_s is accepted in
// place of score.
func SubmitLegacy(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req legacyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			http.Error(w, `{"error":"name required"}`, http.StatusBadRequest)
			return
		}

		var score float64
		switch {
		case req.Score != nil:
			score = *req.Score
		case req.TimeS != nil:
			score = *req.TimeS
		default:
			http.Error(w, `{"error":"score required"}`, http.StatusBadRequest)
			return
		}

		if _, err := store.Add(leaderboard.Result{Name: req.Name, TimeS: score}); err != nil {
			log.Printf("[leaderboard] store error: %v", err)
			http.Error(w, `{"error":"storage failure"}`, http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("OK"))
	}
}
