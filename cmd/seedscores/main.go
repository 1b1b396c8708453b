// Command seedscores posts a handful of scores to a running leaderboard
// through the legacy /submit endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/wask-game/wask/leaderboard"
)

func parseEntry(s string) (string, float64, error) {
	name, score, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(name) == "" {
		return "", 0, fmt.Errorf("entry %q: want name:seconds", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(score), 64)
	if err != nil {
		return "", 0, fmt.Errorf("entry %q: %w", s, err)
	}
	return strings.TrimSpace(name), v, nil
}

func main() {
	url := flag.String("url", "http://127.0.0.1:5000", "Leaderboard base URL")
	timeout := flag.Duration("timeout", 5*time.Second, "Per-request timeout")
	flag.Parse()

	entries := flag.Args()
	if len(entries) == 0 {
		entries = []string{"Alice:100", "Bob:150", "Charlie:120"}
	}

	client := leaderboard.NewClient(*url, *timeout)
	for _, e := range entries {
		name, score, err := parseEntry(e)
		if err != nil {
			log.Fatalf("[seed] %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		err = client.SubmitLegacy(ctx, name, score)
		cancel()
		if err != nil {
			log.Fatalf("[seed] %s: %v", name, err)
		}
		log.Printf("[seed] submitted %s %.2f", name, score)
	}

	top, err := client.Top(context.Background(), 10)
	if err != nil {
		log.Fatalf("[seed] fetch: %v", err)
	}
	for i, rec := range top {
		fmt.Printf("%2d. %-20s %8.2f %s\n", i+1, rec.Name, rec.TimeS, rec.Outcome)
	}
}
