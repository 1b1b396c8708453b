package leaderboard

import (
	"context"
	"log"
	"sync"
	"time"
)

// Reporter receives finished runs. Report must not block the caller.
type Reporter interface {
	Report(Result)
}

// NopReporter drops every result. Used when no leaderboard is configured.
type NopReporter struct{}

func (NopReporter) Report(Result) {}

// HTTPReporter submits results in the background. Failures are logged and
// dropped; there is no retry.
type HTTPReporter struct {
	client  *Client
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewHTTPReporter(baseURL string, timeout time.Duration) *HTTPReporter {
	return &HTTPReporter{
		client:  NewClient(baseURL, timeout),
		timeout: timeout,
	}
}

func (r *HTTPReporter) Report(res Result) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := r.client.Submit(ctx, res); err != nil {
			log.Printf("[leaderboard] submit %s result failed: %v", res.Outcome, err)
			return
		}
		log.Printf("[leaderboard] submitted %s result for %q (%.2fs)", res.Outcome, res.Name, res.TimeS)
	}()
}

// Wait blocks until every in-flight submission has finished. Call it on
// shutdown so a last result is not cut off.
func (r *HTTPReporter) Wait() {
	r.wg.Wait()
}
