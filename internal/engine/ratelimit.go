package engine

import (
	"context"

	"golang.org/x/time/rate"
)

// youtubeLimiter paces requests against youtube.com so transcript bursts do
// not trip YouTube's per-IP throttling. Nil when rate limiting is disabled.
var youtubeLimiter *rate.Limiter

func initYouTubeLimiter(perSecond float64, burst int) {
	if perSecond <= 0 {
		youtubeLimiter = nil
		return
	}
	if burst < 1 {
		burst = 1
	}
	youtubeLimiter = rate.NewLimiter(rate.Limit(perSecond), burst)
}

// WaitYouTube blocks until the limiter grants a slot or ctx is cancelled.
func WaitYouTube(ctx context.Context) error {
	if youtubeLimiter == nil {
		return nil
	}
	return youtubeLimiter.Wait(ctx)
}
