package limiter

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/olusolaa/filelog/internal/core/ports"
)

const (
	minRPS = 1
	maxRPS = 10000
)

// Limiter paces ingested lines. A zero rate means unlimited.
type Limiter struct {
	limiter *rate.Limiter
	logger  ports.Logger
	rps     int
}

func New(ctx context.Context, rps int, logger ports.Logger) *Limiter {
	switch {
	case rps == 0:
		logger.Debugf(ctx, "Ingest rate limiting disabled")
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 0), logger: logger}
	case rps < minRPS || rps > maxRPS:
		clamped := min(max(rps, minRPS), maxRPS)
		logger.Warnf(ctx, "Invalid ingest RPS configured (%d), using %d RPS. Valid range: %d-%d.", rps, clamped, minRPS, maxRPS)
		rps = clamped
	}

	logger.Infof(ctx, "Ingest rate limiter initialized: %d RPS", rps)
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		logger:  logger,
		rps:     rps,
	}
}

func (l *Limiter) RPS() int {
	return l.rps
}

func (l *Limiter) Wait(ctx context.Context) error {
	err := l.limiter.Wait(ctx)
	if err != nil {
		if ctx.Err() == nil {
			l.logger.Warnf(ctx, "Error waiting for ingest rate limiter: %v", err)
		}
		return err
	}
	return nil
}
