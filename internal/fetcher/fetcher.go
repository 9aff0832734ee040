// Package fetcher serves mood-matched content recommendations through a
// simulated remote boundary: a randomized delay, a failure dice roll, and
// a JSON round-trip validated against the response schema.
package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/hajira/edumood/internal/catalog"
	"github.com/hajira/edumood/internal/mood"
)

// Config controls the simulated service behavior.
type Config struct {
	// MinDelay and MaxDelay bound the uniform random latency per fetch.
	MinDelay time.Duration
	MaxDelay time.Duration
	// FailureRate is the probability in [0, 1] that a fetch fails with
	// a TransientError after its delay elapses.
	FailureRate float64
}

// DefaultConfig matches the production service profile.
func DefaultConfig() Config {
	return Config{
		MinDelay:    time.Second,
		MaxDelay:    2 * time.Second,
		FailureRate: 0.10,
	}
}

// Fetcher retrieves content recommendations for a mood.
type Fetcher struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a Fetcher. A nil logger disables logging.
func New(cfg Config, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxDelay < cfg.MinDelay {
		cfg.MaxDelay = cfg.MinDelay
	}
	return &Fetcher{cfg: cfg, logger: logger}
}

// Fetch returns the recommendation list for the given mood. The result is
// all-or-nothing: on error no partial list is returned. Failures are
// *TransientError; context cancellation surfaces as ctx.Err().
func (f *Fetcher) Fetch(ctx context.Context, m mood.Mood) ([]catalog.Summary, error) {
	delay := f.cfg.MinDelay
	if spread := f.cfg.MaxDelay - f.cfg.MinDelay; spread > 0 {
		delay += time.Duration(rand.Int64N(int64(spread) + 1))
	}

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	if rand.Float64() < f.cfg.FailureRate {
		f.logger.Warn("content fetch failed", zap.String("mood", string(m)))
		return nil, &TransientError{Err: errors.New("simulated upstream outage")}
	}

	items := catalog.ListFor(m)
	if items == nil {
		items = []catalog.Summary{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, &TransientError{Err: fmt.Errorf("encode payload: %w", err)}
	}
	if err := validatePayload(raw); err != nil {
		return nil, &TransientError{Err: err}
	}

	var decoded []catalog.Summary
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &TransientError{Err: fmt.Errorf("decode payload: %w", err)}
	}

	f.logger.Debug("content fetched",
		zap.String("mood", string(m)),
		zap.Int("items", len(decoded)),
		zap.Duration("delay", delay))
	return decoded, nil
}
