// Package journal keeps a short mood history for the signed-in learner.
// Writes are best-effort: anonymous sessions skip them entirely and
// storage failures never surface to the caller.
package journal

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hajira/edumood/internal/identity"
	"github.com/hajira/edumood/internal/mood"
	"github.com/hajira/edumood/internal/store"
)

// HistoryLimit caps the in-memory and queried mood history.
const HistoryLimit = 10

// MoodEvent is one recorded mood selection.
type MoodEvent struct {
	ID        string
	Mood      mood.Mood
	Label     string
	Emoji     string
	Timestamp time.Time
}

// Identity exposes the current profile.
type Identity interface {
	Current() *identity.Profile
}

// Service records and lists mood events.
type Service struct {
	mu     sync.Mutex
	cache  []MoodEvent
	repo   store.MoodEventRepo
	ident  Identity
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a journal Service. A nil logger disables logging.
func NewService(repo store.MoodEventRepo, ident Identity, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, ident: ident, logger: logger, now: time.Now}
}

// Record persists a mood selection for the current profile and returns
// the stored event. It returns nil without error when the session is
// anonymous or the write fails; failures are only logged.
func (s *Service) Record(ctx context.Context, m mood.Mood) *MoodEvent {
	p := s.ident.Current()
	if p == nil {
		return nil
	}

	rec := &store.MoodEventRecord{
		UserID:    p.ID,
		Mood:      string(m),
		Label:     m.DisplayName(),
		Emoji:     m.Emoji(),
		Timestamp: s.now(),
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		s.logger.Warn("mood event not saved", zap.Error(err))
		return nil
	}

	ev := MoodEvent{
		ID:        rec.ID,
		Mood:      m,
		Label:     rec.Label,
		Emoji:     rec.Emoji,
		Timestamp: rec.Timestamp,
	}

	s.mu.Lock()
	s.cache = append([]MoodEvent{ev}, s.cache...)
	if len(s.cache) > HistoryLimit {
		s.cache = s.cache[:HistoryLimit]
	}
	s.mu.Unlock()

	return &ev
}

// History returns the cached mood events, newest first.
func (s *Service) History() []MoodEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]MoodEvent, len(s.cache))
	copy(out, s.cache)
	return out
}

// Refresh reloads the cache from storage for the current profile. An
// anonymous session clears the cache.
func (s *Service) Refresh(ctx context.Context) error {
	p := s.ident.Current()
	if p == nil {
		s.mu.Lock()
		s.cache = nil
		s.mu.Unlock()
		return nil
	}

	recs, err := s.repo.RecentForUser(ctx, p.ID, HistoryLimit)
	if err != nil {
		return err
	}

	events := make([]MoodEvent, len(recs))
	for i, rec := range recs {
		events[i] = MoodEvent{
			ID:        rec.ID,
			Mood:      mood.Mood(rec.Mood),
			Label:     rec.Label,
			Emoji:     rec.Emoji,
			Timestamp: rec.Timestamp,
		}
	}

	s.mu.Lock()
	s.cache = events
	s.mu.Unlock()
	return nil
}
