// Package progress tracks learning activity per content item: one row
// when a lesson is opened, flipped to completed at most once.
package progress

import (
	"context"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hajira/edumood/internal/identity"
	"github.com/hajira/edumood/internal/mood"
	"github.com/hajira/edumood/internal/store"
)

// HistoryLimit caps the in-memory and queried progress history.
const HistoryLimit = 20

// Record is one tracked learning activity.
type Record struct {
	ID               string
	ContentTitle     string
	ContentType      string
	Mood             mood.Mood
	Completed        bool
	CompletionDate   *time.Time
	TimeSpentSeconds int
	StartedAt        time.Time
}

// Stats summarizes completion over the recent history.
type Stats struct {
	Total          int
	Completed      int
	CompletionRate int // percent, rounded
}

// Identity exposes the current profile.
type Identity interface {
	Current() *identity.Profile
}

// Service records and lists learning progress. Like the mood journal,
// writes are best-effort and anonymous sessions skip them.
type Service struct {
	mu     sync.Mutex
	cache  []Record
	repo   store.ProgressRepo
	ident  Identity
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a progress Service. A nil logger disables logging.
func NewService(repo store.ProgressRepo, ident Identity, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, ident: ident, logger: logger, now: time.Now}
}

// Begin records that a lesson was opened and returns the new Record. It
// returns nil when the session is anonymous or the write fails.
func (s *Service) Begin(ctx context.Context, title, contentType string, m mood.Mood) *Record {
	p := s.ident.Current()
	if p == nil {
		return nil
	}

	rec := &store.ProgressRecord{
		UserID:       p.ID,
		ContentTitle: title,
		ContentType:  contentType,
		MoodContext:  string(m),
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		s.logger.Warn("progress not saved", zap.Error(err))
		return nil
	}

	r := Record{
		ID:           rec.ID,
		ContentTitle: title,
		ContentType:  contentType,
		Mood:         m,
		StartedAt:    rec.CreatedAt,
	}

	s.mu.Lock()
	s.cache = append([]Record{r}, s.cache...)
	if len(s.cache) > HistoryLimit {
		s.cache = s.cache[:HistoryLimit]
	}
	s.mu.Unlock()

	return &r
}

// Finish marks the record completed with the time spent. Failures are
// only logged; a record can complete at most once.
func (s *Service) Finish(ctx context.Context, id string, timeSpentSeconds int) {
	p := s.ident.Current()
	if p == nil || id == "" {
		return
	}

	if err := s.repo.MarkCompleted(ctx, p.ID, id, timeSpentSeconds); err != nil {
		s.logger.Warn("progress completion not saved",
			zap.String("progress_id", id),
			zap.Error(err))
		return
	}

	now := s.now()
	s.mu.Lock()
	for i := range s.cache {
		if s.cache[i].ID == id {
			s.cache[i].Completed = true
			s.cache[i].CompletionDate = &now
			s.cache[i].TimeSpentSeconds = timeSpentSeconds
			break
		}
	}
	s.mu.Unlock()
}

// History returns the cached records, newest first.
func (s *Service) History() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.cache))
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

	records := make([]Record, len(recs))
	for i, rec := range recs {
		r := Record{
			ID:             rec.ID,
			ContentTitle:   rec.ContentTitle,
			ContentType:    rec.ContentType,
			Mood:           mood.Mood(rec.MoodContext),
			Completed:      rec.Completed,
			CompletionDate: rec.CompletionDate,
			StartedAt:      rec.CreatedAt,
		}
		if rec.TimeSpentSeconds != nil {
			r.TimeSpentSeconds = *rec.TimeSpentSeconds
		}
		records[i] = r
	}

	s.mu.Lock()
	s.cache = records
	s.mu.Unlock()
	return nil
}

// CompletionStats summarizes the cached history. An empty history
// reports a zero rate.
func (s *Service) CompletionStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Total: len(s.cache)}
	for _, r := range s.cache {
		if r.Completed {
			st.Completed++
		}
	}
	if st.Total > 0 {
		st.CompletionRate = int(math.Round(100 * float64(st.Completed) / float64(st.Total)))
	}
	return st
}
