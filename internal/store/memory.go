package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process implementation of the repositories. It backs
// the ephemeral storage mode and keeps service tests free of SQLite.
type Memory struct {
	mu        sync.Mutex
	moods     []MoodEventRecord
	progress  []ProgressRecord
	profiles  map[string]ProfileRecord
	currentID string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{profiles: make(map[string]ProfileRecord)}
}

// MoodEvents returns the in-memory MoodEventRepo.
func (m *Memory) MoodEvents() MoodEventRepo { return (*memMoodRepo)(m) }

// Progress returns the in-memory ProgressRepo.
func (m *Memory) Progress() ProgressRepo { return (*memProgressRepo)(m) }

// Profiles returns the in-memory ProfileRepo.
func (m *Memory) Profiles() ProfileRepo { return (*memProfileRepo)(m) }

type memMoodRepo Memory

func (r *memMoodRepo) Insert(_ context.Context, rec *MoodEventRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	r.moods = append(r.moods, *rec)
	return nil
}

func (r *memMoodRepo) RecentForUser(_ context.Context, userID string, limit int) ([]MoodEventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []MoodEventRecord
	for _, rec := range r.moods {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memProgressRepo Memory

func (r *memProgressRepo) Insert(_ context.Context, rec *ProgressRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	r.progress = append(r.progress, *rec)
	return nil
}

func (r *memProgressRepo) MarkCompleted(_ context.Context, userID, id string, timeSpentSeconds int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.progress {
		rec := &r.progress[i]
		if rec.ID != id || rec.UserID != userID {
			continue
		}
		if rec.Completed {
			return &PersistenceError{Op: "complete progress", Err: ErrAlreadyCompleted}
		}
		now := time.Now()
		rec.Completed = true
		rec.CompletionDate = &now
		spent := timeSpentSeconds
		rec.TimeSpentSeconds = &spent
		return nil
	}
	return &PersistenceError{Op: "complete progress", Err: ErrNotFound}
}

func (r *memProgressRepo) RecentForUser(_ context.Context, userID string, limit int) ([]ProgressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []ProgressRecord
	for _, rec := range r.progress {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memProfileRepo Memory

func (r *memProfileRepo) Upsert(_ context.Context, rec *ProfileRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for id, p := range r.profiles {
		if p.Email == rec.Email {
			p.FullName = rec.FullName
			p.AvatarURL = rec.AvatarURL
			p.UpdatedAt = now
			r.profiles[id] = p
			*rec = p
			return nil
		}
	}

	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	r.profiles[rec.ID] = *rec
	return nil
}

func (r *memProfileRepo) Get(_ context.Context, id string) (*ProfileRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, &PersistenceError{Op: "get profile", Err: ErrNotFound}
	}
	return &p, nil
}

func (r *memProfileRepo) SetCurrent(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.currentID = id
	return nil
}

func (r *memProfileRepo) Current(_ context.Context) (*ProfileRecord, error) {
	r.mu.Lock()
	id := r.currentID
	r.mu.Unlock()

	if id == "" {
		return nil, &PersistenceError{Op: "get session", Err: ErrNotFound}
	}
	return r.Get(context.Background(), id)
}

func (r *memProfileRepo) ClearCurrent(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.currentID = ""
	return nil
}
