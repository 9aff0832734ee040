package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyCompleted indicates a progress row was already marked
// completed. Completion is a one-way transition.
var ErrAlreadyCompleted = errors.New("progress already completed")

// PersistenceError wraps a storage failure with the operation that
// produced it. Callers treat these as best-effort failures.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// MoodEventRecord is a persisted mood selection.
type MoodEventRecord struct {
	ID        string
	UserID    string
	Mood      string
	Label     string
	Emoji     string
	Timestamp time.Time
	CreatedAt time.Time
}

// ProgressRecord is a persisted learning activity for one content item.
type ProgressRecord struct {
	ID               string
	UserID           string
	ContentTitle     string
	ContentType      string
	MoodContext      string
	Completed        bool
	CompletionDate   *time.Time
	TimeSpentSeconds *int
	CreatedAt        time.Time
}

// ProfileRecord is a persisted user identity.
type ProfileRecord struct {
	ID        string
	Email     string
	FullName  string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MoodEventRepo manages mood history rows.
type MoodEventRepo interface {
	// Insert stores a new mood event, assigning rec.ID if empty.
	Insert(ctx context.Context, rec *MoodEventRecord) error

	// RecentForUser returns up to limit events for the user,
	// newest first.
	RecentForUser(ctx context.Context, userID string, limit int) ([]MoodEventRecord, error)
}

// ProgressRepo manages learning progress rows.
type ProgressRepo interface {
	// Insert stores a new progress row, assigning rec.ID if empty.
	Insert(ctx context.Context, rec *ProgressRecord) error

	// MarkCompleted flips an incomplete row to completed, recording
	// the completion time and seconds spent. Returns ErrNotFound if
	// the row does not belong to the user, ErrAlreadyCompleted if it
	// was completed before.
	MarkCompleted(ctx context.Context, userID, id string, timeSpentSeconds int) error

	// RecentForUser returns up to limit rows for the user,
	// newest first.
	RecentForUser(ctx context.Context, userID string, limit int) ([]ProgressRecord, error)
}

// ProfileRepo manages user profiles and the locally remembered session.
type ProfileRepo interface {
	// Upsert creates or updates a profile matched by email, filling
	// rec.ID and timestamps from the stored row.
	Upsert(ctx context.Context, rec *ProfileRecord) error

	// Get returns the profile with the given id.
	Get(ctx context.Context, id string) (*ProfileRecord, error)

	// SetCurrent remembers the profile as the active session.
	SetCurrent(ctx context.Context, id string) error

	// Current returns the remembered profile, or ErrNotFound when no
	// session is active.
	Current(ctx context.Context) (*ProfileRecord, error)

	// ClearCurrent forgets the active session.
	ClearCurrent(ctx context.Context) error
}
