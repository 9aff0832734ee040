package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil gorm handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := s.DB().Raw("PRAGMA " + tt.pragma).Scan(&got).Error
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMoodEventInsertAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.MoodEvents()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := range 3 {
		rec := &MoodEventRecord{
			UserID:    "u1",
			Mood:      "happy",
			Label:     "Happy",
			Emoji:     "😊",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if rec.ID == "" {
			t.Fatal("Insert left ID empty")
		}
	}

	// A different user's event must not leak in.
	other := &MoodEventRecord{UserID: "u2", Mood: "sad", Label: "Sad", Emoji: "😔", Timestamp: base}
	if err := repo.Insert(ctx, other); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.RecentForUser(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("RecentForUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if !got[0].Timestamp.After(got[1].Timestamp) {
		t.Error("events not newest-first")
	}
}

func TestProgressLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	rec := &ProgressRecord{
		UserID:       "u1",
		ContentTitle: "Deep Learning Fundamentals",
		ContentType:  "Interactive Course",
		MoodContext:  "neutral",
	}
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := repo.MarkCompleted(ctx, "u1", rec.ID, 300); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}

	rows, err := repo.RecentForUser(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("RecentForUser: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	got := rows[0]
	if !got.Completed {
		t.Error("row not completed")
	}
	if got.CompletionDate == nil {
		t.Error("completion date not set")
	}
	if got.TimeSpentSeconds == nil || *got.TimeSpentSeconds != 300 {
		t.Errorf("time spent = %v, want 300", got.TimeSpentSeconds)
	}

	// Completion is one-way.
	err = repo.MarkCompleted(ctx, "u1", rec.ID, 600)
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("second completion err = %v, want ErrAlreadyCompleted", err)
	}

	// Other users cannot complete the row.
	err = repo.MarkCompleted(ctx, "u2", rec.ID, 10)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign completion err = %v, want ErrNotFound", err)
	}
}

func TestMarkCompletedMissing(t *testing.T) {
	s := openTestStore(t)

	err := s.Progress().MarkCompleted(context.Background(), "u1", "nope", 5)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Errorf("err = %T, want *PersistenceError", err)
	}
}

func TestProfileUpsertAndSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	rec := &ProfileRecord{Email: "learner@example.com", FullName: "Learner"}
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("Upsert left ID empty")
	}
	firstID := rec.ID

	// Same email keeps the row, updates the name.
	again := &ProfileRecord{Email: "learner@example.com", FullName: "Renamed"}
	if err := repo.Upsert(ctx, again); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if again.ID != firstID {
		t.Errorf("upsert created a new row: %s vs %s", again.ID, firstID)
	}

	got, err := repo.Get(ctx, firstID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FullName != "Renamed" {
		t.Errorf("full name = %q, want Renamed", got.FullName)
	}

	// No session yet.
	if _, err := repo.Current(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Current err = %v, want ErrNotFound", err)
	}

	if err := repo.SetCurrent(ctx, firstID); err != nil {
		t.Fatalf("SetCurrent: %v", err)
	}
	cur, err := repo.Current(ctx)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if cur.ID != firstID {
		t.Errorf("current = %s, want %s", cur.ID, firstID)
	}

	if err := repo.ClearCurrent(ctx); err != nil {
		t.Fatalf("ClearCurrent: %v", err)
	}
	if _, err := repo.Current(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Current after clear err = %v, want ErrNotFound", err)
	}
}

func TestMemoryMatchesSQLite(t *testing.T) {
	ctx := context.Background()

	backends := map[string]interface {
		MoodEvents() MoodEventRepo
		Progress() ProgressRepo
		Profiles() ProfileRepo
	}{
		"sqlite": openTestStore(t),
		"memory": NewMemory(),
	}

	for name, b := range backends {
		t.Run(name, func(t *testing.T) {
			for i := range 5 {
				rec := &MoodEventRecord{
					UserID:    "u1",
					Mood:      "tired",
					Label:     "Tired",
					Emoji:     "😴",
					Timestamp: time.Now().Add(time.Duration(i) * time.Second),
				}
				if err := b.MoodEvents().Insert(ctx, rec); err != nil {
					t.Fatalf("Insert %d: %v", i, err)
				}
			}

			got, err := b.MoodEvents().RecentForUser(ctx, "u1", 3)
			if err != nil {
				t.Fatalf("RecentForUser: %v", err)
			}
			if len(got) != 3 {
				t.Fatalf("got %d events, want 3", len(got))
			}

			p := &ProgressRecord{UserID: "u1", ContentTitle: "Quick Learning Bites", ContentType: "Article", MoodContext: "tired"}
			if err := b.Progress().Insert(ctx, p); err != nil {
				t.Fatalf("Insert progress: %v", err)
			}
			if err := b.Progress().MarkCompleted(ctx, "u1", p.ID, 42); err != nil {
				t.Fatalf("MarkCompleted: %v", err)
			}
			if err := b.Progress().MarkCompleted(ctx, "u1", p.ID, 42); !errors.Is(err, ErrAlreadyCompleted) {
				t.Errorf("repeat completion err = %v", err)
			}
		})
	}
}

func TestPersistenceErrorMessage(t *testing.T) {
	err := &PersistenceError{Op: "insert mood event", Err: fmt.Errorf("disk full")}
	want := "store: insert mood event: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
