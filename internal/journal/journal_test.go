package journal

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hajira/edumood/internal/identity"
	"github.com/hajira/edumood/internal/mood"
	"github.com/hajira/edumood/internal/store"
)

type fixedIdentity struct {
	profile *identity.Profile
}

func (f fixedIdentity) Current() *identity.Profile { return f.profile }

type failingMoodRepo struct{}

func (failingMoodRepo) Insert(context.Context, *store.MoodEventRecord) error {
	return &store.PersistenceError{Op: "insert mood event", Err: errors.New("disk full")}
}

func (failingMoodRepo) RecentForUser(context.Context, string, int) ([]store.MoodEventRecord, error) {
	return nil, errors.New("unreachable")
}

func signedIn() Identity {
	return fixedIdentity{profile: &identity.Profile{ID: "u1", Email: "a@b.co"}}
}

func TestRecordAnonymousNoOp(t *testing.T) {
	mem := store.NewMemory()
	svc := NewService(mem.MoodEvents(), fixedIdentity{}, nil)

	if ev := svc.Record(context.Background(), mood.Happy); ev != nil {
		t.Errorf("Record returned %+v for anonymous session", ev)
	}
	rows, _ := mem.MoodEvents().RecentForUser(context.Background(), "u1", 0)
	if len(rows) != 0 {
		t.Errorf("anonymous record wrote %d rows", len(rows))
	}
}

func TestRecordStoresEvent(t *testing.T) {
	mem := store.NewMemory()
	svc := NewService(mem.MoodEvents(), signedIn(), nil)

	ev := svc.Record(context.Background(), mood.Angry)
	if ev == nil {
		t.Fatal("Record returned nil")
	}
	if ev.Label != "Angry" || ev.Emoji != "😠" {
		t.Errorf("event = %+v, want angry label and emoji", ev)
	}

	rows, err := mem.MoodEvents().RecentForUser(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("RecentForUser: %v", err)
	}
	if len(rows) != 1 || rows[0].Mood != "angry" {
		t.Errorf("stored rows = %+v", rows)
	}
}

func TestRecordSwallowsFailure(t *testing.T) {
	svc := NewService(failingMoodRepo{}, signedIn(), nil)

	if ev := svc.Record(context.Background(), mood.Sad); ev != nil {
		t.Errorf("failed record returned %+v, want nil", ev)
	}
	if len(svc.History()) != 0 {
		t.Error("failed record reached the cache")
	}
}

func TestHistoryCap(t *testing.T) {
	svc := NewService(store.NewMemory().MoodEvents(), signedIn(), nil)

	tick := time.Now()
	svc.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	for i := range HistoryLimit + 5 {
		m := mood.AllMoods()[i%len(mood.AllMoods())]
		if svc.Record(context.Background(), m) == nil {
			t.Fatalf("Record %d failed", i)
		}
	}

	got := svc.History()
	if len(got) != HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(got), HistoryLimit)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Timestamp.After(got[i-1].Timestamp) {
			t.Fatal("history not newest-first")
		}
	}
}

func TestRefresh(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := range HistoryLimit + 3 {
		rec := &store.MoodEventRecord{
			ID:        fmt.Sprintf("ev-%d", i),
			UserID:    "u1",
			Mood:      "tired",
			Label:     "Tired",
			Emoji:     "😴",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		if err := mem.MoodEvents().Insert(ctx, rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	svc := NewService(mem.MoodEvents(), signedIn(), nil)
	if err := svc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	got := svc.History()
	if len(got) != HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(got), HistoryLimit)
	}
	if got[0].ID != fmt.Sprintf("ev-%d", HistoryLimit+2) {
		t.Errorf("newest event = %s", got[0].ID)
	}
}

func TestRefreshAnonymousClears(t *testing.T) {
	mem := store.NewMemory()
	svc := NewService(mem.MoodEvents(), signedIn(), nil)
	svc.Record(context.Background(), mood.Happy)

	svc.ident = fixedIdentity{}
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(svc.History()) != 0 {
		t.Error("anonymous refresh kept stale history")
	}
}
