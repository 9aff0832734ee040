package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/hajira/edumood/internal/identity"
	"github.com/hajira/edumood/internal/mood"
	"github.com/hajira/edumood/internal/store"
)

type fixedIdentity struct {
	profile *identity.Profile
}

func (f fixedIdentity) Current() *identity.Profile { return f.profile }

func signedIn() Identity {
	return fixedIdentity{profile: &identity.Profile{ID: "u1", Email: "a@b.co"}}
}

type failingProgressRepo struct{}

func (failingProgressRepo) Insert(context.Context, *store.ProgressRecord) error {
	return errors.New("disk full")
}

func (failingProgressRepo) MarkCompleted(context.Context, string, string, int) error {
	return errors.New("disk full")
}

func (failingProgressRepo) RecentForUser(context.Context, string, int) ([]store.ProgressRecord, error) {
	return nil, errors.New("disk full")
}

func TestBeginAnonymousNoOp(t *testing.T) {
	mem := store.NewMemory()
	svc := NewService(mem.Progress(), fixedIdentity{}, nil)

	if r := svc.Begin(context.Background(), "T", "Video", mood.Happy); r != nil {
		t.Errorf("Begin returned %+v for anonymous session", r)
	}
}

func TestBeginFinishLifecycle(t *testing.T) {
	mem := store.NewMemory()
	svc := NewService(mem.Progress(), signedIn(), nil)
	ctx := context.Background()

	r := svc.Begin(ctx, "Fun Python Projects", "Interactive Tutorial", mood.Sad)
	if r == nil {
		t.Fatal("Begin returned nil")
	}
	if r.Completed {
		t.Error("record born completed")
	}

	svc.Finish(ctx, r.ID, 125)

	got := svc.History()
	if len(got) != 1 {
		t.Fatalf("history length = %d, want 1", len(got))
	}
	if !got[0].Completed || got[0].TimeSpentSeconds != 125 {
		t.Errorf("record = %+v, want completed with 125s", got[0])
	}

	rows, err := mem.Progress().RecentForUser(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("RecentForUser: %v", err)
	}
	if !rows[0].Completed || rows[0].CompletionDate == nil {
		t.Errorf("stored row = %+v, want completed", rows[0])
	}
}

func TestFinishOnlyOnce(t *testing.T) {
	mem := store.NewMemory()
	svc := NewService(mem.Progress(), signedIn(), nil)
	ctx := context.Background()

	r := svc.Begin(ctx, "T", "Video", mood.Neutral)
	svc.Finish(ctx, r.ID, 10)
	svc.Finish(ctx, r.ID, 999)

	rows, _ := mem.Progress().RecentForUser(ctx, "u1", 0)
	if *rows[0].TimeSpentSeconds != 10 {
		t.Errorf("time spent = %d, want first completion kept", *rows[0].TimeSpentSeconds)
	}
}

func TestBeginSwallowsFailure(t *testing.T) {
	svc := NewService(failingProgressRepo{}, signedIn(), nil)

	if r := svc.Begin(context.Background(), "T", "Video", mood.Happy); r != nil {
		t.Errorf("failed Begin returned %+v, want nil", r)
	}
	if len(svc.History()) != 0 {
		t.Error("failed Begin reached the cache")
	}
}

func TestHistoryCap(t *testing.T) {
	svc := NewService(store.NewMemory().Progress(), signedIn(), nil)
	ctx := context.Background()

	for range HistoryLimit + 7 {
		if svc.Begin(ctx, "T", "Video", mood.Happy) == nil {
			t.Fatal("Begin failed")
		}
	}
	if got := len(svc.History()); got != HistoryLimit {
		t.Errorf("history length = %d, want %d", got, HistoryLimit)
	}
}

func TestCompletionStats(t *testing.T) {
	svc := NewService(store.NewMemory().Progress(), signedIn(), nil)
	ctx := context.Background()

	if st := svc.CompletionStats(); st != (Stats{}) {
		t.Errorf("empty stats = %+v, want zero", st)
	}

	var ids []string
	for range 3 {
		r := svc.Begin(ctx, "T", "Video", mood.Happy)
		ids = append(ids, r.ID)
	}
	svc.Finish(ctx, ids[0], 5)

	st := svc.CompletionStats()
	if st.Total != 3 || st.Completed != 1 {
		t.Fatalf("stats = %+v", st)
	}
	if st.CompletionRate != 33 {
		t.Errorf("rate = %d, want 33", st.CompletionRate)
	}

	svc.Finish(ctx, ids[1], 5)
	if st := svc.CompletionStats(); st.CompletionRate != 67 {
		t.Errorf("rate = %d, want 67", st.CompletionRate)
	}
}

func TestRefreshAnonymousClears(t *testing.T) {
	svc := NewService(store.NewMemory().Progress(), signedIn(), nil)
	svc.Begin(context.Background(), "T", "Video", mood.Happy)

	svc.ident = fixedIdentity{}
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(svc.History()) != 0 {
		t.Error("anonymous refresh kept stale history")
	}
}
