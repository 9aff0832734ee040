package flow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hajira/edumood/internal/catalog"
	"github.com/hajira/edumood/internal/fetcher"
	"github.com/hajira/edumood/internal/identity"
	"github.com/hajira/edumood/internal/journal"
	"github.com/hajira/edumood/internal/mood"
	"github.com/hajira/edumood/internal/progress"
	"github.com/hajira/edumood/internal/store"
)

type stubFetcher struct {
	items []catalog.Summary
	err   error
}

func (s *stubFetcher) Fetch(context.Context, mood.Mood) ([]catalog.Summary, error) {
	return s.items, s.err
}

type recordingOpener struct {
	urls []string
	err  error
}

func (r *recordingOpener) Open(url string) error {
	r.urls = append(r.urls, url)
	return r.err
}

type fixture struct {
	orch    *Orchestrator
	mem     *store.Memory
	opener  *recordingOpener
	fetcher *stubFetcher
}

func newFixture(t *testing.T, signedIn bool) *fixture {
	t.Helper()

	mem := store.NewMemory()
	ident := identity.NewService(mem.Profiles(), nil)
	if signedIn {
		if _, err := ident.SignIn(context.Background(), "learner@example.com", "Learner"); err != nil {
			t.Fatalf("SignIn: %v", err)
		}
	}

	f := &stubFetcher{items: catalog.ListFor(mood.Happy)}
	op := &recordingOpener{}
	orch := New(f,
		journal.NewService(mem.MoodEvents(), ident, nil),
		progress.NewService(mem.Progress(), ident, nil),
		op, nil)

	return &fixture{orch: orch, mem: mem, opener: op, fetcher: f}
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func selectAndLoad(t *testing.T, fx *fixture, m mood.Mood) {
	t.Helper()
	fetch, err := fx.orch.SelectMood(context.Background(), m)
	if err != nil {
		t.Fatalf("SelectMood: %v", err)
	}
	if !fx.orch.ApplyFetch(fetch()) {
		t.Fatal("fresh fetch result discarded")
	}
}

func TestSelectMoodLoadsContent(t *testing.T) {
	fx := newFixture(t, false)

	fetch, err := fx.orch.SelectMood(context.Background(), mood.Happy)
	if err != nil {
		t.Fatalf("SelectMood: %v", err)
	}
	if fx.orch.State() != StateContentLoading {
		t.Fatalf("state = %s, want loading", fx.orch.State())
	}

	if !fx.orch.ApplyFetch(fetch()) {
		t.Fatal("fetch result discarded")
	}
	if fx.orch.State() != StateContentReady {
		t.Fatalf("state = %s, want ready", fx.orch.State())
	}
	if got := fx.orch.Content(); len(got) != len(catalog.ListFor(mood.Happy)) {
		t.Errorf("content length = %d", len(got))
	}
}

func TestSelectMoodRejectsUnknown(t *testing.T) {
	fx := newFixture(t, false)

	if _, err := fx.orch.SelectMood(context.Background(), mood.Mood("bewildered")); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestFetchFailureShowsMessage(t *testing.T) {
	fx := newFixture(t, false)
	fx.fetcher.err = &fetcher.TransientError{Err: errors.New("outage")}

	selectAndLoad(t, fx, mood.Happy)

	if fx.orch.State() != StateContentError {
		t.Fatalf("state = %s, want error", fx.orch.State())
	}
	if fx.orch.ErrorMessage() != ContentErrorMessage {
		t.Errorf("message = %q", fx.orch.ErrorMessage())
	}
	if len(fx.orch.Content()) != 0 {
		t.Error("error state still exposes content")
	}
}

func TestLastSelectionWins(t *testing.T) {
	fx := newFixture(t, false)
	ctx := context.Background()

	fx.fetcher.items = catalog.ListFor(mood.Happy)
	firstFetch, err := fx.orch.SelectMood(ctx, mood.Happy)
	if err != nil {
		t.Fatalf("SelectMood: %v", err)
	}
	first := firstFetch()

	fx.fetcher.items = catalog.ListFor(mood.Sad)
	secondFetch, err := fx.orch.SelectMood(ctx, mood.Sad)
	if err != nil {
		t.Fatalf("SelectMood: %v", err)
	}
	second := secondFetch()

	// Newer result lands first; the older one must be dropped.
	if !fx.orch.ApplyFetch(second) {
		t.Fatal("current result discarded")
	}
	if fx.orch.ApplyFetch(first) {
		t.Fatal("stale result applied")
	}

	if fx.orch.SelectedMood() != mood.Sad {
		t.Errorf("selected = %s, want sad", fx.orch.SelectedMood())
	}
	if got, want := len(fx.orch.Content()), len(catalog.ListFor(mood.Sad)); got != want {
		t.Errorf("content length = %d, want %d", got, want)
	}
}

func TestStaleErrorDoesNotClobberContent(t *testing.T) {
	fx := newFixture(t, false)
	ctx := context.Background()

	fx.fetcher.err = &fetcher.TransientError{Err: errors.New("outage")}
	firstFetch, _ := fx.orch.SelectMood(ctx, mood.Happy)
	staleFailure := firstFetch()

	fx.fetcher.err = nil
	fx.fetcher.items = catalog.ListFor(mood.Tired)
	secondFetch, _ := fx.orch.SelectMood(ctx, mood.Tired)

	if !fx.orch.ApplyFetch(secondFetch()) {
		t.Fatal("current result discarded")
	}
	if fx.orch.ApplyFetch(staleFailure) {
		t.Fatal("stale failure applied")
	}
	if fx.orch.State() != StateContentReady {
		t.Errorf("state = %s, want ready", fx.orch.State())
	}
}

func TestOpenExternalLink(t *testing.T) {
	fx := newFixture(t, true)
	external := catalog.Summary{
		Title:       "Motivational TED Talk",
		Description: "An inspiring talk.",
		ContentType: "Video",
		Duration:    "18 mins",
		Link:        "https://www.ted.com/talks",
	}
	fx.fetcher.items = []catalog.Summary{external}
	selectAndLoad(t, fx, mood.Sad)

	if err := fx.orch.OpenContent(context.Background(), external); err != nil {
		t.Fatalf("OpenContent: %v", err)
	}
	if len(fx.opener.urls) != 1 || fx.opener.urls[0] != external.Link {
		t.Errorf("opened urls = %v", fx.opener.urls)
	}
	if fx.orch.State() != StateContentReady {
		t.Errorf("state = %s, want ready after external open", fx.orch.State())
	}
}

func generatedItem(t *testing.T, fx *fixture) catalog.Summary {
	t.Helper()
	for _, it := range fx.orch.Content() {
		if it.IsGenerated() {
			return it
		}
	}
	t.Fatal("no generated item loaded")
	return catalog.Summary{}
}

func TestOpenGeneratedContent(t *testing.T) {
	fx := newFixture(t, true)
	selectAndLoad(t, fx, mood.Happy)
	item := generatedItem(t, fx)

	if err := fx.orch.OpenContent(context.Background(), item); err != nil {
		t.Fatalf("OpenContent: %v", err)
	}
	if fx.orch.State() != StateLessonOpen {
		t.Fatalf("state = %s, want lesson", fx.orch.State())
	}

	doc, opened := fx.orch.Lesson()
	if doc == nil {
		t.Fatal("no lesson document")
	}
	if opened.Title != item.Title {
		t.Errorf("opened item = %q", opened.Title)
	}

	waitFor(t, func() bool { return fx.orch.InFlightProgressID() != "" },
		"progress record never started")

	rows, err := fx.mem.Progress().RecentForUser(context.Background(), currentUserID(t, fx), 0)
	if err != nil {
		t.Fatalf("RecentForUser: %v", err)
	}
	if len(rows) != 1 || rows[0].ContentTitle != item.Title {
		t.Errorf("progress rows = %+v", rows)
	}
	if rows[0].Completed {
		t.Error("progress born completed")
	}
}

func currentUserID(t *testing.T, fx *fixture) string {
	t.Helper()
	p, err := fx.mem.Profiles().Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	return p.ID
}

func TestCompleteContentRecordsTimeSpent(t *testing.T) {
	fx := newFixture(t, true)
	selectAndLoad(t, fx, mood.Happy)
	item := generatedItem(t, fx)

	base := time.Now()
	fx.orch.now = func() time.Time { return base }

	if err := fx.orch.OpenContent(context.Background(), item); err != nil {
		t.Fatalf("OpenContent: %v", err)
	}
	waitFor(t, func() bool { return fx.orch.InFlightProgressID() != "" },
		"progress record never started")
	id := fx.orch.InFlightProgressID()

	fx.orch.now = func() time.Time { return base.Add(5 * time.Minute) }

	if err := fx.orch.CompleteContent(context.Background()); err != nil {
		t.Fatalf("CompleteContent: %v", err)
	}
	if fx.orch.State() != StateContentReady {
		t.Errorf("state = %s, want ready", fx.orch.State())
	}
	if fx.orch.InFlightProgressID() != "" {
		t.Error("in-flight id survived completion")
	}

	uid := currentUserID(t, fx)
	waitFor(t, func() bool {
		rows, _ := fx.mem.Progress().RecentForUser(context.Background(), uid, 0)
		return len(rows) == 1 && rows[0].Completed
	}, "completion never reached the store")

	rows, _ := fx.mem.Progress().RecentForUser(context.Background(), uid, 0)
	if rows[0].ID != id {
		t.Errorf("completed id = %s, want %s", rows[0].ID, id)
	}
	if rows[0].TimeSpentSeconds == nil || *rows[0].TimeSpentSeconds != 300 {
		t.Errorf("time spent = %v, want 300", rows[0].TimeSpentSeconds)
	}
}

func TestCompleteAnonymousNoStore(t *testing.T) {
	fx := newFixture(t, false)
	selectAndLoad(t, fx, mood.Happy)
	item := generatedItem(t, fx)

	if err := fx.orch.OpenContent(context.Background(), item); err != nil {
		t.Fatalf("OpenContent: %v", err)
	}
	if err := fx.orch.CompleteContent(context.Background()); err != nil {
		t.Fatalf("CompleteContent: %v", err)
	}
	if fx.orch.State() != StateContentReady {
		t.Errorf("state = %s, want ready", fx.orch.State())
	}
}

func TestCloseLessonWithoutCompleting(t *testing.T) {
	fx := newFixture(t, true)
	selectAndLoad(t, fx, mood.Happy)
	item := generatedItem(t, fx)

	if err := fx.orch.OpenContent(context.Background(), item); err != nil {
		t.Fatalf("OpenContent: %v", err)
	}
	if err := fx.orch.CloseLesson(); err != nil {
		t.Fatalf("CloseLesson: %v", err)
	}
	if fx.orch.State() != StateContentReady {
		t.Errorf("state = %s, want ready", fx.orch.State())
	}
	if doc, _ := fx.orch.Lesson(); doc != nil {
		t.Error("lesson still open")
	}
}

func TestInvalidTransitions(t *testing.T) {
	fx := newFixture(t, false)
	ctx := context.Background()
	item := catalog.Summary{Title: "X", Link: catalog.GeneratedLink}

	if err := fx.orch.OpenContent(ctx, item); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("OpenContent from idle err = %v", err)
	}
	if err := fx.orch.CompleteContent(ctx); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("CompleteContent from idle err = %v", err)
	}
	if err := fx.orch.CloseLesson(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("CloseLesson from idle err = %v", err)
	}

	if _, err := fx.orch.SelectMood(ctx, mood.Happy); err != nil {
		t.Fatalf("SelectMood: %v", err)
	}
	if err := fx.orch.OpenContent(ctx, item); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("OpenContent while loading err = %v", err)
	}
}

func TestSecondCompleteRejected(t *testing.T) {
	fx := newFixture(t, true)
	selectAndLoad(t, fx, mood.Happy)
	item := generatedItem(t, fx)

	if err := fx.orch.OpenContent(context.Background(), item); err != nil {
		t.Fatalf("OpenContent: %v", err)
	}
	if err := fx.orch.CompleteContent(context.Background()); err != nil {
		t.Fatalf("CompleteContent: %v", err)
	}
	if err := fx.orch.CompleteContent(context.Background()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second complete err = %v, want ErrInvalidTransition", err)
	}
}

func TestSelectMoodJournalsEvent(t *testing.T) {
	fx := newFixture(t, true)
	selectAndLoad(t, fx, mood.Tired)

	uid := currentUserID(t, fx)
	waitFor(t, func() bool {
		rows, _ := fx.mem.MoodEvents().RecentForUser(context.Background(), uid, 0)
		return len(rows) == 1
	}, "mood event never journaled")

	rows, _ := fx.mem.MoodEvents().RecentForUser(context.Background(), uid, 0)
	if rows[0].Mood != "tired" || rows[0].Emoji != "😴" {
		t.Errorf("journaled event = %+v", rows[0])
	}
}

func TestResetDropsContent(t *testing.T) {
	fx := newFixture(t, false)
	selectAndLoad(t, fx, mood.Happy)

	fetch, _ := fx.orch.SelectMood(context.Background(), mood.Sad)
	pending := fetch()

	fx.orch.Reset()
	if fx.orch.State() != StateIdle {
		t.Fatalf("state = %s, want idle", fx.orch.State())
	}
	if fx.orch.ApplyFetch(pending) {
		t.Error("fetch applied after reset")
	}
}
