// Package flow drives the mood-to-learning loop: pick a mood, fetch
// matching content, open an item, complete it. It owns the state
// machine and keeps late fetch results from older selections out.
package flow

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hajira/edumood/internal/catalog"
	"github.com/hajira/edumood/internal/journal"
	"github.com/hajira/edumood/internal/lessons"
	"github.com/hajira/edumood/internal/mood"
	"github.com/hajira/edumood/internal/nav"
	"github.com/hajira/edumood/internal/progress"
)

// State is the current phase of the content loop.
type State int

const (
	StateIdle State = iota
	StateContentLoading
	StateContentReady
	StateContentError
	StateLessonOpen
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateContentLoading:
		return "loading"
	case StateContentReady:
		return "ready"
	case StateContentError:
		return "error"
	case StateLessonOpen:
		return "lesson"
	default:
		return "unknown"
	}
}

// ContentErrorMessage is the only fetch failure text shown to the user.
const ContentErrorMessage = "Oops! Couldn't load learning content right now."

// ErrInvalidTransition indicates an operation that the current state
// does not allow.
var ErrInvalidTransition = errors.New("invalid state transition")

// FetchResult carries one fetch outcome back to the orchestrator. The
// token ties it to the selection that started it.
type FetchResult struct {
	Token uint64
	Items []catalog.Summary
	Err   error
}

// ContentFetcher retrieves recommendations for a mood.
type ContentFetcher interface {
	Fetch(ctx context.Context, m mood.Mood) ([]catalog.Summary, error)
}

// Orchestrator coordinates mood selection, content fetching, lesson
// expansion, and best-effort persistence.
type Orchestrator struct {
	mu sync.Mutex

	state    State
	selected mood.Mood
	content  []catalog.Summary
	errMsg   string

	// token increments per selection; stale fetch results are dropped.
	token uint64

	doc       *lessons.Document
	openItem  catalog.Summary
	openedAt  time.Time
	inFlight  string
	lessonGen uint64

	fetcher  ContentFetcher
	journal  *journal.Service
	progress *progress.Service
	opener   nav.Opener
	logger   *zap.Logger
	now      func() time.Time
}

// New creates an Orchestrator. A nil logger disables logging.
func New(f ContentFetcher, j *journal.Service, p *progress.Service, opener nav.Opener, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		state:    StateIdle,
		fetcher:  f,
		journal:  j,
		progress: p,
		opener:   opener,
		logger:   logger,
		now:      time.Now,
	}
}

// SelectMood starts a new content load for the mood and returns the
// fetch to run. The mood event is journaled in the background and never
// blocks the fetch. Selecting again while a fetch is in flight
// supersedes it: the newer selection wins and the older result is
// dropped when applied.
func (o *Orchestrator) SelectMood(ctx context.Context, m mood.Mood) (func() FetchResult, error) {
	if !m.Valid() {
		return nil, ErrInvalidTransition
	}

	o.mu.Lock()
	o.selected = m
	o.state = StateContentLoading
	o.content = nil
	o.errMsg = ""
	o.clearLessonLocked()
	o.token++
	tok := o.token
	o.mu.Unlock()

	o.logger.Info("mood selected", zap.String("mood", string(m)))

	go o.journal.Record(context.WithoutCancel(ctx), m)

	return func() FetchResult {
		items, err := o.fetcher.Fetch(ctx, m)
		return FetchResult{Token: tok, Items: items, Err: err}
	}, nil
}

// ApplyFetch folds a fetch outcome into the state machine. It reports
// whether the result was current; stale results are discarded without
// any state change.
func (o *Orchestrator) ApplyFetch(res FetchResult) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if res.Token != o.token || o.state != StateContentLoading {
		o.logger.Debug("stale fetch result dropped", zap.Uint64("token", res.Token))
		return false
	}

	if res.Err != nil {
		o.state = StateContentError
		o.errMsg = ContentErrorMessage
		o.logger.Warn("content load failed", zap.Error(res.Err))
		return true
	}

	o.state = StateContentReady
	o.content = res.Items
	return true
}

// OpenContent acts on a recommendation from the loaded list. External
// links go to the opener and the list stays on screen; generated items
// expand into a lesson and start a progress record in the background.
func (o *Orchestrator) OpenContent(ctx context.Context, item catalog.Summary) error {
	o.mu.Lock()
	if o.state != StateContentReady {
		o.mu.Unlock()
		return ErrInvalidTransition
	}

	if !item.IsGenerated() {
		o.mu.Unlock()
		if err := o.opener.Open(item.Link); err != nil {
			o.logger.Warn("open link failed",
				zap.String("url", item.Link),
				zap.Error(err))
		}
		return nil
	}

	doc := lessons.Expand(item.Title, o.selected)
	o.doc = &doc
	o.openItem = item
	o.openedAt = o.now()
	o.inFlight = ""
	o.lessonGen++
	gen := o.lessonGen
	m := o.selected
	o.state = StateLessonOpen
	o.mu.Unlock()

	go func() {
		rec := o.progress.Begin(context.WithoutCancel(ctx), item.Title, item.ContentType, m)
		if rec == nil {
			return
		}
		o.mu.Lock()
		if o.lessonGen == gen && o.state == StateLessonOpen {
			o.inFlight = rec.ID
		}
		o.mu.Unlock()
	}()

	return nil
}

// CompleteContent marks the open lesson finished, recording the elapsed
// reading time, and returns to the content list. Completion is a no-op
// against storage when no progress record made it in.
func (o *Orchestrator) CompleteContent(ctx context.Context) error {
	o.mu.Lock()
	if o.state != StateLessonOpen {
		o.mu.Unlock()
		return ErrInvalidTransition
	}

	elapsed := o.now().Sub(o.openedAt)
	seconds := int(math.Round(elapsed.Seconds()))
	id := o.inFlight
	o.clearLessonLocked()
	o.state = StateContentReady
	o.mu.Unlock()

	if id != "" {
		go o.progress.Finish(context.WithoutCancel(ctx), id, seconds)
	}
	return nil
}

// CloseLesson abandons the open lesson without completing it.
func (o *Orchestrator) CloseLesson() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateLessonOpen {
		return ErrInvalidTransition
	}
	o.clearLessonLocked()
	o.state = StateContentReady
	return nil
}

// Reset returns to the idle state, dropping any loaded content. A fetch
// still in flight becomes stale.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.state = StateIdle
	o.content = nil
	o.errMsg = ""
	o.clearLessonLocked()
	o.token++
}

// clearLessonLocked drops lesson state. Callers hold o.mu.
func (o *Orchestrator) clearLessonLocked() {
	o.doc = nil
	o.openItem = catalog.Summary{}
	o.openedAt = time.Time{}
	o.inFlight = ""
	o.lessonGen++
}

// State returns the current phase.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// SelectedMood returns the mood of the latest selection.
func (o *Orchestrator) SelectedMood() mood.Mood {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.selected
}

// Content returns the loaded recommendations.
func (o *Orchestrator) Content() []catalog.Summary {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]catalog.Summary, len(o.content))
	copy(out, o.content)
	return out
}

// ErrorMessage returns the user-facing fetch error, empty outside the
// error state.
func (o *Orchestrator) ErrorMessage() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errMsg
}

// Lesson returns the open lesson document and its catalog item.
func (o *Orchestrator) Lesson() (*lessons.Document, catalog.Summary) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.doc == nil {
		return nil, catalog.Summary{}
	}
	doc := *o.doc
	return &doc, o.openItem
}

// InFlightProgressID returns the progress record tied to the open
// lesson, empty until the background insert lands.
func (o *Orchestrator) InFlightProgressID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inFlight
}
