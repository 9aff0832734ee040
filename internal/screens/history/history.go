package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hajira/edumood/internal/journal"
	"github.com/hajira/edumood/internal/progress"
	"github.com/hajira/edumood/internal/screen"
	"github.com/hajira/edumood/internal/ui/components"
	"github.com/hajira/edumood/internal/ui/layout"
	"github.com/hajira/edumood/internal/ui/theme"
)

// refreshedMsg signals that history data was reloaded from storage.
type refreshedMsg struct {
	err error
}

// HistoryScreen shows recent moods, learning progress, and stats.
type HistoryScreen struct {
	journal  *journal.Service
	progress *progress.Service
	spinner  components.Spinner
	loading  bool
	loadErr  error
}

var _ screen.Screen = (*HistoryScreen)(nil)

// New creates the history screen.
func New(jrnl *journal.Service, prog *progress.Service) *HistoryScreen {
	return &HistoryScreen{journal: jrnl, progress: prog, loading: true}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return tea.Batch(
		h.spinner.Tick(),
		func() tea.Msg {
			ctx := context.Background()
			if err := h.journal.Refresh(ctx); err != nil {
				return refreshedMsg{err: err}
			}
			return refreshedMsg{err: h.progress.Refresh(ctx)}
		},
	)
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.SpinnerTickMsg:
		if !h.loading {
			return h, nil
		}
		var cmd tea.Cmd
		h.spinner, cmd = h.spinner.Advance()
		return h, cmd

	case refreshedMsg:
		h.loading = false
		h.loadErr = msg.err
		return h, nil
	}

	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	if h.loading {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(h.spinner.View() + "  " + theme.Body.Render("Loading your history..."))
	}
	if h.loadErr != nil {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Failed.Render("Couldn't load history."))
	}

	var b strings.Builder

	st := h.progress.CompletionStats()
	stats := fmt.Sprintf("%d started   %d completed   %d%% completion",
		st.Total, st.Completed, st.CompletionRate)
	b.WriteString(theme.Card.Render(theme.Body.Render(stats)))
	b.WriteString("\n\n")

	b.WriteString(theme.Selected.Render("Recent moods"))
	b.WriteString("\n")
	events := h.journal.History()
	if len(events) == 0 {
		b.WriteString(theme.Hint.Render("  Nothing yet. Sign in and pick a mood!"))
		b.WriteString("\n")
	}
	for _, ev := range events {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %s %-8s ", ev.Emoji, ev.Label)))
		b.WriteString(theme.Hint.Render(ev.Timestamp.Format("Jan 2 15:04")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Selected.Render("Learning activity"))
	b.WriteString("\n")
	records := h.progress.History()
	if len(records) == 0 {
		b.WriteString(theme.Hint.Render("  No lessons opened yet."))
		b.WriteString("\n")
	}
	for _, rec := range records {
		mark := theme.Hint.Render("○")
		if rec.Completed {
			mark = theme.Done.Render("●")
		}
		b.WriteString("  " + mark + " " + theme.Body.Render(rec.ContentTitle))
		meta := rec.ContentType
		if rec.Completed && rec.TimeSpentSeconds > 0 {
			meta += fmt.Sprintf(" · %ds", rec.TimeSpentSeconds)
		}
		b.WriteString("  " + theme.Hint.Render(meta))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (h *HistoryScreen) Title() string {
	return "History"
}

// KeyHints implements screen.KeyHintProvider.
func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}
