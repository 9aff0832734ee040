package content

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hajira/edumood/internal/flow"
	"github.com/hajira/edumood/internal/mood"
	"github.com/hajira/edumood/internal/router"
	"github.com/hajira/edumood/internal/screen"
	"github.com/hajira/edumood/internal/screens/lesson"
	"github.com/hajira/edumood/internal/ui/components"
	"github.com/hajira/edumood/internal/ui/layout"
	"github.com/hajira/edumood/internal/ui/theme"
)

// ContentScreen shows the recommendations loaded for a mood.
type ContentScreen struct {
	orch    *flow.Orchestrator
	mood    mood.Mood
	spinner components.Spinner
	cursor  int
}

var _ screen.Screen = (*ContentScreen)(nil)

// New creates a content screen that will load recommendations for m.
func New(orch *flow.Orchestrator, m mood.Mood) *ContentScreen {
	return &ContentScreen{orch: orch, mood: m}
}

func (c *ContentScreen) Init() tea.Cmd {
	return c.startFetch(c.mood)
}

// startFetch begins a new selection. An older in-flight fetch keeps
// running but its result will be stale by the time it lands.
func (c *ContentScreen) startFetch(m mood.Mood) tea.Cmd {
	fetch, err := c.orch.SelectMood(context.Background(), m)
	if err != nil {
		return nil
	}
	c.mood = m
	c.cursor = 0
	return tea.Batch(
		c.spinner.Tick(),
		func() tea.Msg { return fetchResultMsg{res: fetch()} },
	)
}

func (c *ContentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.SpinnerTickMsg:
		if c.orch.State() != flow.StateContentLoading {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Advance()
		return c, cmd

	case fetchResultMsg:
		c.orch.ApplyFetch(msg.res)
		c.cursor = 0
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	return c, nil
}

func (c *ContentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Switching mood mid-load is fine: the newest pick wins.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '5' {
		m := mood.AllMoods()[key[0]-'1']
		return c, c.startFetch(m)
	}

	switch c.orch.State() {
	case flow.StateContentError:
		if key == "r" {
			return c, c.startFetch(c.orch.SelectedMood())
		}

	case flow.StateContentReady:
		items := c.orch.Content()
		switch key {
		case "up", "k":
			if c.cursor > 0 {
				c.cursor--
			}
		case "down", "j":
			if c.cursor < len(items)-1 {
				c.cursor++
			}
		case "enter":
			if c.cursor >= len(items) {
				return c, nil
			}
			item := items[c.cursor]
			if err := c.orch.OpenContent(context.Background(), item); err != nil {
				return c, nil
			}
			if item.IsGenerated() {
				return c, func() tea.Msg {
					return router.PushScreenMsg{Screen: lesson.New(c.orch)}
				}
			}
		}
	}

	return c, nil
}

func (c *ContentScreen) View(width, height int) string {
	switch c.orch.State() {
	case flow.StateContentLoading:
		msg := c.spinner.View() + "  " +
			theme.Body.Render("Finding the perfect content for your mood...")
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(msg)

	case flow.StateContentError:
		msg := theme.Failed.Render(c.orch.ErrorMessage()) + "\n\n" +
			theme.Hint.Render("Press r to try again, or 1-5 to pick another mood")
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(msg)
	}

	items := c.orch.Content()
	if len(items) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("No content yet. Try another mood."))
	}

	var b strings.Builder
	heading := fmt.Sprintf("%s  Picked for your %s mood",
		c.orch.SelectedMood().Emoji(),
		strings.ToLower(c.orch.SelectedMood().DisplayName()))
	b.WriteString(theme.Subtitle.Width(width).Render(heading))
	b.WriteString("\n\n")

	for i, item := range items {
		title := item.Title
		if item.IsGenerated() {
			title += "  " + theme.Hint.Render("(full lesson)")
		}
		meta := theme.Hint.Render(item.ContentType + " · " + item.Duration)

		var card string
		if i == c.cursor {
			card = theme.Selected.Render("▸ "+title) + "\n  " + meta + "\n  " +
				theme.Body.Render(item.Description)
		} else {
			card = theme.Unselected.Render("  "+title) + "\n  " + meta
		}
		b.WriteString(card)
		b.WriteString("\n\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 4).
		Render(b.String())
}

func (c *ContentScreen) Title() string {
	m := c.orch.SelectedMood()
	if m == "" {
		m = c.mood
	}
	return "Feeling " + m.DisplayName()
}

// KeyHints implements screen.KeyHintProvider.
func (c *ContentScreen) KeyHints() []layout.KeyHint {
	switch c.orch.State() {
	case flow.StateContentError:
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "1-5", Description: "Switch mood"},
			{Key: "Esc", Description: "Back"},
		}
	case flow.StateContentReady:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "1-5", Description: "Switch mood"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-5", Description: "Switch mood"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

// HandleEsc implements screen.EscHandler: leaving the list returns the
// loop to idle so a late fetch cannot resurface.
func (c *ContentScreen) HandleEsc() tea.Cmd {
	c.orch.Reset()
	return func() tea.Msg { return router.PopScreenMsg{} }
}
