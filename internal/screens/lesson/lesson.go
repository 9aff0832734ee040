package lesson

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hajira/edumood/internal/flow"
	"github.com/hajira/edumood/internal/lessons"
	"github.com/hajira/edumood/internal/router"
	"github.com/hajira/edumood/internal/screen"
	"github.com/hajira/edumood/internal/ui/layout"
	"github.com/hajira/edumood/internal/ui/theme"
)

// LessonScreen renders the expanded lesson document with scrolling.
type LessonScreen struct {
	orch   *flow.Orchestrator
	title  string
	body   string
	offset int
	done   bool
}

var _ screen.Screen = (*LessonScreen)(nil)

// New creates a lesson screen for the currently open lesson.
func New(orch *flow.Orchestrator) *LessonScreen {
	s := &LessonScreen{orch: orch}
	doc, item := orch.Lesson()
	if doc != nil {
		s.title = item.Title
		s.body = renderDocument(s.title, doc)
	}
	return s
}

func (l *LessonScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.offset > 0 {
			l.offset--
		}
	case "down", "j":
		l.offset++
	case "pgup":
		l.offset -= 10
		if l.offset < 0 {
			l.offset = 0
		}
	case "pgdown", " ":
		l.offset += 10
	case "g":
		l.offset = 0
	case "c":
		if l.done {
			return l, nil
		}
		if err := l.orch.CompleteContent(context.Background()); err != nil {
			return l, nil
		}
		l.done = true
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return l, nil
}

func (l *LessonScreen) View(width, height int) string {
	if l.body == "" {
		return theme.Hint.Render("  Nothing to show.")
	}

	wrapped := lipgloss.NewStyle().Width(width - 8).Render(l.body)
	lines := strings.Split(wrapped, "\n")

	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.offset > maxOffset {
		l.offset = maxOffset
	}

	end := l.offset + visible
	if end > len(lines) {
		end = len(lines)
	}
	page := strings.Join(lines[l.offset:end], "\n")

	scroll := ""
	if maxOffset > 0 {
		scroll = theme.Hint.Render(fmt.Sprintf("  — %d%% —",
			(l.offset*100)/maxOffset))
	}

	return lipgloss.NewStyle().Padding(0, 4).Render(page) + "\n" + scroll
}

func (l *LessonScreen) Title() string {
	return l.title
}

// KeyHints implements screen.KeyHintProvider.
func (l *LessonScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "c", Description: "Mark complete"},
		{Key: "Esc", Description: "Back without completing"},
	}
}

// HandleEsc implements screen.EscHandler: leaving without completing
// abandons the lesson.
func (l *LessonScreen) HandleEsc() tea.Cmd {
	if !l.done {
		l.orch.CloseLesson()
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// renderDocument lays the lesson out as scrollable styled text.
func renderDocument(title string, doc *lessons.Document) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(doc.Introduction))
	b.WriteString("\n")

	for i, sec := range doc.Sections {
		b.WriteString("\n")
		b.WriteString(theme.Selected.Render(fmt.Sprintf("%d. %s", i+1, sec.Title)))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(sec.Body))
		b.WriteString("\n")

		if sec.CodeSample != "" {
			b.WriteString("\n")
			b.WriteString(theme.Card.Render(sec.CodeSample))
			b.WriteString("\n")
		}
		for _, tip := range sec.Tips {
			b.WriteString(theme.Hint.Render("  • " + tip))
			b.WriteString("\n")
		}
	}

	if len(doc.Exercises) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Selected.Render("Exercises"))
		b.WriteString("\n")
		for _, ex := range doc.Exercises {
			b.WriteString(theme.Body.Render(fmt.Sprintf("[%s] %s", ex.Kind.DisplayName(), ex.Question)))
			b.WriteString("\n")
			for _, opt := range ex.Options {
				b.WriteString(theme.Hint.Render("  ○ " + opt))
				b.WriteString("\n")
			}
			b.WriteString(theme.Hint.Render("Answer: " + ex.Answer))
			b.WriteString("\n\n")
		}
	}

	if len(doc.Resources) > 0 {
		b.WriteString(theme.Selected.Render("Resources"))
		b.WriteString("\n")
		for _, res := range doc.Resources {
			b.WriteString(theme.Body.Render(fmt.Sprintf("  %s (%s)", res.Title, res.ResourceType)))
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("  " + res.URL))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.Done.Render(doc.Conclusion))
	return b.String()
}
