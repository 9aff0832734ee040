package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hajira/edumood/internal/flow"
	"github.com/hajira/edumood/internal/identity"
	"github.com/hajira/edumood/internal/journal"
	"github.com/hajira/edumood/internal/mood"
	"github.com/hajira/edumood/internal/progress"
	"github.com/hajira/edumood/internal/router"
	"github.com/hajira/edumood/internal/screen"
	"github.com/hajira/edumood/internal/screens/content"
	"github.com/hajira/edumood/internal/screens/history"
	"github.com/hajira/edumood/internal/screens/profile"
	"github.com/hajira/edumood/internal/ui/components"
	"github.com/hajira/edumood/internal/ui/layout"
	"github.com/hajira/edumood/internal/ui/theme"
)

// HomeScreen is the mood picker and main entry point.
type HomeScreen struct {
	menu     components.Menu
	orch     *flow.Orchestrator
	identity *identity.Service
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(orch *flow.Orchestrator, ident *identity.Service, jrnl *journal.Service, prog *progress.Service) *HomeScreen {
	items := make([]components.MenuItem, 0, len(mood.AllMoods())+3)
	for i, m := range mood.AllMoods() {
		m := m
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s  %s", m.Emoji(), m.DisplayName()),
			Hint:  fmt.Sprintf("%d", i+1),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: content.New(orch, m)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(jrnl, prog)}
			}
		}},
		components.MenuItem{Label: "PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(ident)}
			}
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		menu:     components.NewMenu(items),
		orch:     orch,
		identity: ident,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && key[0] >= '1' && key[0] <= '5' {
			var cmd tea.Cmd
			h.menu, cmd = h.menu.Activate(int(key[0] - '1'))
			return h, cmd
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	greeting := "Hello, learner!"
	if p := h.identity.Current(); p != nil {
		greeting = "Hello, " + p.DisplayName + "!"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("EduMood"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(greeting))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).
		Render("How are you feeling today?"))
	b.WriteString("\n\n")

	menu := theme.Card.Render(h.menu.View())
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(menu))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// KeyHints implements screen.KeyHintProvider.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-5", Description: "Pick mood"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
