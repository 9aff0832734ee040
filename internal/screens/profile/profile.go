package profile

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hajira/edumood/internal/identity"
	"github.com/hajira/edumood/internal/router"
	"github.com/hajira/edumood/internal/screen"
	"github.com/hajira/edumood/internal/ui/components"
	"github.com/hajira/edumood/internal/ui/layout"
	"github.com/hajira/edumood/internal/ui/theme"
)

// signInResultMsg delivers a finished sign-in attempt.
type signInResultMsg struct {
	profile *identity.Profile
	err     error
}

// signOutDoneMsg signals the session was cleared.
type signOutDoneMsg struct{}

const (
	focusEmail = iota
	focusName
)

// ProfileScreen shows the session and handles sign-in and sign-out.
type ProfileScreen struct {
	identity *identity.Service
	email    components.TextInput
	name     components.TextInput
	focus    int
	errText  string
	busy     bool
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(ident *identity.Service) *ProfileScreen {
	s := &ProfileScreen{
		identity: ident,
		email:    components.NewTextInput("Email", "you@example.com", 120),
		name:     components.NewTextInput("Name", "How should we greet you?", 60),
	}
	s.name.Blur()
	return s
}

func (p *ProfileScreen) Init() tea.Cmd {
	if p.identity.Current() != nil {
		return nil
	}
	return p.email.Init()
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signInResultMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = "That didn't work. Check the email address."
			return p, nil
		}
		p.errText = ""
		// Back to the mood picker with the new greeting.
		return p, func() tea.Msg { return router.PopToRootMsg{} }

	case signOutDoneMsg:
		p.errText = ""
		return p, p.email.Init()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p *ProfileScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if p.identity.Current() != nil {
		if msg.String() == "s" {
			return p, func() tea.Msg {
				p.identity.SignOut(context.Background())
				return signOutDoneMsg{}
			}
		}
		return p, nil
	}

	if p.busy {
		return p, nil
	}

	switch msg.String() {
	case "tab", "shift+tab":
		if p.focus == focusEmail {
			p.focus = focusName
			p.email.Blur()
			return p, p.name.Focus()
		}
		p.focus = focusEmail
		p.name.Blur()
		return p, p.email.Focus()

	case "enter":
		email := strings.TrimSpace(p.email.Value())
		name := strings.TrimSpace(p.name.Value())
		if email == "" {
			p.errText = "Enter an email address to sign in."
			return p, nil
		}
		p.busy = true
		return p, func() tea.Msg {
			prof, err := p.identity.SignIn(context.Background(), email, name)
			return signInResultMsg{profile: prof, err: err}
		}
	}

	var cmd tea.Cmd
	if p.focus == focusEmail {
		p.email, cmd = p.email.Update(msg)
	} else {
		p.name, cmd = p.name.Update(msg)
	}
	return p, cmd
}

func (p *ProfileScreen) View(width, height int) string {
	var b strings.Builder

	if cur := p.identity.Current(); cur != nil {
		b.WriteString(theme.Title.Render("Your profile"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("Name:   " + cur.DisplayName))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Email:  " + cur.Email))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Moods and progress are saved to this profile."))
	} else {
		b.WriteString(theme.Title.Render("Sign in"))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Without a profile, moods and progress aren't saved."))
		b.WriteString("\n\n")
		b.WriteString(p.email.View())
		b.WriteString("\n\n")
		b.WriteString(p.name.View())
		if p.busy {
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Render("Signing in..."))
		}
		if p.errText != "" {
			b.WriteString("\n\n")
			b.WriteString(theme.Failed.Render(p.errText))
		}
	}

	card := theme.Card.Width(min(width-8, 60)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

// KeyHints implements screen.KeyHintProvider.
func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	if p.identity.Current() != nil {
		return []layout.KeyHint{
			{Key: "s", Description: "Sign out"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Esc", Description: "Back"},
	}
}
