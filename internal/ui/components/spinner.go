package components

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/hajira/edumood/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerTickMsg advances a spinner one frame.
type SpinnerTickMsg struct{}

// Spinner is a minimal loading indicator driven by tick messages.
type Spinner struct {
	frame int
}

// Tick schedules the next spinner frame.
func (Spinner) Tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// Advance moves to the next frame and schedules another tick.
func (s Spinner) Advance() (Spinner, tea.Cmd) {
	s.frame = (s.frame + 1) % len(spinnerFrames)
	return s, s.Tick()
}

// View renders the current frame.
func (s Spinner) View() string {
	return theme.Selected.Render(spinnerFrames[s.frame])
}
