// Package mood defines the five moods a learner can pick from.
package mood

import (
	"fmt"
	"strings"
)

// Mood is one of the five selectable feelings.
type Mood string

const (
	Happy   Mood = "happy"
	Neutral Mood = "neutral"
	Sad     Mood = "sad"
	Angry   Mood = "angry"
	Tired   Mood = "tired"
)

// AllMoods returns every mood in display order.
func AllMoods() []Mood {
	return []Mood{Happy, Neutral, Sad, Angry, Tired}
}

// DisplayName returns the human-readable name.
func (m Mood) DisplayName() string {
	switch m {
	case Happy:
		return "Happy"
	case Neutral:
		return "Neutral"
	case Sad:
		return "Sad"
	case Angry:
		return "Angry"
	case Tired:
		return "Tired"
	default:
		return string(m)
	}
}

// Emoji returns the mood's emoji.
func (m Mood) Emoji() string {
	switch m {
	case Happy:
		return "😊"
	case Neutral:
		return "😐"
	case Sad:
		return "😔"
	case Angry:
		return "😠"
	case Tired:
		return "😴"
	default:
		return ""
	}
}

// Valid reports whether m is one of the five moods.
func (m Mood) Valid() bool {
	switch m {
	case Happy, Neutral, Sad, Angry, Tired:
		return true
	}
	return false
}

// Parse converts user input into a Mood.
func Parse(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown mood %q", s)
	}
	return m, nil
}
