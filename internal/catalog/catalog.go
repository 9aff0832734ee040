// Package catalog holds the curated content recommendations per mood.
package catalog

import "github.com/hajira/edumood/internal/mood"

// GeneratedLink marks an item that expands into a full in-app lesson
// instead of pointing at an external page.
const GeneratedLink = "generated-content"

// Summary is one content recommendation as it crosses the fetch
// boundary.
type Summary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"type"`
	Duration    string `json:"duration"`
	Link        string `json:"link"`
}

// IsGenerated reports whether the item opens as an in-app lesson.
func (s Summary) IsGenerated() bool {
	return s.Link == GeneratedLink
}

// ListFor returns the recommendations for the given mood, nil for an
// unknown mood. The returned slice is a copy.
func ListFor(m mood.Mood) []Summary {
	items, ok := byMood[m]
	if !ok {
		return nil
	}
	out := make([]Summary, len(items))
	copy(out, items)
	return out
}
