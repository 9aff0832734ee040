// Package lessons expands a recommendation title into a structured lesson
// document. Generation is a deterministic lookup over a two-level
// (mood, title) library with a total fallback: a miss is a defined branch,
// never an error.
package lessons

import "github.com/hajira/edumood/internal/mood"

// Expand returns the lesson document for a title under a mood. When the
// library has no specific entry the generic onboarding document is
// returned, so Expand is total over its domain and never fails.
func Expand(title string, m mood.Mood) Document {
	if byTitle, ok := library[m]; ok {
		if doc, ok := byTitle[title]; ok {
			return doc
		}
	}
	return fallbackDocument()
}

// fallbackDocument is the generic lesson used when no specific entry
// exists for a (mood, title) pair. Built fresh on each call so callers
// can't alias the shared library.
func fallbackDocument() Document {
	return Document{
		Introduction: "Welcome to this learning experience!",
		Sections: []Section{
			{
				Title: "Getting Started",
				Body:  "This content is being generated based on your current mood and learning preferences.",
				Tips: []string{
					"Take your time",
					"Learn at your own pace",
					"Apply what you learn",
				},
			},
		},
		Conclusion: "Keep learning and growing!",
	}
}
