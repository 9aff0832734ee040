// Package nav opens external content links outside the app.
package nav

import "github.com/pkg/browser"

// Opener hands a URL to an external viewer.
type Opener interface {
	Open(url string) error
}

// Browser opens links in the system default browser.
type Browser struct{}

func (Browser) Open(url string) error {
	return browser.OpenURL(url)
}
