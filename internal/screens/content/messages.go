package content

import "github.com/hajira/edumood/internal/flow"

// fetchResultMsg delivers a finished content fetch to the screen.
type fetchResultMsg struct {
	res flow.FetchResult
}
