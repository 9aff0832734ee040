package fetcher

import "fmt"

// TransientError indicates the content service was temporarily
// unavailable. The request can be retried as-is.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content service unavailable: %v", e.Err)
	}
	return "content service unavailable"
}

func (e *TransientError) Unwrap() error { return e.Err }
