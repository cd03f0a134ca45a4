package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBadCode indicates the test code was rejected at bootstrap.
var ErrBadCode = errors.New("test code not recognized")

// ErrAlreadyCompleted indicates the test was already completed and
// allow_restart was not set.
var ErrAlreadyCompleted = errors.New("test already completed and restart not permitted")

// ErrServerUnavailable indicates the scoring server is down or returned a
// non-success status the client cannot interpret.
type ErrServerUnavailable struct {
	Status int
	Err    error
}

func (e *ErrServerUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scoring server unavailable: %v", e.Err)
	}
	return fmt.Sprintf("scoring server unavailable (HTTP %d)", e.Status)
}

func (e *ErrServerUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the server returned JSON that does not
// conform to the expected payload shape.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid scoring response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
