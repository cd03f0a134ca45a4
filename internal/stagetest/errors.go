package stagetest

import "errors"

var (
	// ErrNoSession indicates an operation before Start or after a failed
	// bootstrap.
	ErrNoSession = errors.New("no active session")

	// ErrNoQuestion indicates no question exists under the cursor.
	ErrNoQuestion = errors.New("no question under cursor")

	// ErrLoading indicates the queue is starved while a fetch is in flight;
	// forward navigation is blocked until the fetch resolves.
	ErrLoading = errors.New("waiting for question batch")

	// ErrCompleted indicates the session has finished and accepts no more
	// answers.
	ErrCompleted = errors.New("session already completed")
)
