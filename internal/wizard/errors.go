package wizard

import (
	"errors"
	"fmt"
)

var (
	// ErrStaleResult is returned by Apply for a result issued before the
	// most recent transition. The result is discarded.
	ErrStaleResult = errors.New("wizard: stale result discarded")

	// ErrClosed is returned by every event after Close.
	ErrClosed = errors.New("wizard: closed")

	ErrInvalidUserType = errors.New("wizard: invalid user type")
)

// TransitionError reports an event that is not valid on the current screen.
type TransitionError struct {
	Event string
	From  Screen
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("wizard: %s not allowed on %s", e.Event, e.From)
}
