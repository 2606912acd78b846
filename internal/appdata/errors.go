package appdata

import (
	"fmt"
)

// DataErrorMessage is shown to the user when boot data cannot be loaded.
const DataErrorMessage = "Failed to load critical application data."

// DataError is the terminal boot failure. Its message is safe to display;
// the cause is available via errors.Unwrap.
type DataError struct {
	Resource string
	Err      error
}

func (e *DataError) Error() string {
	return DataErrorMessage
}

func (e *DataError) Unwrap() error { return e.Err }

// Detail returns the message with the failing resource and cause, for logs.
func (e *DataError) Detail() string {
	if e.Resource == "" {
		return fmt.Sprintf("%s: %v", DataErrorMessage, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", DataErrorMessage, e.Resource, e.Err)
}

// StatusError reports a non-success transport response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}
