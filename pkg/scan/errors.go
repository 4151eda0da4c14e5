package scan

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means no valid caller identity was supplied.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrWebsiteNotFound covers both a missing website and one owned by
	// another user, so existence is never leaked.
	ErrWebsiteNotFound = errors.New("website not found or not owned by user")
	// ErrServiceUnavailable means the extraction service could not be reached
	// or refused the request.
	ErrServiceUnavailable = errors.New("extraction service unavailable")
	// ErrInvalidArgument means the request input was malformed or empty.
	ErrInvalidArgument = errors.New("invalid argument")
)

// DeepScanFailedError reports a deep scan that reached the extraction service
// but failed, either in transport, HTTP status or the response's own status
// field. The page has already been transitioned to the error status when this
// is returned.
type DeepScanFailedError struct {
	PageID uint
	Reason string
	Err    error
}

func (e *DeepScanFailedError) Error() string {
	return fmt.Sprintf("deep scan of page %d failed: %s", e.PageID, e.Reason)
}

func (e *DeepScanFailedError) Unwrap() error {
	return e.Err
}
