package feed

import (
	"errors"
	"fmt"
)

// ErrFeedFormat is the base of all errors caused by the content of the response rather than the transport.
// Such errors are not retried.
var ErrFeedFormat = errors.New("feed format error")

// feed format errors
var (
	ErrEmptyBody     = fmt.Errorf("%w: empty response body", ErrFeedFormat)
	ErrNotFeed       = fmt.Errorf("%w: not an RSS or Atom feed", ErrFeedFormat)
	ErrMalformedFeed = fmt.Errorf("%w: malformed feed", ErrFeedFormat)
	ErrBodyTooLarge  = fmt.Errorf("%w: response body too large", ErrFeedFormat)
)

// NetworkError is a transport failure: connection error, timeout or non-2xx status.
// StatusCode is 0 when no response was received.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns underlying error
func (e *NetworkError) Unwrap() error { return e.Err }

// IsFormatError reports whether err is a non-retryable feed format error
func IsFormatError(err error) bool {
	return errors.Is(err, ErrFeedFormat)
}
