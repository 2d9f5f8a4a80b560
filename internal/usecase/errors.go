package usecase

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrUnexpectedPayload     = errors.New("unexpected upstream payload")
)

// UpstreamBodyLimit caps how much of an upstream error body is echoed back.
const UpstreamBodyLimit = 300

// UpstreamError is a non-2xx answer from the league backend. Its status is
// passed through to the caller unchanged.
type UpstreamError struct {
	URL        string
	StatusCode int
	Body       string
}

func NewUpstreamError(url string, statusCode int, body string) *UpstreamError {
	return &UpstreamError{URL: url, StatusCode: statusCode, Body: truncateRunes(body, UpstreamBodyLimit)}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s → %d: %s", e.URL, e.StatusCode, e.Body)
}

// TransportError means the backend could not be reached or did not answer in
// time.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AsUpstreamError extracts an UpstreamError from err's chain.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var target *UpstreamError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsTransportError extracts a TransportError from err's chain.
func AsTransportError(err error) (*TransportError, bool) {
	var target *TransportError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

func truncateRunes(v string, limit int) string {
	runes := []rune(v)
	if len(runes) <= limit {
		return v
	}
	return string(runes[:limit])
}
