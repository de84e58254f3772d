package datasource

import (
	"errors"
	"fmt"
)

// Kind classifies why a weather lookup failed
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindHTTPStatus
	KindParse
	KindNoCandidate
	KindBadInput
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "upstream_status"
	case KindParse:
		return "parse"
	case KindNoCandidate:
		return "location_not_found"
	case KindBadInput:
		return "bad_input"
	}
	return "internal"
}

var (
	// ErrLocationNotFound is wrapped by KindNoCandidate failures
	ErrLocationNotFound = errors.New("location not found")

	// ErrEmptyLocation is returned when the search text is blank after trimming
	ErrEmptyLocation = errors.New("location name is empty")
)

// FetchError is the failure value returned by every remote call
type FetchError struct {
	Kind       Kind
	Op         string // "geocode" or "forecast"
	StatusCode int    // set for KindHTTPStatus
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("%s: API error (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func networkError(op string, err error) error {
	return &FetchError{Kind: KindNetwork, Op: op, Err: err}
}

func statusError(op string, code int, body []byte) error {
	const maxBody = 256
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return &FetchError{Kind: KindHTTPStatus, Op: op, StatusCode: code, Err: errors.New(string(body))}
}

func parseError(op string, err error) error {
	return &FetchError{Kind: KindParse, Op: op, Err: err}
}

// NotFound builds the failure for a geocoding search with zero candidates
func NotFound(name string) error {
	return &FetchError{Kind: KindNoCandidate, Op: "geocode", Err: fmt.Errorf("%w: %q", ErrLocationNotFound, name)}
}

// ParseFailure marks err as a malformed or incomplete upstream response
func ParseFailure(op string, err error) error {
	return parseError(op, err)
}

// KindOf reports the failure kind carried by err
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, ErrEmptyLocation) {
		return KindBadInput
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
