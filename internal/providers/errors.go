package providers

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a fetch failed.
type ErrorKind string

const (
	// KindNetwork covers transport failures, including cancelled contexts.
	KindNetwork ErrorKind = "network"
	// KindNotFound covers any non-success response from the remote.
	KindNotFound ErrorKind = "not_found"
	// KindDecode covers bodies that do not parse into the expected schema.
	KindDecode ErrorKind = "decode"
)

// FetchError captures a failed resource fetch.
type FetchError struct {
	Kind       ErrorKind
	Locator    string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s: %s", e.Locator, e.Kind)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NetworkError wraps a transport failure for locator.
func NetworkError(locator string, err error) *FetchError {
	return &FetchError{Kind: KindNetwork, Locator: locator, Err: err}
}

// NotFoundError reports a non-success status for locator.
func NotFoundError(locator string, status int, err error) *FetchError {
	return &FetchError{Kind: KindNotFound, Locator: locator, StatusCode: status, Err: err}
}

// DecodeError wraps a parse failure for locator.
func DecodeError(locator string, err error) *FetchError {
	return &FetchError{Kind: KindDecode, Locator: locator, Err: err}
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// KindOf returns the kind of the outermost FetchError in err's chain, or "" when none.
func KindOf(err error) ErrorKind {
	if fetchErr, ok := AsFetchError(err); ok {
		return fetchErr.Kind
	}
	return ""
}

// IsNotFound reports whether err is a not-found fetch failure.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
