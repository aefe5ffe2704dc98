package model

import (
	"errors"
	"fmt"
)

// ErrNoVacancies means a run produced nothing to show or save.
var ErrNoVacancies = errors.New("no vacancies match the criteria")

// HTTPError wraps a non-2xx status code returned by a provider.
type HTTPError struct {
	StatusCode int
	Body       string // first bytes of the response body, for the log line
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
