package externalApi

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound       = errors.New("error not found")
	ErrInvalidRequest = errors.New("error invalid request")
)

// FetchError tags a provider failure with the symbol it happened for.
type FetchError struct {
	Symbol string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewFetchError(symbol string, err error) error {
	return &FetchError{Symbol: symbol, Err: err}
}

func ValidateHistoryRequest(symbol string, start, end time.Time) error {
	if symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidRequest)
	}
	if start.After(end) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidRequest, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	return nil
}

var (
	ErrEmptyTable  = errors.New("error empty table")
	ErrWriteFailed = errors.New("error write failed")
)
