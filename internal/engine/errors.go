package engine

import (
	"errors"
	"fmt"
)

// RunError is returned by Run when the loop cannot proceed.
type RunError struct {
	Code    RunErrorCode
	Message string
	RunID   string
	Day     int64
	Err     error
}

// RunErrorCode categorizes run errors.
type RunErrorCode string

const (
	// ErrCodeInvalidDays means a negative day count was requested.
	ErrCodeInvalidDays RunErrorCode = "INVALID_DAYS"

	// ErrCodeObserverFailed means the snapshot observer returned an error.
	ErrCodeObserverFailed RunErrorCode = "OBSERVER_FAILED"
)

func (e *RunError) Error() string {
	msg := fmt.Sprintf("%s: %s (run=%s, day=%d)", e.Code, e.Message, e.RunID, e.Day)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// IsObserverError reports whether err came from a failing observer.
func IsObserverError(err error) bool {
	var re *RunError
	if errors.As(err, &re) {
		return re.Code == ErrCodeObserverFailed
	}
	return false
}

func newInvalidDaysError(runID string, day int64, days int) *RunError {
	return &RunError{
		Code:    ErrCodeInvalidDays,
		Message: fmt.Sprintf("days must be non-negative, got %d", days),
		RunID:   runID,
		Day:     day,
	}
}

func newObserverError(runID string, day int64, err error) *RunError {
	return &RunError{
		Code:    ErrCodeObserverFailed,
		Message: "observer rejected snapshot",
		RunID:   runID,
		Day:     day,
		Err:     err,
	}
}
