package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrModelUnavailable means an inference backend failed or timed out.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrAmbiguousReference means an entity matched several records.
	ErrAmbiguousReference = errors.New("ambiguous reference")

	// ErrStoreIO is matched by every StoreIOError.
	ErrStoreIO = errors.New("store io error")
)

// StoreIOError reports a persistence failure. The in-memory state that
// triggered the write stays authoritative.
type StoreIOError struct {
	Op  string
	Err error
}

func (e *StoreIOError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreIOError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStoreIO) match any StoreIOError.
func (e *StoreIOError) Is(target error) bool {
	return target == ErrStoreIO
}

// NewStoreIOError wraps err, or returns nil when err is nil.
func NewStoreIOError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreIOError{Op: op, Err: err}
}
