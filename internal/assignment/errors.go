package assignment

import (
	"errors"
	"fmt"
)

// ErrInvalidMutation is matched by every validation failure below.
var ErrInvalidMutation = errors.New("invalid mutation")

var (
	ErrNotFound          = fmt.Errorf("%w: assignment not found", ErrInvalidMutation)
	ErrEmptyName         = fmt.Errorf("%w: name is required", ErrInvalidMutation)
	ErrEmptyClass        = fmt.Errorf("%w: class is required", ErrInvalidMutation)
	ErrInvalidPriority   = fmt.Errorf("%w: priority must be Low, Medium or High", ErrInvalidMutation)
	ErrInvalidDifficulty = fmt.Errorf("%w: difficulty must be between 1 and 10", ErrInvalidMutation)
	ErrMissingDueDate    = fmt.Errorf("%w: due date is required", ErrInvalidMutation)

	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
	ErrCalendarExport        = errors.New("calendar export failed")

	// ErrNotLoaded is wrapped in the StoreIOError of writes held back
	// because the persisted set could not be read.
	ErrNotLoaded = errors.New("persisted assignments could not be read, changes are kept in memory")
)
