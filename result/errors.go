package result

import (
	"github.com/juju/errors"
)

// Usage and range error conditions surfaced by the result engine. Callers
// match them with errors.Cause.
var (
	// ErrNoResult is returned when result facts (column count, affected
	// rows, auto increment, warnings) are queried before any result has
	// been prepared.
	ErrNoResult = errors.New("empty result")

	// ErrNoData is returned when rows are requested from a result that
	// never carried row data.
	ErrNoData = errors.New("result has no data")

	// ErrOutOfRange is returned for column positions outside the current
	// metadata bounds.
	ErrOutOfRange = errors.New("column position out of range")

	// ErrResultReleased is returned once the underlying reply has been
	// released.
	ErrResultReleased = errors.New("result already released")
)
