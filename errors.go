package dttm

import "github.com/cockroachdb/errors"

// The four failure kinds of the temporal API. Errors from parsing, alias
// resolution, extraction and manipulation wrap exactly one of these; match
// with errors.Is. Argument-shape errors at the UDF boundary are plain.
var (
	// ErrUnknownDatepart reports an alias that is not in the resolver table.
	ErrUnknownDatepart = errors.New("unknown datepart")

	// ErrUnparseableTemporal reports non-null text that matched no parsing
	// strategy or did not form a calendar-valid instant.
	ErrUnparseableTemporal = errors.New("unparseable temporal value")

	// ErrInvalidUnitForOperation reports a resolvable unit that has no
	// meaning for the requested operation, such as truncating to Microsecond
	// or adding DayName.
	ErrInvalidUnitForOperation = errors.New("invalid unit for operation")

	// ErrCalendarOverflow reports arithmetic or construction that leaves the
	// representable year range [1, 9999].
	ErrCalendarOverflow = errors.New("calendar overflow")
)
