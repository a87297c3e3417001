package svg

import "errors"

var (
	// ErrMalformedNumber reports text that cannot be read as a numeric
	// token where one is required.
	ErrMalformedNumber = errors.New("malformed numeric token")
	// ErrArityMismatch reports a path command that received fewer
	// coordinate values than it requires.
	ErrArityMismatch = errors.New("wrong number of coordinate values")
	// ErrMissingAttribute reports a shape element lacking a required
	// attribute, or carrying a non-numeric value for one.
	ErrMissingAttribute = errors.New("missing or invalid required attribute")
	// ErrEmptyPolygon reports a polygon element with no points.
	ErrEmptyPolygon = errors.New("polygon has no points")
)
