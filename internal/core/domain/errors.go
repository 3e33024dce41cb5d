package domain

import "errors"

// Domain errors represent calculation and input failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Calculation Errors.

	// ErrInvalidDate indicates a civil date/time that is not calendrical
	// (day 32, month 13, a day inside the 1582 Gregorian gap, ...).
	ErrInvalidDate = errors.New("invalid date")

	// ErrEphemerisDataUnavailable indicates series coefficient tables are missing
	// for a body. Callers fall back to simplified orbital elements where possible.
	ErrEphemerisDataUnavailable = errors.New("ephemeris data unavailable")

	// ErrHouseSystemUnavailable indicates a house system cannot be computed for
	// the given latitude (Placidus semi-arcs are undefined near the poles).
	ErrHouseSystemUnavailable = errors.New("house system unavailable")

	// ErrUnknownBody indicates a request for a body outside the supported roster.
	ErrUnknownBody = errors.New("unknown body")
)
