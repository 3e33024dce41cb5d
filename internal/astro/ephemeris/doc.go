// Package ephemeris provides the handle every position computation goes
// through.
//
// A handle is opened once with an optional Source of coefficient tables.
// Initialisation is idempotent and serialised by a mutex; afterwards the
// tables are read-only and positions may be computed from any goroutine.
//
// Each body follows a precision ladder: periodic series when a table is
// loaded, simplified orbital elements otherwise, and unavailable when
// neither exists. The rung used is recorded on every position.
package ephemeris
