// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"time"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

// NatalLoaded carries the natal chart the dashboard compares against.
type NatalLoaded struct {
	Chart *domain.NatalChart
	Err   error
}

// SnapshotLoaded carries a freshly computed transit snapshot.
type SnapshotLoaded struct {
	Snapshot *domain.TransitSnapshot
	Err      error
}

// Tick fires on every refresh interval.
type Tick struct {
	At time.Time
}
