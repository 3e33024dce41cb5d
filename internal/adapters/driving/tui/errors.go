package tui

import "errors"

// ErrMissingChartService is returned when the chart service is not provided.
var ErrMissingChartService = errors.New("tui: chart service is required")

// ErrInvalidInterval is returned when the refresh interval is not positive.
var ErrInvalidInterval = errors.New("tui: refresh interval must be positive")
