// Package domain defines the core entities for zenith.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Body / Point: Identifiers for the tracked roster and chart angles
//   - CivilTime / Location: The inputs every chart is built from
//   - BodyPosition: A geocentric ecliptic position with precision label
//   - ChartAngles / HouseCusps: The chart's angular framework
//   - Aspect / TransitAspect: Angular relationships between points
//   - NatalChart / TransitSnapshot / ProgressedChart: Assembled records
//   - BirthProfile: The only persisted entity (inputs, never charts)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
