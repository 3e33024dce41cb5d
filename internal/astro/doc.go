// Package astro groups the pure computational components behind the chart
// services: calendar conversion, orbital series, frame transforms, house
// division, aspect matching, chart assembly and transits.
//
// Every package here is synchronous and side-effect free. The only shared
// state is the ephemeris handle's one-time table initialisation.
//
// # Import Rules
//
//   - Can Import: domain, other astro packages (leaf-first), standard library
//   - Cannot Import: ports, services, adapters
package astro
