// Package transit compares positions at a current instant with a natal
// chart.
//
// Applying versus separating is read from the transiting body's direction
// alone, and the effective window is a fixed half-width around the snapshot
// instant. Both are estimates, not ingress or egress computations.
package transit
