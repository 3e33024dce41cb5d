// Package chart assembles natal and progressed charts from the ephemeris,
// house and aspect components. Every call builds a fresh, self-contained
// value; nothing is cached between calls.
package chart
