// Package aspects matches angular separations against an orb table.
package aspects
