// Package orbit computes heliocentric positions of the planets and minor
// bodies, and the geocentric Moon and Sun from their dedicated theories.
//
// Two modes are available for planets. Series mode evaluates periodic
// coefficient tables supplied at runtime; elements mode solves Kepler's
// equation from linear-in-time orbital elements. Series output refers to the
// ecliptic and equinox of date. Element longitudes are referred to J2000 and
// carried to the equinox of date with a general-precession term so the two
// modes can be mixed in one chart.
package orbit
