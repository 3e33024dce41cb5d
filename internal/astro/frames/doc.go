// Package frames converts between heliocentric, geocentric, topocentric,
// ecliptic and equatorial frames, and provides the nutation, obliquity and
// equation-of-time quantities those conversions need.
//
// Neither aberration nor light-time is applied.
package frames
