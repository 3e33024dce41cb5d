// Package houses computes the chart angles and divides the ecliptic into
// twelve houses under the Placidus, Equal and Whole Sign systems.
package houses
