package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// CivilTime is a wall-clock instant together with its offset from UTC.
// It deliberately carries no calendar validation; the calendar converter
// rejects non-calendrical combinations with ErrInvalidDate.
type CivilTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second float64

	// UTCOffset is the zone offset in hours east of Greenwich (e.g. -5 for EST).
	UTCOffset float64
}

// CivilFromTime converts a time.Time, keeping its zone offset.
func CivilFromTime(t time.Time) CivilTime {
	_, offset := t.Zone()
	return CivilTime{
		Year:      t.Year(),
		Month:     int(t.Month()),
		Day:       t.Day(),
		Hour:      t.Hour(),
		Minute:    t.Minute(),
		Second:    float64(t.Second()) + float64(t.Nanosecond())/1e9,
		UTCOffset: float64(offset) / 3600,
	}
}

// ParseCivilTime parses a "YYYY-MM-DD" date and an optional "HH:MM" or
// "HH:MM:SS" clock reading. Only the syntax is checked here; calendar rules
// are enforced when the Julian Day is computed.
func ParseCivilTime(date, clock string, utcOffset float64) (CivilTime, error) {
	var c CivilTime
	parts := strings.Split(strings.TrimSpace(date), "-")
	neg := false
	if len(parts) == 4 && parts[0] == "" {
		// Astronomical year numbering: "-0044-03-15".
		neg = true
		parts = parts[1:]
	}
	if len(parts) != 3 {
		return c, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, date)
	}
	ints := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return c, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, date)
		}
		ints[i] = n
	}
	c.Year, c.Month, c.Day = ints[0], ints[1], ints[2]
	if neg {
		c.Year = -c.Year
	}

	clock = strings.TrimSpace(clock)
	if clock != "" {
		fields := strings.Split(clock, ":")
		if len(fields) < 2 || len(fields) > 3 {
			return c, fmt.Errorf("%w: time %q must be HH:MM or HH:MM:SS", ErrInvalidInput, clock)
		}
		h, errH := strconv.Atoi(fields[0])
		m, errM := strconv.Atoi(fields[1])
		if errH != nil || errM != nil {
			return c, fmt.Errorf("%w: time %q must be HH:MM or HH:MM:SS", ErrInvalidInput, clock)
		}
		c.Hour, c.Minute = h, m
		if len(fields) == 3 {
			sec, err := strconv.ParseFloat(fields[2], 64)
			if err != nil || math.IsNaN(sec) || math.IsInf(sec, 0) {
				return c, fmt.Errorf("%w: time %q must be HH:MM or HH:MM:SS", ErrInvalidInput, clock)
			}
			c.Second = sec
		}
	}

	if math.IsNaN(utcOffset) || utcOffset < -14 || utcOffset > 14 {
		return c, fmt.Errorf("%w: utc offset %v out of range [-14,14]", ErrInvalidInput, utcOffset)
	}
	c.UTCOffset = utcOffset
	return c, nil
}

// String formats the civil time as an ISO-8601-like string.
func (c CivilTime) String() string {
	sign := "+"
	off := c.UTCOffset
	if off < 0 {
		sign = "-"
		off = -off
	}
	offH := int(off)
	offM := int(math.Round((off - float64(offH)) * 60))
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%06.3f%s%02d:%02d",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, sign, offH, offM)
}

// Location is a geographic position in decimal degrees.
// Longitude is positive east of Greenwich.
type Location struct {
	Latitude  float64
	Longitude float64

	// Elevation in metres above sea level; used only for topocentric corrections.
	Elevation float64
}

// Validate checks the coordinate ranges.
func (l Location) Validate() error {
	if math.IsNaN(l.Latitude) || l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90,90]", ErrInvalidInput, l.Latitude)
	}
	if math.IsNaN(l.Longitude) || l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180,180]", ErrInvalidInput, l.Longitude)
	}
	return nil
}
