// Package calendar converts civil date/time to Julian Day (UT) and back,
// and derives sidereal time.
//
// Dates on or after 1582-10-15 use the Gregorian calendar; dates on or before
// 1582-10-04 use the proleptic Julian calendar. The ten days between do not
// exist and are rejected.
package calendar

import (
	"fmt"
	"math"
	"time"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

const (
	// J2000 is the Julian Day of 2000-01-01T12:00:00 TT, used here on the UT scale.
	J2000 = 2451545.0

	// DaysPerCentury is the length of a Julian century.
	DaysPerCentury = 36525.0

	// DaysPerMillennium is the length of a Julian millennium.
	DaysPerMillennium = 365250.0

	// unixEpochJD is 1970-01-01T00:00:00Z.
	unixEpochJD = 2440587.5

	// gregorianStartJD is 1582-10-15T00:00:00, the first Gregorian day.
	gregorianStartJD = 2299160.5

	secondsPerDay = 86400.0

	// MinYear is the earliest accepted year, the start of the Julian Day count.
	MinYear = -4712
)

// JulianDay converts a civil instant to a UT Julian Day.
func JulianDay(c domain.CivilTime) (float64, error) {
	if err := Validate(c); err != nil {
		return 0, err
	}

	y := c.Year
	m := c.Month
	if m <= 2 {
		y--
		m += 12
	}

	b := 0.0
	if isGregorian(c.Year, c.Month, c.Day) {
		a := math.Floor(float64(y) / 100)
		b = 2 - a + math.Floor(a/4)
	}

	dayFraction := (float64(c.Hour) + float64(c.Minute)/60 + c.Second/3600 - c.UTCOffset) / 24
	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(c.Day) + dayFraction + b - 1524.5
	return jd, nil
}

// MustJulianDay is JulianDay for inputs known to be valid, such as constants in tests.
func MustJulianDay(c domain.CivilTime) float64 {
	jd, err := JulianDay(c)
	if err != nil {
		panic(err)
	}
	return jd
}

// Validate rejects non-calendrical component combinations.
func Validate(c domain.CivilTime) error {
	if c.Year < MinYear {
		return fmt.Errorf("%w: year %d is before %d", domain.ErrInvalidDate, c.Year, MinYear)
	}
	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("%w: month %d", domain.ErrInvalidDate, c.Month)
	}
	if c.Day < 1 || c.Day > DaysInMonth(c.Year, c.Month) {
		return fmt.Errorf("%w: day %d of %04d-%02d", domain.ErrInvalidDate, c.Day, c.Year, c.Month)
	}
	if c.Year == 1582 && c.Month == 10 && c.Day > 4 && c.Day < 15 {
		return fmt.Errorf("%w: 1582-10-%02d falls in the Gregorian reform gap", domain.ErrInvalidDate, c.Day)
	}
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("%w: hour %d", domain.ErrInvalidDate, c.Hour)
	}
	if c.Minute < 0 || c.Minute > 59 {
		return fmt.Errorf("%w: minute %d", domain.ErrInvalidDate, c.Minute)
	}
	if math.IsNaN(c.Second) || c.Second < 0 || c.Second >= 60 {
		return fmt.Errorf("%w: second %v", domain.ErrInvalidDate, c.Second)
	}
	if math.IsNaN(c.UTCOffset) || math.Abs(c.UTCOffset) > 14 {
		return fmt.Errorf("%w: utc offset %v", domain.ErrInvalidDate, c.UTCOffset)
	}
	return nil
}

// DaysInMonth returns the month length under whichever calendar applies to the year.
// October 1582 keeps its nominal 31 days; Validate rejects the gap separately.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeap(year int) bool {
	if year < 1582 {
		return year%4 == 0
	}
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func isGregorian(year, month, day int) bool {
	if year != 1582 {
		return year > 1582
	}
	if month != 10 {
		return month > 10
	}
	return day >= 15
}

// FromJulianDay converts a UT Julian Day back to a civil instant at UTC+0.
// Seconds are rounded to the millisecond. The inverse holds from JD -0.5,
// the first instant of MinYear; earlier days are not supported.
func FromJulianDay(jd float64) domain.CivilTime {
	shifted := jd + 0.5
	z := math.Floor(shifted)
	secs := math.Round((shifted-z)*secondsPerDay*1e3) / 1e3
	if secs >= secondsPerDay {
		z++
		secs -= secondsPerDay
	}

	a := z
	if z >= gregorianStartJD+0.5 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := int(b - d - math.Floor(30.6001*e))
	month := int(e - 1)
	if e >= 14 {
		month = int(e - 13)
	}
	year := int(c - 4716)
	if month <= 2 {
		year = int(c - 4715)
	}

	hour := int(secs / 3600)
	secs -= float64(hour) * 3600
	minute := int(secs / 60)
	secs -= float64(minute) * 60

	return domain.CivilTime{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: secs,
	}
}

// FromTime converts a time.Time to a UT Julian Day.
func FromTime(t time.Time) float64 {
	return unixEpochJD + (float64(t.Unix())+float64(t.Nanosecond())/1e9)/secondsPerDay
}

// Time converts a UT Julian Day to a UTC time.Time, rounded to the microsecond.
func Time(jd float64) time.Time {
	total := (jd - unixEpochJD) * secondsPerDay
	sec := math.Floor(total)
	micros := math.Round((total - sec) * 1e6)
	return time.Unix(int64(sec), int64(micros)*1000).UTC()
}

// Centuries returns Julian centuries since J2000.0.
func Centuries(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// Millennia returns Julian millennia since J2000.0.
func Millennia(jd float64) float64 {
	return (jd - J2000) / DaysPerMillennium
}
