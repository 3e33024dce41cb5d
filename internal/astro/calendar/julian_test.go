package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

func civil(y, mo, d, h, mi int, s float64) domain.CivilTime {
	return domain.CivilTime{Year: y, Month: mo, Day: d, Hour: h, Minute: mi, Second: s}
}

func TestJulianDay_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   domain.CivilTime
		want float64
	}{
		{"J2000", civil(2000, 1, 1, 12, 0, 0), 2451545.0},
		{"Sputnik", civil(1957, 10, 4, 19, 26, 24), 2436116.31},
		{"1987 Jan", civil(1987, 1, 27, 0, 0, 0), 2446822.5},
		{"1988 Jun", civil(1988, 6, 19, 12, 0, 0), 2447332.0},
		{"1600", civil(1600, 1, 1, 0, 0, 0), 2305447.5},
		{"Julian 837", civil(837, 4, 10, 7, 12, 0), 2026871.8},
		{"Julian -1000", civil(-1000, 7, 12, 12, 0, 0), 1356001.0},
		{"Epoch", civil(-4712, 1, 1, 12, 0, 0), 0.0},
		{"Last Julian day", civil(1582, 10, 4, 0, 0, 0), 2299159.5},
		{"First Gregorian day", civil(1582, 10, 15, 0, 0, 0), 2299160.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JulianDay(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestJulianDay_UTCOffset(t *testing.T) {
	local := civil(1990, 1, 1, 5, 30, 0)
	local.UTCOffset = 5.5
	jdLocal, err := JulianDay(local)
	require.NoError(t, err)

	jdUTC, err := JulianDay(civil(1990, 1, 1, 0, 0, 0))
	require.NoError(t, err)

	assert.InDelta(t, jdUTC, jdLocal, 1e-9)
}

func TestJulianDay_InvalidDates(t *testing.T) {
	tests := []struct {
		name string
		in   domain.CivilTime
	}{
		{"day 32", civil(2020, 1, 32, 0, 0, 0)},
		{"day 0", civil(2020, 1, 0, 0, 0, 0)},
		{"month 13", civil(2020, 13, 1, 0, 0, 0)},
		{"Feb 29 non-leap", civil(1900, 2, 29, 0, 0, 0)},
		{"Feb 30", civil(2000, 2, 30, 0, 0, 0)},
		{"April 31", civil(2021, 4, 31, 0, 0, 0)},
		{"reform gap", civil(1582, 10, 10, 0, 0, 0)},
		{"hour 24", civil(2020, 1, 1, 24, 0, 0)},
		{"minute 60", civil(2020, 1, 1, 0, 60, 0)},
		{"second 60", civil(2020, 1, 1, 0, 0, 60)},
		{"negative second", civil(2020, 1, 1, 0, 0, -1)},
		{"NaN second", civil(2020, 1, 1, 0, 0, math.NaN())},
		{"offset 15h", domain.CivilTime{Year: 2020, Month: 1, Day: 1, UTCOffset: 15}},
		{"before the Julian Day epoch", civil(-4713, 12, 31, 12, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JulianDay(tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidDate)
		})
	}
}

func TestJulianDay_LeapYears(t *testing.T) {
	_, err := JulianDay(civil(2000, 2, 29, 0, 0, 0))
	assert.NoError(t, err)
	// 1500 is a leap year in the Julian calendar.
	_, err = JulianDay(civil(1500, 2, 29, 0, 0, 0))
	assert.NoError(t, err)
}

func TestJulianDay_Monotonic(t *testing.T) {
	prev := -math.MaxFloat64
	for year := 1500; year <= 2100; year += 7 {
		for month := 1; month <= 12; month += 5 {
			c := civil(year, month, 1, 0, 0, 0)
			if year == 1582 && month == 10 {
				c.Day = 15
			}
			jd, err := JulianDay(c)
			require.NoError(t, err)
			assert.Greater(t, jd, prev)
			prev = jd
		}
	}
}

func TestFromJulianDay_RoundTrip(t *testing.T) {
	inputs := []domain.CivilTime{
		civil(1990, 1, 1, 0, 0, 0),
		civil(2000, 1, 1, 12, 0, 0),
		civil(1957, 10, 4, 19, 26, 24),
		civil(1999, 12, 31, 23, 59, 59),
		civil(2024, 2, 29, 6, 15, 30.5),
		civil(1582, 10, 15, 0, 0, 1),
		civil(1582, 10, 4, 23, 0, 0),
		civil(1066, 10, 14, 9, 0, 0),
		civil(2100, 3, 1, 18, 45, 12),
	}
	for _, in := range inputs {
		t.Run(in.String(), func(t *testing.T) {
			jd, err := JulianDay(in)
			require.NoError(t, err)

			out := FromJulianDay(jd)
			back, err := JulianDay(out)
			require.NoError(t, err)

			assert.Equal(t, in.Year, out.Year)
			assert.Equal(t, in.Month, out.Month)
			assert.Equal(t, in.Day, out.Day)
			assert.Equal(t, in.Hour, out.Hour)
			assert.Equal(t, in.Minute, out.Minute)
			assert.InDelta(t, in.Second, out.Second, 1.0)
			assert.InDelta(t, jd, back, 1.0/86400)
		})
	}
}

func TestFromJulianDay_Epoch(t *testing.T) {
	noon, err := JulianDay(civil(MinYear, 1, 1, 12, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0, noon, 1e-9)

	start, err := JulianDay(civil(MinYear, 1, 1, 0, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, -0.5, start, 1e-9)

	out := FromJulianDay(start)
	assert.Equal(t, MinYear, out.Year)
	assert.Equal(t, 1, out.Month)
	assert.Equal(t, 1, out.Day)
	assert.Equal(t, 0, out.Hour)

	for jd := start; jd < start+40000; jd += 987.25 {
		c := FromJulianDay(jd)
		back, err := JulianDay(c)
		require.NoError(t, err, "civil %s", c)
		assert.InDelta(t, jd, back, 1.0/86400)
	}
}

func TestFromJulianDay_RoundTripSweep(t *testing.T) {
	start := MustJulianDay(civil(1600, 1, 1, 0, 0, 0))
	for jd := start; jd < start+200000; jd += 1234.5678 {
		c := FromJulianDay(jd)
		back, err := JulianDay(c)
		require.NoError(t, err, "civil %s", c)
		assert.InDelta(t, jd, back, 1.0/86400)
	}
}

func TestTime_FromTime(t *testing.T) {
	ref := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	jd := FromTime(ref)
	assert.InDelta(t, 2447892.5, jd, 1e-9)
	assert.True(t, ref.Equal(Time(jd)))

	withZone := time.Date(1990, 1, 1, 5, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	assert.InDelta(t, jd, FromTime(withZone), 1e-9)
}

func TestCentury(t *testing.T) {
	assert.Equal(t, 0.0, Centuries(J2000))
	assert.InDelta(t, 1.0, Centuries(J2000+DaysPerCentury), 1e-12)
	assert.InDelta(t, 0.1, Millennia(J2000+DaysPerCentury), 1e-12)
}
