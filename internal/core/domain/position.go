package domain

import "fmt"

// Precision labels which rung of the fallback ladder produced a position.
type Precision string

// Precision levels, best first.
const (
	// PrecisionSeries means periodic-series coefficient tables were evaluated.
	PrecisionSeries Precision = "series"

	// PrecisionLunarTheory is the dedicated truncated lunar series.
	PrecisionLunarTheory Precision = "lunar_theory"

	// PrecisionElements means simplified Keplerian elements were used.
	PrecisionElements Precision = "elements"

	// PrecisionEstimated means elements were used outside their reliable range
	// (high eccentricity minor bodies) or a mean-motion formula was applied.
	PrecisionEstimated Precision = "estimated"

	// PrecisionUnavailable means no position could be produced for this body.
	PrecisionUnavailable Precision = "unavailable"
)

// IsDegraded returns true when the position did not come from series data
// or the lunar theory.
func (p Precision) IsDegraded() bool {
	return p != PrecisionSeries && p != PrecisionLunarTheory
}

// String returns the string representation.
func (p Precision) String() string {
	return string(p)
}

// BodyPosition is a geocentric, ecliptic-of-date position.
//
// Retrograde motion is not stored: it is derived from Speed, which is the
// shortest-path signed longitude change over one day.
type BodyPosition struct {
	// Body identifies the body or derived point.
	Body Body

	// Longitude is the ecliptic longitude in degrees, in [0,360).
	Longitude float64

	// Latitude is the ecliptic latitude in degrees, in [-90,90].
	Latitude float64

	// Distance is the geocentric distance in AU; zero when not meaningful.
	Distance float64

	// Speed is the longitude change in degrees per day.
	Speed float64

	// House is the 1-based house the longitude falls in for the chart's
	// primary house system; zero when houses were not computed.
	House int

	// Precision labels how the position was obtained.
	Precision Precision

	// Note explains a degraded precision; empty otherwise.
	Note string
}

// Retrograde reports apparent backward motion.
func (p BodyPosition) Retrograde() bool {
	return p.Speed < 0
}

// Available returns false when the body could not be positioned.
func (p BodyPosition) Available() bool {
	return p.Precision != PrecisionUnavailable
}

// Sign returns the zodiac sign index (0 = Aries ... 11 = Pisces).
func (p BodyPosition) Sign() ZodiacSign {
	return SignOf(p.Longitude)
}

// ZodiacSign is a 30° segment of the ecliptic, 0 = Aries.
type ZodiacSign int

// Zodiac signs.
const (
	Aries ZodiacSign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignOf returns the sign containing a longitude. The longitude must already
// be normalised to [0,360).
func SignOf(longitude float64) ZodiacSign {
	s := int(longitude / 30)
	if s < 0 {
		s = 0
	}
	if s > 11 {
		s = 11
	}
	return ZodiacSign(s)
}

// String returns the English sign name.
func (s ZodiacSign) String() string {
	if s < 0 || int(s) >= len(signNames) {
		return unknownDescription
	}
	return signNames[s]
}

// FormatZodiac renders a longitude as degrees and minutes within its sign,
// e.g. "15°32' Aries". Minutes are truncated so a value never rounds into
// the next sign.
func FormatZodiac(longitude float64) string {
	longitude = normalize(longitude)
	sign := SignOf(longitude)
	within := longitude - float64(sign)*30
	deg := int(within)
	minutes := int((within - float64(deg)) * 60)
	return fmt.Sprintf("%2d°%02d' %s", deg, minutes, sign)
}
