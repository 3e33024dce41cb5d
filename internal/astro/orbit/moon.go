package orbit

import (
	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/calendar"
)

// Geocentric is a spherical ecliptic position of date as seen from Earth's
// centre. Distance is in AU except where noted.
type Geocentric struct {
	Longitude float64
	Latitude  float64
	Distance  float64
}

// MoonElements are the fundamental lunar arguments in degrees.
type MoonElements struct {
	// MeanLongitude L′.
	MeanLongitude float64
	// Elongation D, mean elongation from the Sun.
	Elongation float64
	// SunAnomaly M.
	SunAnomaly float64
	// MoonAnomaly M′.
	MoonAnomaly float64
	// Latitude F, argument of latitude.
	Latitude float64
}

// LunarElements returns the mean lunar arguments at jd.
func LunarElements(jd float64) MoonElements {
	t := calendar.Centuries(jd)
	t2, t3, t4 := t*t, t*t*t, t*t*t*t
	return MoonElements{
		MeanLongitude: angle.Normalize(218.3164477 + 481267.88123421*t - 0.0015786*t2 + t3/538841 - t4/65194000),
		Elongation:    angle.Normalize(297.8501921 + 445267.1114034*t - 0.0018819*t2 + t3/545868 - t4/113065000),
		SunAnomaly:    angle.Normalize(357.5291092 + 35999.0502909*t - 0.0001536*t2 + t3/24490000),
		MoonAnomaly:   angle.Normalize(134.9633964 + 477198.8675055*t + 0.0087414*t2 + t3/69699 - t4/14712000),
		Latitude:      angle.Normalize(93.2720950 + 483202.0175233*t - 0.0036539*t2 - t3/3526000 + t4/863310000),
	}
}

// lunarTerm multiplies D, M, M′, F. Amplitudes are 1e-6 degree for longitude
// and latitude and metres for distance.
type lunarTerm struct {
	d, m, mp, f int
	sin, cos    float64
}

var moonLongitudeDistance = []lunarTerm{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
	{0, 0, 1, 2, -12528, 0},
	{0, 0, 1, -2, 10980, 79661},
	{4, 0, -1, 0, 10675, -34782},
	{0, 0, 3, 0, 10034, -23210},
	{4, 0, -2, 0, 8548, -21636},
	{2, 1, -1, 0, -7888, 24208},
	{2, 1, 0, 0, -6766, 30824},
	{1, 0, -1, 0, -5163, -8379},
	{1, 1, 0, 0, 4987, -16675},
	{2, -1, 1, 0, 4036, -12831},
	{2, 0, 2, 0, 3994, -10445},
	{4, 0, 0, 0, 3861, -11650},
	{2, 0, -3, 0, 3665, 14403},
	{0, 1, -2, 0, -2689, -7003},
	{2, 0, -1, 2, -2602, 0},
	{2, -1, -2, 0, 2390, 10056},
	{1, 0, 1, 0, -2348, 6322},
	{2, -2, 0, 0, 2236, -9884},
	{0, 1, 2, 0, -2120, 5751},
	{0, 2, 0, 0, -2069, 0},
	{2, -2, -1, 0, 2048, -4950},
	{2, 0, 1, -2, -1773, 4130},
	{2, 0, 0, 2, -1595, 0},
	{4, -1, -1, 0, 1215, -3958},
	{0, 0, 2, 2, -1110, 0},
	{3, 0, -1, 0, -892, 3258},
}

var moonLatitude = []lunarTerm{
	{0, 0, 0, 1, 5128122, 0},
	{0, 0, 1, 1, 280602, 0},
	{0, 0, 1, -1, 277693, 0},
	{2, 0, 0, -1, 173237, 0},
	{2, 0, -1, 1, 55413, 0},
	{2, 0, -1, -1, 46271, 0},
	{2, 0, 0, 1, 32573, 0},
	{0, 0, 2, 1, 17198, 0},
	{2, 0, 1, -1, 9266, 0},
	{0, 0, 2, -1, 8822, 0},
	{2, -1, 0, -1, 8216, 0},
	{2, 0, -2, -1, 4324, 0},
	{2, 0, 1, 1, 4200, 0},
	{2, 1, 0, -1, -3359, 0},
	{2, -1, -1, 1, 2463, 0},
	{2, -1, 0, 1, 2211, 0},
	{2, -1, -1, -1, 2065, 0},
	{0, 1, -1, -1, -1870, 0},
	{4, 0, -1, -1, 1828, 0},
	{0, 1, 0, 1, -1794, 0},
	{0, 0, 0, 3, -1749, 0},
	{0, 1, -1, 1, -1565, 0},
	{1, 0, 0, 1, -1491, 0},
	{0, 1, 1, 1, -1475, 0},
	{0, 1, 1, -1, -1410, 0},
	{0, 1, 0, -1, -1344, 0},
	{1, 0, 0, -1, -1335, 0},
	{0, 0, 3, 1, 1107, 0},
	{4, 0, 0, -1, 1021, 0},
	{4, 0, -1, 1, 833, 0},
}

// KilometresPerAU converts lunar distances.
const KilometresPerAU = 149597870.7

// Moon returns the geocentric Moon at jd from the truncated lunar theory,
// referred to the mean equinox of date. Distance is in AU.
func Moon(jd float64) Geocentric {
	lon, lat, km := MoonKilometres(jd)
	return Geocentric{Longitude: lon, Latitude: lat, Distance: km / KilometresPerAU}
}

// MoonKilometres is Moon with the distance in kilometres.
func MoonKilometres(jd float64) (lon, lat, distance float64) {
	t := calendar.Centuries(jd)
	el := LunarElements(jd)
	e := 1 - 0.002516*t - 0.0000074*t*t

	a1 := 119.75 + 131.849*t
	a2 := 53.09 + 479264.290*t
	a3 := 313.45 + 481266.484*t

	var sl, sr, sb float64
	for _, term := range moonLongitudeDistance {
		arg := term.argument(el)
		f := eccentricityFactor(term.m, e)
		sl += term.sin * f * angle.Sin(arg)
		sr += term.cos * f * angle.Cos(arg)
	}
	for _, term := range moonLatitude {
		sb += term.sin * eccentricityFactor(term.m, e) * angle.Sin(term.argument(el))
	}

	sl += 3958*angle.Sin(a1) + 1962*angle.Sin(el.MeanLongitude-el.Latitude) + 318*angle.Sin(a2)
	sb += -2235*angle.Sin(el.MeanLongitude) + 382*angle.Sin(a3) +
		175*angle.Sin(a1-el.Latitude) + 175*angle.Sin(a1+el.Latitude) +
		127*angle.Sin(el.MeanLongitude-el.MoonAnomaly) - 115*angle.Sin(el.MeanLongitude+el.MoonAnomaly)

	lon = angle.Normalize(el.MeanLongitude + sl/1e6)
	lat = sb / 1e6
	distance = 385000.56 + sr/1000
	return lon, lat, distance
}

func (t lunarTerm) argument(el MoonElements) float64 {
	return float64(t.d)*el.Elongation + float64(t.m)*el.SunAnomaly +
		float64(t.mp)*el.MoonAnomaly + float64(t.f)*el.Latitude
}

// eccentricityFactor scales terms involving the Sun's anomaly for the
// decreasing eccentricity of Earth's orbit.
func eccentricityFactor(m int, e float64) float64 {
	switch m {
	case 1, -1:
		return e
	case 2, -2:
		return e * e
	default:
		return 1
	}
}

// MeanNode returns the longitude of the Moon's mean ascending node.
func MeanNode(jd float64) float64 {
	t := calendar.Centuries(jd)
	return angle.Normalize(125.0445479 - 1934.1362891*t + 0.0020754*t*t + t*t*t/467441 - t*t*t*t/60616000)
}

// TrueNode returns the mean node corrected by its leading periodic terms.
func TrueNode(jd float64) float64 {
	el := LunarElements(jd)
	corr := -1.4979*angle.Sin(2*(el.Elongation-el.Latitude)) -
		0.1500*angle.Sin(el.SunAnomaly) -
		0.1226*angle.Sin(2*el.Elongation) +
		0.1176*angle.Sin(2*el.Latitude) -
		0.0801*angle.Sin(2*(el.MoonAnomaly-el.Latitude))
	return angle.Normalize(MeanNode(jd) + corr)
}

// MeanApogee returns the longitude of the mean lunar apogee (Black Moon
// Lilith), without nutation.
func MeanApogee(jd float64) float64 {
	t := calendar.Centuries(jd)
	perigee := 83.3532465 + 4069.0137287*t - 0.0103200*t*t - t*t*t/80053 + t*t*t*t/18999000
	return angle.Normalize(perigee + 180)
}
