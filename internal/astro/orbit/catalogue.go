package orbit

import (
	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/calendar"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

// planetElements are the approximate Keplerian elements valid 1800–2050,
// mean ecliptic and equinox of J2000, rates per century.
var planetElements = []domain.OrbitalElements{
	{
		Body:          domain.BodyMercury,
		SemiMajorAxis: 0.38709927, SemiMajorAxisRate: 0.00000037,
		Eccentricity: 0.20563593, EccentricityRate: 0.00001906,
		Inclination: 7.00497902, InclinationRate: -0.00594749,
		MeanLongitude: 252.25032350, MeanLongitudeRate: 149472.67411175,
		PerihelionLongitude: 77.45779628, PerihelionLongitudeRate: 0.16047689,
		AscendingNode: 48.33076593, AscendingNodeRate: -0.12534081,
	},
	{
		Body:          domain.BodyVenus,
		SemiMajorAxis: 0.72333566, SemiMajorAxisRate: 0.00000390,
		Eccentricity: 0.00677672, EccentricityRate: -0.00004107,
		Inclination: 3.39467605, InclinationRate: -0.00078890,
		MeanLongitude: 181.97909950, MeanLongitudeRate: 58517.81538729,
		PerihelionLongitude: 131.60246718, PerihelionLongitudeRate: 0.00268329,
		AscendingNode: 76.67984255, AscendingNodeRate: -0.27769418,
	},
	{
		// Earth-Moon barycenter.
		Body:          domain.BodyEarth,
		SemiMajorAxis: 1.00000261, SemiMajorAxisRate: 0.00000562,
		Eccentricity: 0.01671123, EccentricityRate: -0.00004392,
		Inclination: -0.00001531, InclinationRate: -0.01294668,
		MeanLongitude: 100.46457166, MeanLongitudeRate: 35999.37244981,
		PerihelionLongitude: 102.93768193, PerihelionLongitudeRate: 0.32327364,
	},
	{
		Body:          domain.BodyMars,
		SemiMajorAxis: 1.52371034, SemiMajorAxisRate: 0.00001847,
		Eccentricity: 0.09339410, EccentricityRate: 0.00007882,
		Inclination: 1.84969142, InclinationRate: -0.00813131,
		MeanLongitude: -4.55343205, MeanLongitudeRate: 19140.30268499,
		PerihelionLongitude: -23.94362959, PerihelionLongitudeRate: 0.44441088,
		AscendingNode: 49.55953891, AscendingNodeRate: -0.29257343,
	},
	{
		Body:          domain.BodyJupiter,
		SemiMajorAxis: 5.20288700, SemiMajorAxisRate: -0.00011607,
		Eccentricity: 0.04838624, EccentricityRate: -0.00013253,
		Inclination: 1.30439695, InclinationRate: -0.00183714,
		MeanLongitude: 34.39644051, MeanLongitudeRate: 3034.74612775,
		PerihelionLongitude: 14.72847983, PerihelionLongitudeRate: 0.21252668,
		AscendingNode: 100.47390909, AscendingNodeRate: 0.20469106,
	},
	{
		Body:          domain.BodySaturn,
		SemiMajorAxis: 9.53667594, SemiMajorAxisRate: -0.00125060,
		Eccentricity: 0.05386179, EccentricityRate: -0.00050991,
		Inclination: 2.48599187, InclinationRate: 0.00193609,
		MeanLongitude: 49.95424423, MeanLongitudeRate: 1222.49362201,
		PerihelionLongitude: 92.59887831, PerihelionLongitudeRate: -0.41897216,
		AscendingNode: 113.66242448, AscendingNodeRate: -0.28867794,
	},
	{
		Body:          domain.BodyUranus,
		SemiMajorAxis: 19.18916464, SemiMajorAxisRate: -0.00196176,
		Eccentricity: 0.04725744, EccentricityRate: -0.00004397,
		Inclination: 0.77263783, InclinationRate: -0.00242939,
		MeanLongitude: 313.23810451, MeanLongitudeRate: 428.48202785,
		PerihelionLongitude: 170.95427630, PerihelionLongitudeRate: 0.40805281,
		AscendingNode: 74.01692503, AscendingNodeRate: 0.04240589,
	},
	{
		Body:          domain.BodyNeptune,
		SemiMajorAxis: 30.06992276, SemiMajorAxisRate: 0.00026291,
		Eccentricity: 0.00859048, EccentricityRate: 0.00005105,
		Inclination: 1.77004347, InclinationRate: 0.00035372,
		MeanLongitude: -55.12002969, MeanLongitudeRate: 218.45945325,
		PerihelionLongitude: 44.96476227, PerihelionLongitudeRate: -0.32241464,
		AscendingNode: 131.78422574, AscendingNodeRate: -0.00508664,
	},
	{
		Body:          domain.BodyPluto,
		SemiMajorAxis: 39.48211675, SemiMajorAxisRate: -0.00031596,
		Eccentricity: 0.24882730, EccentricityRate: 0.00005170,
		Inclination: 17.14001206, InclinationRate: 0.00004818,
		MeanLongitude: 238.92903833, MeanLongitudeRate: 145.20780515,
		PerihelionLongitude: 224.06891629, PerihelionLongitudeRate: -0.04062942,
		AscendingNode: 110.30393684, AscendingNodeRate: -0.01183482,
	},
}

// minorElements are osculating elements frozen at a single epoch. Positions
// drift by degrees over decades; every result is labelled estimated.
var minorElements = []domain.OrbitalElements{
	osculating(domain.BodyChiron, 13.648, 0.3806, 6.935, 209.38, 339.25, 2450128.0),
	osculating(domain.BodyCeres, 2.7691, 0.0760, 10.594, 80.305, 73.60, 2458237.5),
	osculating(domain.BodyPallas, 2.7730, 0.2299, 34.84, 173.08, 310.05, 2458353.5),
	osculating(domain.BodyJuno, 2.6685, 0.2569, 12.99, 169.87, 248.41, 2458437.5),
	osculating(domain.BodyVesta, 2.3617, 0.0887, 7.14, 103.81, 151.19, 2458250.5),
}

// osculating converts perihelion-passage elements into mean-longitude form at
// J2000 with an unperturbed two-body mean motion.
func osculating(body domain.Body, a, e, i, node, argPeri, perihelionJD float64) domain.OrbitalElements {
	rate := MeanMotion(a)
	peri := angle.Normalize(node + argPeri)
	m := rate * (calendar.J2000 - perihelionJD) / calendar.DaysPerCentury
	return domain.OrbitalElements{
		Body:                body,
		Epoch:               calendar.J2000,
		SemiMajorAxis:       a,
		Eccentricity:        e,
		Inclination:         i,
		MeanLongitude:       angle.Normalize(peri + m),
		MeanLongitudeRate:   rate,
		PerihelionLongitude: peri,
		AscendingNode:       node,
	}
}

// DefaultCatalogue returns the built-in element sets keyed by body. The map
// is freshly built so callers may override entries.
func DefaultCatalogue() map[domain.Body]domain.OrbitalElements {
	out := make(map[domain.Body]domain.OrbitalElements, len(planetElements)+len(minorElements))
	for _, e := range planetElements {
		e.Epoch = calendar.J2000
		out[e.Body] = e
	}
	for _, e := range minorElements {
		out[e.Body] = e
	}
	return out
}
