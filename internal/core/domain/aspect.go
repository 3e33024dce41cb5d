package domain

// AspectType names an angular relationship between two points.
type AspectType string

// Aspect types, ordered by exact angle.
const (
	AspectConjunction    AspectType = "conjunction"
	AspectSemisextile    AspectType = "semisextile"
	AspectSemisquare     AspectType = "semisquare"
	AspectSextile        AspectType = "sextile"
	AspectQuintile       AspectType = "quintile"
	AspectSquare         AspectType = "square"
	AspectTrine          AspectType = "trine"
	AspectSesquiquadrate AspectType = "sesquiquadrate"
	AspectBiquintile     AspectType = "biquintile"
	AspectQuincunx       AspectType = "quincunx"
	AspectOpposition     AspectType = "opposition"
)

// Angle returns the exact separation of the aspect in degrees.
func (t AspectType) Angle() float64 {
	switch t {
	case AspectConjunction:
		return 0
	case AspectSemisextile:
		return 30
	case AspectSemisquare:
		return 45
	case AspectSextile:
		return 60
	case AspectQuintile:
		return 72
	case AspectSquare:
		return 90
	case AspectTrine:
		return 120
	case AspectSesquiquadrate:
		return 135
	case AspectBiquintile:
		return 144
	case AspectQuincunx:
		return 150
	case AspectOpposition:
		return 180
	default:
		return -1
	}
}

// IsMajor returns true for the Ptolemaic aspects.
func (t AspectType) IsMajor() bool {
	switch t {
	case AspectConjunction, AspectSextile, AspectSquare, AspectTrine, AspectOpposition:
		return true
	default:
		return false
	}
}

// IsValid returns true if the aspect type is recognised.
func (t AspectType) IsValid() bool {
	return t.Angle() >= 0
}

// String returns the string representation.
func (t AspectType) String() string {
	return string(t)
}

// Aspect is a detected angular relationship between two points.
type Aspect struct {
	// A and B are the two endpoints; the relationship is symmetric.
	A Point
	B Point

	// Type is the matched aspect.
	Type AspectType

	// Separation is the shorter angular distance between A and B, in [0,180].
	Separation float64

	// Orb is the absolute deviation of Separation from the exact aspect angle.
	Orb float64

	// Exactness is 1 for an exact aspect, falling to 0 at the edge of the orb.
	Exactness float64
}

// Involves returns true if either endpoint is p.
func (a Aspect) Involves(p Point) bool {
	return a.A == p || a.B == p
}
