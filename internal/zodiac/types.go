package zodiac

import "strings"

// #region sign
// Sign is one of the 12 tropical zodiac signs, in ecliptic order from Aries.
type Sign int

const (
	Aries Sign = iota
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

// SignCount is the number of signs on the wheel.
const SignCount = 12

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Signs returns all signs in wheel order.
func Signs() []Sign {
	out := make([]Sign, SignCount)
	for i := range out {
		out[i] = Sign(i)
	}
	return out
}

// Valid reports whether s names one of the 12 signs.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

func (s Sign) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return signNames[s]
}

// StartDegree is the ecliptic longitude at which the sign begins.
func (s Sign) StartDegree() float64 {
	return float64(s) * 30
}

// ParseSign matches a sign name case-insensitively.
func ParseSign(name string) (Sign, bool) {
	name = strings.TrimSpace(name)
	for i, n := range signNames {
		if strings.EqualFold(n, name) {
			return Sign(i), true
		}
	}
	return 0, false
}

// FindSign returns the first sign (in wheel order) whose name occurs anywhere
// in text, ignoring case.
func FindSign(text string) (Sign, bool) {
	lower := strings.ToLower(text)
	for i, n := range signNames {
		if strings.Contains(lower, strings.ToLower(n)) {
			return Sign(i), true
		}
	}
	return 0, false
}

// #endregion sign

// #region widths
// Subdivision widths in arcseconds. Each width divides its parent exactly:
// 20250 = 6*3375, 3375 = 6*562.5, 562.5 = 6*93.75, 93.75 = 5*18.75.
// All are dyadic rationals, so float64 holds them without rounding.
const (
	SignWidth  = 108000.0 // 30°
	GateWidth  = 20250.0  // 5°37'30"
	LineWidth  = 3375.0   // 56'15"
	ColorWidth = 562.5    // 9'22.5"
	ToneWidth  = 93.75    // 1'33.75"
	BaseWidth  = 18.75    // 18.75"
)

// Subdivision counts per level.
const (
	Lines  = 6
	Colors = 6
	Tones  = 6
	Bases  = 5
)

// GatesPerSign is the number of gate intervals each sign is divided into.
const GatesPerSign = 5

// #endregion widths

// #region interval
// Interval is a half-open arc [Start, End) of a sign, in arcseconds from the
// start of the sign, assigned to a single gate.
type Interval struct {
	Gate  int
	Start float64
	End   float64
}

// Contains reports whether arcseconds falls inside the interval.
func (iv Interval) Contains(arcseconds float64) bool {
	return iv.Start <= arcseconds && arcseconds < iv.End
}

// Width returns End - Start.
func (iv Interval) Width() float64 {
	return iv.End - iv.Start
}

// #endregion interval
