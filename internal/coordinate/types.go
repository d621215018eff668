package coordinate

import (
	"fmt"

	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

// #region coordinate
// Coordinate is a resolved position: the gate interval it falls in plus the
// nested line/color/tone/base subdivisions, and the angle it came from.
// Values are only produced by Resolve and Parse.
type Coordinate struct {
	Gate  int
	Line  int
	Color int
	Tone  int
	Base  int

	Sign    zodiac.Sign
	Degrees int
	Minutes int
	Seconds float64
}

// String renders the coordinate as gate.line.color.tone.base.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d", c.Gate, c.Line, c.Color, c.Tone, c.Base)
}

// Position renders the source angle, e.g. 17°23'45" Leo.
func (c Coordinate) Position() string {
	return fmt.Sprintf("%d°%d'%s\" %s", c.Degrees, c.Minutes, formatSeconds(c.Seconds), c.Sign)
}

// Arcseconds returns the angle as arcseconds from the start of the sign.
func (c Coordinate) Arcseconds() float64 {
	return toArcseconds(c.Degrees, c.Minutes, c.Seconds)
}

// #endregion coordinate

// #region errors
// InvalidAngleError reports a degrees/minutes/seconds value outside its range.
type InvalidAngleError struct {
	Field string // "degrees" | "minutes" | "seconds"
	Value float64
	Max   float64
}

func (e *InvalidAngleError) Error() string {
	return fmt.Sprintf("invalid %s: %v not in [0, %v)", e.Field, e.Value, e.Max)
}

// OutOfRangeError reports a position that no wheel interval contains. With a
// valid angle and a known sign this indicates a broken wheel table.
type OutOfRangeError struct {
	Sign       zodiac.Sign
	Arcseconds float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %v\" is outside every interval of %s", e.Arcseconds, e.Sign)
}

// ParseError reports free text that is not a recognizable position.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse position %q: %s", e.Input, e.Reason)
}

// #endregion errors
