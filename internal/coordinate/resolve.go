package coordinate

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

// #region resolve
// Resolve converts an angle within a sign to a Coordinate.
func Resolve(degrees, minutes int, seconds float64, sign zodiac.Sign) (Coordinate, error) {
	if degrees < 0 || degrees >= 30 {
		return Coordinate{}, &InvalidAngleError{Field: "degrees", Value: float64(degrees), Max: 30}
	}
	if minutes < 0 || minutes >= 60 {
		return Coordinate{}, &InvalidAngleError{Field: "minutes", Value: float64(minutes), Max: 60}
	}
	if math.IsNaN(seconds) || seconds < 0 || seconds >= 60 {
		return Coordinate{}, &InvalidAngleError{Field: "seconds", Value: seconds, Max: 60}
	}

	total := toArcseconds(degrees, minutes, seconds)
	iv, ok := zodiac.Locate(sign, total)
	if !ok {
		return Coordinate{}, &OutOfRangeError{Sign: sign, Arcseconds: total}
	}

	offset := total - iv.Start

	line := subdivide(offset, zodiac.LineWidth, zodiac.Lines)
	offset = math.Mod(offset, zodiac.LineWidth)

	color := subdivide(offset, zodiac.ColorWidth, zodiac.Colors)
	offset = math.Mod(offset, zodiac.ColorWidth)

	tone := subdivide(offset, zodiac.ToneWidth, zodiac.Tones)
	offset = math.Mod(offset, zodiac.ToneWidth)

	base := subdivide(offset, zodiac.BaseWidth, zodiac.Bases)

	return Coordinate{
		Gate:    iv.Gate,
		Line:    line,
		Color:   color,
		Tone:    tone,
		Base:    base,
		Sign:    sign,
		Degrees: degrees,
		Minutes: minutes,
		Seconds: seconds,
	}, nil
}

// subdivide returns the 1-based index of offset within slots of the given
// width, clamped to limit.
func subdivide(offset, width float64, limit int) int {
	idx := int(math.Floor(offset/width)) + 1
	if idx > limit {
		return limit
	}
	return idx
}

func toArcseconds(degrees, minutes int, seconds float64) float64 {
	return float64(degrees)*3600 + float64(minutes)*60 + seconds
}

// #endregion resolve

// #region parse
var (
	symbolPattern = regexp.MustCompile(`(\d+)°\s*(\d+)'\s*(\d+\.?\d*)"?`)
	letterPattern = regexp.MustCompile(`(?i)(\d+)d\s*(\d+)m\s*(\d+\.?\d*)s?`)
	spacedPattern = regexp.MustCompile(`(\d+)\s+(\d+)\s+(\d+\.?\d*)`)
)

// Parse reads a position such as `17°23'45" Leo`, `17d 23m 45s Leo` or
// `17 23 45 Leo`. The sign may appear anywhere in the text.
func Parse(text string) (Coordinate, error) {
	sign, ok := zodiac.FindSign(text)
	if !ok {
		return Coordinate{}, &ParseError{Input: text, Reason: "no zodiac sign found"}
	}
	rest := strings.ReplaceAll(strings.ToLower(text), strings.ToLower(sign.String()), "")
	rest = strings.TrimSpace(rest)

	for _, re := range []*regexp.Regexp{symbolPattern, letterPattern, spacedPattern} {
		m := re.FindStringSubmatch(rest)
		if m == nil {
			continue
		}
		deg, err := strconv.Atoi(m[1])
		if err != nil {
			return Coordinate{}, &ParseError{Input: text, Reason: "degrees: " + err.Error()}
		}
		mins, err := strconv.Atoi(m[2])
		if err != nil {
			return Coordinate{}, &ParseError{Input: text, Reason: "minutes: " + err.Error()}
		}
		sec, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return Coordinate{}, &ParseError{Input: text, Reason: "seconds: " + err.Error()}
		}
		return Resolve(deg, mins, sec, sign)
	}
	return Coordinate{}, &ParseError{Input: text, Reason: "unrecognized angle format"}
}

// #endregion parse

// #region format
func formatSeconds(s float64) string {
	if s == math.Trunc(s) {
		return strconv.FormatFloat(s, 'f', 1, 64)
	}
	return strconv.FormatFloat(s, 'f', -1, 64)
}

// #endregion format
