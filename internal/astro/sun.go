package astro

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

// #region sun
const (
	meanLongitudeAtEpoch = 280.460   // L0, degrees
	meanDailyMotion      = 0.9856474 // n, degrees per day
	meanAnomalyAtEpoch   = 357.528   // M0, degrees
)

// j2000 is 2000-01-01 12:00 UTC.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// SunLongitude returns the Sun's tropical ecliptic longitude in [0, 360).
func SunLongitude(t time.Time) float64 {
	days := t.Sub(j2000).Seconds() / 86400.0

	mean := normalizeDegrees(meanLongitudeAtEpoch + meanDailyMotion*days)
	anomaly := normalizeDegrees(meanAnomalyAtEpoch+meanDailyMotion*days) * math.Pi / 180

	// equation of centre, first two terms
	c := 1.915*math.Sin(anomaly) + 0.020*math.Sin(2*anomaly)

	return normalizeDegrees(mean + c)
}

// SunPosition returns the Sun's position within its sign at t.
func SunPosition(t time.Time) Position {
	return EclipticToZodiac(SunLongitude(t))
}

// BodyPosition returns the position of body at t. Only the Sun is modelled.
func BodyPosition(body Body, t time.Time) (Position, error) {
	if Body(strings.ToLower(string(body))) != Sun {
		return Position{}, fmt.Errorf("position of %s: %w", body, ErrUnsupportedBody)
	}
	return SunPosition(t), nil
}

// #endregion sun

// #region conversion
// EclipticToZodiac splits a longitude into sign, degrees, minutes, seconds.
func EclipticToZodiac(longitude float64) Position {
	lon := normalizeDegrees(longitude)

	idx := int(lon / 30)
	if idx >= zodiac.SignCount {
		idx = zodiac.SignCount - 1
	}
	sign := zodiac.Sign(idx)
	inSign := lon - sign.StartDegree()

	degrees := int(inSign)
	decimalMinutes := (inSign - float64(degrees)) * 60
	minutes := int(decimalMinutes)
	seconds := (decimalMinutes - float64(minutes)) * 60

	return Position{Degrees: degrees, Minutes: minutes, Seconds: seconds, Sign: sign}
}

// ZodiacToEcliptic converts a position back to a longitude in degrees.
func ZodiacToEcliptic(p Position) float64 {
	return p.Sign.StartDegree() + float64(p.Degrees) + float64(p.Minutes)/60 + p.Seconds/3600
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

// #endregion conversion
