// Package astro supplies the ecliptic positions that feed coordinate
// resolution. The Sun model is a low-order mean-longitude formula; it is
// adequate to pick a gate, not to do astronomy.
package astro

import (
	"errors"
	"fmt"
	"time"

	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

// #region body
// Body names a celestial body.
type Body string

const (
	Sun     Body = "sun"
	Moon    Body = "moon"
	Mercury Body = "mercury"
	Venus   Body = "venus"
	Mars    Body = "mars"
)

// ErrUnsupportedBody is returned for bodies without an ephemeris model.
var ErrUnsupportedBody = errors.New("unsupported body")

// #endregion body

// #region position
// Position is an ecliptic longitude expressed within a zodiac sign.
type Position struct {
	Degrees int         `json:"degrees"`
	Minutes int         `json:"minutes"`
	Seconds float64     `json:"seconds"`
	Sign    zodiac.Sign `json:"sign"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d°%d'%.2f\" %s", p.Degrees, p.Minutes, p.Seconds, p.Sign)
}

// #endregion position

// #region provider
// Provider supplies the position of the tracked body at a given time.
type Provider interface {
	Position(t time.Time) (Position, error)
}

// SunProvider tracks the Sun.
type SunProvider struct{}

func (SunProvider) Position(t time.Time) (Position, error) {
	return SunPosition(t), nil
}

// FixedProvider always returns the same position. Used for replays and tests.
type FixedProvider struct {
	At Position
}

func (f FixedProvider) Position(time.Time) (Position, error) {
	return f.At, nil
}

// #endregion provider
