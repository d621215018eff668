package catalog

import (
	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

// #region centers
// Valid reports whether c is one of the nine centers.
func (c Center) Valid() bool {
	return c >= Head && c <= Root
}

func (c Center) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return centers[c].Name
}

// CenterInfoOf returns the descriptor for c.
func CenterInfoOf(c Center) (CenterInfo, bool) {
	if !c.Valid() {
		return CenterInfo{}, false
	}
	return centers[c], true
}

// #endregion centers

// #region gates
// GateInfo returns gate n (1..64).
func GateInfo(n int) (Gate, bool) {
	if n < 1 || n > 64 {
		return Gate{}, false
	}
	return gates[n], true
}

// LineName returns the name of line (1..6) of gate (1..64).
func LineName(gate, line int) (string, bool) {
	if gate < 1 || gate > 64 || line < 1 || line > zodiac.Lines {
		return "", false
	}
	return lineNames[gate][line-1], true
}

// CenterOf returns the center gate n belongs to.
func CenterOf(n int) (Center, bool) {
	g, ok := GateInfo(n)
	if !ok {
		return 0, false
	}
	return g.Center, true
}

// DimensionOf returns the primary dimension of gate n, found through its
// center. This is the only route from a gate to a dimension.
func DimensionOf(n int) (dimension.Dimension, bool) {
	c, ok := CenterOf(n)
	if !ok {
		return 0, false
	}
	return centers[c].Dimension, true
}

// Polarity returns the partner gate of n.
func Polarity(n int) (int, bool) {
	if n < 1 || n > 64 {
		return 0, false
	}
	return polarity[n], true
}

// #endregion gates

// #region subdivisions
// Color returns color n (1..6).
func Color(n int) (ColorInfo, bool) {
	if n < 1 || n > zodiac.Colors {
		return ColorInfo{}, false
	}
	return colors[n-1], true
}

// Tone returns tone n (1..6).
func Tone(n int) (ToneInfo, bool) {
	if n < 1 || n > zodiac.Tones {
		return ToneInfo{}, false
	}
	return tones[n-1], true
}

// Base returns base n (1..5).
func Base(n int) (BaseInfo, bool) {
	if n < 1 || n > zodiac.Bases {
		return BaseInfo{}, false
	}
	return bases[n-1], true
}

// DimensionInfoOf returns the keynote and phrase of d.
func DimensionInfoOf(d dimension.Dimension) (DimensionInfo, bool) {
	if !d.Valid() {
		return DimensionInfo{}, false
	}
	return dimensions[d], true
}

// #endregion subdivisions

// #region describe
// Describe composes every catalog entry that applies to coord. It only reads
// tables; fields for out-of-range indices are left empty.
func Describe(coord coordinate.Coordinate) Description {
	d := Description{
		Coordinate:  coord.String(),
		Position:    coord.Position(),
		GateNumber:  coord.Gate,
		LineNumber:  coord.Line,
		ColorNumber: coord.Color,
		ToneNumber:  coord.Tone,
		BaseNumber:  coord.Base,
	}

	if g, ok := GateInfo(coord.Gate); ok {
		d.GateName = g.Name
		d.GateTheme = g.Theme
		d.GateAmino = g.Amino

		c := centers[g.Center]
		d.CenterName = c.Name
		d.CenterVoice = c.Voice
		d.CenterColor = c.Color

		dim := dimensions[c.Dimension]
		d.Dimension = dim.Dimension
		d.DimensionName = dim.Dimension.String()
		d.DimensionKeynote = dim.Keynote
		d.DimensionPhrase = dim.Phrase

		d.PolarityGate = polarity[coord.Gate]
		d.PolarityName = gates[d.PolarityGate].Name
	}
	if name, ok := LineName(coord.Gate, coord.Line); ok {
		d.LineDescriptor = name
	}
	if c, ok := Color(coord.Color); ok {
		d.ColorDescriptor = c.Name
		d.ColorMotivation = c.Motivation
		d.ColorDetermination = c.Determination
	}
	if t, ok := Tone(coord.Tone); ok {
		d.ToneDescriptor = t.Name
		d.ToneSense = t.Sense
	}
	if b, ok := Base(coord.Base); ok {
		d.BaseDescriptor = b.Nature
	}
	return d
}

// #endregion describe
