// Package catalog holds the static symbolic tables that give a coordinate its
// meaning: gates, lines, colors, tones, bases, centers, dimensions and gate
// polarity. All tables are fixed at compile time and read-only.
package catalog

import "github.com/danielpatrickdp/synthai/go-core/internal/dimension"

// #region center
// Center is one of the nine archetypal anchors. Every gate belongs to one.
type Center int

const (
	Head Center = iota
	Ajna
	Throat
	G
	Heart
	Spleen
	Sacral
	SolarPlexus
	Root
)

// CenterCount is the number of centers.
const CenterCount = 9

// CenterInfo describes a center.
type CenterInfo struct {
	Name      string
	Dimension dimension.Dimension
	Voice     string
	Color     string
}

// #endregion center

// #region gate
// Gate describes one of the 64 gates.
type Gate struct {
	Number int
	Name   string
	Theme  string
	Center Center
	Amino  string
}

// #endregion gate

// #region descriptors
// ColorInfo describes a color (motivation) subdivision.
type ColorInfo struct {
	Name          string
	Motivation    string
	Determination string
}

// ToneInfo describes a tone (perception) subdivision.
type ToneInfo struct {
	Name  string
	Sense string
}

// BaseInfo describes a base (grounding) subdivision.
type BaseInfo struct {
	Nature string
}

// DimensionInfo carries the keynote and phrase of a dimension.
type DimensionInfo struct {
	Dimension dimension.Dimension
	Keynote   string
	Phrase    string
}

// #endregion descriptors

// #region description
// Description is the full lookup composition for a coordinate. It performs no
// computation beyond table reads.
type Description struct {
	Coordinate string `json:"coordinate"`
	Position   string `json:"position"`

	GateNumber int    `json:"gate_number"`
	GateName   string `json:"gate_name"`
	GateTheme  string `json:"gate_theme"`
	GateAmino  string `json:"gate_amino"`

	CenterName  string `json:"center_name"`
	CenterVoice string `json:"center_voice"`
	CenterColor string `json:"center_color"`

	LineNumber     int    `json:"line_number"`
	LineDescriptor string `json:"line_descriptor"`

	ColorNumber        int    `json:"color_number"`
	ColorDescriptor    string `json:"color_descriptor"`
	ColorMotivation    string `json:"color_motivation"`
	ColorDetermination string `json:"color_determination"`

	ToneNumber     int    `json:"tone_number"`
	ToneDescriptor string `json:"tone_descriptor"`
	ToneSense      string `json:"tone_sense"`

	BaseNumber     int    `json:"base_number"`
	BaseDescriptor string `json:"base_descriptor"`

	Dimension        dimension.Dimension `json:"dimension"`
	DimensionName    string              `json:"dimension_name"`
	DimensionKeynote string              `json:"dimension_keynote"`
	DimensionPhrase  string              `json:"dimension_phrase"`

	PolarityGate int    `json:"polarity_gate"`
	PolarityName string `json:"polarity_name"`
}

// #endregion description
