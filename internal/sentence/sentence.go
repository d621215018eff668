package sentence

import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/synthai/go-core/internal/catalog"
	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
)

// #region generate

// Generate describes coord and renders all three sentences.
func Generate(coord coordinate.Coordinate) (catalog.Description, Sentences) {
	d := catalog.Describe(coord)
	return d, FromDescription(d)
}

// FromDescription renders the sentences of an existing description.
func FromDescription(d catalog.Description) Sentences {
	return Sentences{
		Metaphysical: Metaphysical(d),
		Scientific:   Scientific(d),
		Guidance:     BuildGuidance(d),
	}
}

// #endregion generate

// #region metaphysical

// Metaphysical strings the description together with the grammar glyphs.
func Metaphysical(d catalog.Description) string {
	return fmt.Sprintf("%s %s %s %s %s motivated by %s %s resonating through %s %s rooted in %s foundation %s %s%s",
		d.DimensionKeynote, d.GateTheme, catalog.GlyphTransitioner,
		d.LineDescriptor, catalog.GlyphCollapse,
		d.ColorMotivation, catalog.GlyphPulse,
		d.ToneSense, catalog.GlyphFlicker,
		d.BaseDescriptor, catalog.GlyphBreath,
		d.CenterVoice, catalog.GlyphCurrent,
	)
}

// #endregion metaphysical

// #region scientific

// Scientific is the plain-language rendering.
func Scientific(d catalog.Description) string {
	return fmt.Sprintf("Gate %d (%s amino acid) expresses %s dimension through %s center, "+
		"manifesting via Line %s, Color %s (%s), Tone %s (%s sensory), Base %s",
		d.GateNumber, d.GateAmino, d.DimensionName, d.CenterName,
		d.LineDescriptor, d.ColorDescriptor, d.ColorDetermination,
		d.ToneDescriptor, d.ToneSense, d.BaseDescriptor,
	)
}

// #endregion scientific

// #region guidance

var actions = [dimension.Count]string{
	dimension.Movement:  "Define your unique expression of %s",
	dimension.Evolution: "Remember the wisdom within %s",
	dimension.Being:     "Embody %s in tangible reality",
	dimension.Design:    "Structure your life around %s",
	dimension.Space:     "Imagine the possibilities of %s",
}

// BuildGuidance derives the action and approach for a description.
func BuildGuidance(d catalog.Description) Guidance {
	var action string
	if d.Dimension.Valid() {
		action = fmt.Sprintf(actions[d.Dimension], d.GateTheme)
	}
	approach := fmt.Sprintf("Your motivation is %s, perceived through %s. Approach this from a %s perspective.",
		strings.ToLower(d.ColorMotivation),
		strings.ToLower(d.ToneSense),
		strings.ToLower(d.BaseDescriptor),
	)
	return Guidance{
		Keynote:    d.DimensionKeynote,
		Action:     action,
		Approach:   approach,
		Theme:      d.GateTheme,
		Expression: d.LineDescriptor,
	}
}

// #endregion guidance

// #region render

// Render builds the [READING] block shown to a user.
func Render(d catalog.Description, s Sentences) string {
	var b strings.Builder
	b.WriteString("[READING]\n")
	fmt.Fprintf(&b, "%s  %s\n", d.Coordinate, d.Position)
	fmt.Fprintf(&b, "Gate %d %s (%s), %s center\n", d.GateNumber, d.GateName, d.GateTheme, d.CenterName)
	fmt.Fprintf(&b, "%s: %s\n", d.DimensionName, d.DimensionPhrase)
	b.WriteString(s.Metaphysical + "\n")
	b.WriteString(s.Scientific + "\n")
	fmt.Fprintf(&b, "%s. %s\n", s.Guidance.Action, s.Guidance.Approach)
	if d.PolarityGate != 0 {
		fmt.Fprintf(&b, "Polarity: gate %d %s\n", d.PolarityGate, d.PolarityName)
	}
	return b.String()
}

// #endregion render
