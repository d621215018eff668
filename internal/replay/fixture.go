package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/session"
	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description  string               `json:"description"`
	Interactions []FixtureInteraction `json:"interactions"`
}

// FixturePosition is a structured zodiac position.
type FixturePosition struct {
	Degrees int     `json:"degrees"`
	Minutes int     `json:"minutes"`
	Seconds float64 `json:"seconds"`
	Sign    string  `json:"sign"`
}

// FixtureExpected lists what a turn should produce. Empty fields are not
// checked.
type FixtureExpected struct {
	Coordinate        string `json:"coordinate,omitempty"`
	Dimension         string `json:"dimension,omitempty"`
	DetectedDimension string `json:"detected_dimension,omitempty"`
}

// FixtureInteraction is one recorded turn. Exactly one of Position and
// TextPosition must be set.
type FixtureInteraction struct {
	ID           string           `json:"id"`
	Position     *FixturePosition `json:"position,omitempty"`
	TextPosition string           `json:"text_position,omitempty"`
	Text         string           `json:"text"`
	Expected     FixtureExpected  `json:"expected"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// WriteFixture writes f as indented JSON.
func WriteFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// ToInteraction resolves the fixture position into a domain Interaction.
func (fi *FixtureInteraction) ToInteraction() (Interaction, error) {
	var (
		coord coordinate.Coordinate
		err   error
	)
	switch {
	case fi.Position != nil && fi.TextPosition != "":
		return Interaction{}, fmt.Errorf("interaction %s: both position and text_position set", fi.ID)
	case fi.Position != nil:
		sign, ok := zodiac.ParseSign(fi.Position.Sign)
		if !ok {
			return Interaction{}, fmt.Errorf("interaction %s: unknown sign %q", fi.ID, fi.Position.Sign)
		}
		coord, err = coordinate.Resolve(fi.Position.Degrees, fi.Position.Minutes, fi.Position.Seconds, sign)
	case fi.TextPosition != "":
		coord, err = coordinate.Parse(fi.TextPosition)
	default:
		return Interaction{}, fmt.Errorf("interaction %s: no position", fi.ID)
	}
	if err != nil {
		return Interaction{}, fmt.Errorf("interaction %s: %w", fi.ID, err)
	}
	return Interaction{
		ID:         fi.ID,
		Coordinate: coord,
		Text:       fi.Text,
		Expected:   fi.Expected,
	}, nil
}

// ToInteractions converts every fixture turn, stopping at the first error.
func (f *Fixture) ToInteractions() ([]Interaction, error) {
	out := make([]Interaction, 0, len(f.Interactions))
	for i := range f.Interactions {
		inter, err := f.Interactions[i].ToInteraction()
		if err != nil {
			return nil, err
		}
		out = append(out, inter)
	}
	return out, nil
}

// #endregion fixture-loader

// #region fixture-export

// FromRecords builds a fixture from stored session readings, oldest first.
// The recorded outcomes become the expectations.
func FromRecords(description string, records []session.Record) *Fixture {
	f := &Fixture{
		Description:  description,
		Interactions: make([]FixtureInteraction, 0, len(records)),
	}
	for _, r := range records {
		f.Interactions = append(f.Interactions, FixtureInteraction{
			ID:           r.ReadingID,
			TextPosition: r.Position,
			Text:         r.Text,
			Expected: FixtureExpected{
				Coordinate:        r.Coordinate,
				Dimension:         r.PrimaryDimension,
				DetectedDimension: r.DetectedDimension,
			},
		})
	}
	return f
}

// #endregion fixture-export
