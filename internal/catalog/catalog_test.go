package catalog

import (
	"testing"

	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

func TestPolarityIsInvolution(t *testing.T) {
	for g := 1; g <= 64; g++ {
		p, ok := Polarity(g)
		if !ok {
			t.Fatalf("gate %d: no polarity", g)
		}
		if p == g {
			t.Errorf("gate %d is its own polarity", g)
		}
		back, _ := Polarity(p)
		if back != g {
			t.Errorf("polarity[polarity[%d]] = %d", g, back)
		}
	}
}

func TestEveryGateReachesADimension(t *testing.T) {
	for n := 1; n <= 64; n++ {
		g, ok := GateInfo(n)
		if !ok {
			t.Fatalf("gate %d missing", n)
		}
		if g.Number != n {
			t.Errorf("gates[%d].Number = %d", n, g.Number)
		}
		if g.Name == "" || g.Theme == "" || g.Amino == "" {
			t.Errorf("gate %d has empty fields: %+v", n, g)
		}
		if !g.Center.Valid() {
			t.Errorf("gate %d has invalid center %d", n, g.Center)
		}
		if _, ok := DimensionOf(n); !ok {
			t.Errorf("gate %d has no dimension", n)
		}
	}
}

func TestEveryCenterHasADimension(t *testing.T) {
	for c := Head; c <= Root; c++ {
		info, ok := CenterInfoOf(c)
		if !ok {
			t.Fatalf("center %d missing", c)
		}
		if !info.Dimension.Valid() {
			t.Errorf("center %s: invalid dimension", info.Name)
		}
		if info.Voice == "" || info.Color == "" {
			t.Errorf("center %s: empty voice or color", info.Name)
		}
	}
	for _, d := range dimension.All() {
		if _, ok := DimensionInfoOf(d); !ok {
			t.Errorf("dimension %s has no keynote", d)
		}
	}
}

func TestLineNamesComplete(t *testing.T) {
	count := 0
	for g := 1; g <= 64; g++ {
		for l := 1; l <= zodiac.Lines; l++ {
			name, ok := LineName(g, l)
			if !ok || name == "" {
				t.Errorf("gate %d line %d has no name", g, l)
				continue
			}
			count++
		}
	}
	if count != 384 {
		t.Errorf("expected 384 line names, got %d", count)
	}
}

func TestAccessorsRejectOutOfRange(t *testing.T) {
	if _, ok := GateInfo(0); ok {
		t.Error("GateInfo(0) should fail")
	}
	if _, ok := GateInfo(65); ok {
		t.Error("GateInfo(65) should fail")
	}
	if _, ok := LineName(1, 7); ok {
		t.Error("LineName(1, 7) should fail")
	}
	if _, ok := Color(7); ok {
		t.Error("Color(7) should fail")
	}
	if _, ok := Tone(0); ok {
		t.Error("Tone(0) should fail")
	}
	if _, ok := Base(6); ok {
		t.Error("Base(6) should fail")
	}
	if Center(42).String() != "Unknown" {
		t.Error("invalid center should stringify as Unknown")
	}
}

func TestDescribeGate25(t *testing.T) {
	coord := coordinate.Coordinate{Gate: 25, Line: 4, Color: 1, Tone: 3, Base: 3, Sign: zodiac.Aries}
	d := Describe(coord)

	if d.DimensionName != "Movement" || d.Dimension != dimension.Movement {
		t.Errorf("dimension = %s, want Movement", d.DimensionName)
	}
	if d.CenterName != "G" {
		t.Errorf("center = %s, want G", d.CenterName)
	}
	if d.GateName != "Innocence" || d.GateTheme != "Spirit of Self" {
		t.Errorf("gate = %q / %q", d.GateName, d.GateTheme)
	}
	if d.LineDescriptor != "Spiritual Nature" {
		t.Errorf("line = %q", d.LineDescriptor)
	}
	if d.ColorDescriptor != "Fear" || d.ColorMotivation != "Need to know" {
		t.Errorf("color = %q / %q", d.ColorDescriptor, d.ColorMotivation)
	}
	if d.ToneDescriptor != "Action" || d.ToneSense != "Outer Vision" {
		t.Errorf("tone = %q / %q", d.ToneDescriptor, d.ToneSense)
	}
	if d.BaseDescriptor != "Objective" {
		t.Errorf("base = %q", d.BaseDescriptor)
	}
	if d.DimensionKeynote != "I Create" {
		t.Errorf("keynote = %q", d.DimensionKeynote)
	}
	if d.PolarityGate != 46 || d.PolarityName != "Pushing Upward" {
		t.Errorf("polarity = %d %q", d.PolarityGate, d.PolarityName)
	}
	if d.Coordinate != "25.4.1.3.3" {
		t.Errorf("coordinate = %q", d.Coordinate)
	}
}

func TestDescribeResolvedCoordinates(t *testing.T) {
	for _, s := range zodiac.Signs() {
		coord, err := coordinate.Resolve(12, 30, 0, s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		d := Describe(coord)
		if d.GateName == "" || d.LineDescriptor == "" || d.BaseDescriptor == "" {
			t.Errorf("%s: incomplete description %+v", s, d)
		}
	}
}
