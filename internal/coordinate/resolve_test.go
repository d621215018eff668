package coordinate

import (
	"errors"
	"math"
	"testing"

	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

func TestResolveStartOfEverySign(t *testing.T) {
	for _, s := range zodiac.Signs() {
		c, err := Resolve(0, 0, 0, s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if c.Line != 1 || c.Color != 1 || c.Tone != 1 || c.Base != 1 {
			t.Errorf("%s: got %s, want x.1.1.1.1", s, c)
		}
		ivs, _ := zodiac.Intervals(s)
		if c.Gate != ivs[0].Gate {
			t.Errorf("%s: gate %d, want %d", s, c.Gate, ivs[0].Gate)
		}
	}
}

func TestResolveTopBoundaryClamps(t *testing.T) {
	for _, s := range zodiac.Signs() {
		c, err := Resolve(29, 59, 59.99, s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if c.Line != 6 {
			t.Errorf("%s: line %d, want 6", s, c.Line)
		}
		if c.Color > 6 || c.Tone > 6 || c.Base > 5 {
			t.Errorf("%s: subdivision out of range: %s", s, c)
		}
	}
}

func TestResolveKnownPositions(t *testing.T) {
	tests := []struct {
		name string
		deg  int
		min  int
		sec  float64
		sign zodiac.Sign
		want string
	}{
		// 0°56'15" is exactly one line into Aries' first gate.
		{"one-line-in", 0, 56, 15, zodiac.Aries, "25.2.1.1.1"},
		// 2°48'45" = 10125" = three full lines.
		{"line-four", 2, 48, 45, zodiac.Aries, "25.4.1.1.1"},
		// 10125 + 562.5 + 2*93.75 + 2*18.75 = 10912.5" = 3°1'52.5"
		{"deep-subdivision", 3, 1, 52.5, zodiac.Aries, "25.4.2.3.3"},
		// second gate of Leo starts at 5°37'30"
		{"leo-second-gate", 5, 37, 30, zodiac.Leo, "56.1.1.1.1"},
		{"leo-before-second-gate", 5, 37, 29.99, zodiac.Leo, "62.6.6.6.5"},
		// last interval is wider than a gate; line clamps at 6
		{"final-interval-overflow", 28, 7, 30, zodiac.Taurus, "23.6.1.1.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Resolve(tt.deg, tt.min, tt.sec, tt.sign)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got := c.String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResolveKeepsInputAngle(t *testing.T) {
	c, err := Resolve(17, 23, 45.5, zodiac.Leo)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c.Degrees != 17 || c.Minutes != 23 || c.Seconds != 45.5 || c.Sign != zodiac.Leo {
		t.Errorf("angle not preserved: %+v", c)
	}
	if got := c.Position(); got != `17°23'45.5" Leo` {
		t.Errorf("Position: got %q", got)
	}
	if c.Arcseconds() != 17*3600+23*60+45.5 {
		t.Errorf("Arcseconds: got %v", c.Arcseconds())
	}
}

func TestResolveInvalidAngle(t *testing.T) {
	tests := []struct {
		name      string
		deg, min  int
		sec       float64
		wantField string
	}{
		{"degrees-high", 30, 0, 0, "degrees"},
		{"degrees-negative", -1, 0, 0, "degrees"},
		{"minutes-high", 0, 60, 0, "minutes"},
		{"minutes-negative", 0, -5, 0, "minutes"},
		{"seconds-high", 0, 0, 60, "seconds"},
		{"seconds-negative", 0, 0, -0.01, "seconds"},
		{"seconds-nan", 0, 0, math.NaN(), "seconds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.deg, tt.min, tt.sec, zodiac.Aries)
			var ae *InvalidAngleError
			if !errors.As(err, &ae) {
				t.Fatalf("expected InvalidAngleError, got %v", err)
			}
			if ae.Field != tt.wantField {
				t.Errorf("field: got %q, want %q", ae.Field, tt.wantField)
			}
		})
	}
}

func TestResolveUnknownSign(t *testing.T) {
	_, err := Resolve(1, 0, 0, zodiac.Sign(99))
	var oe *OutOfRangeError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
}

func TestResolveSubdivisionsAlwaysInRange(t *testing.T) {
	// Sweep one sign at a 7.3" stride; offsets cross every boundary type.
	for arc := 0.0; arc < zodiac.SignWidth; arc += 7.3 {
		deg := int(arc / 3600)
		mins := int(math.Mod(arc, 3600) / 60)
		sec := math.Mod(arc, 60)
		c, err := Resolve(deg, mins, sec, zodiac.Virgo)
		if err != nil {
			t.Fatalf("%v\": %v", arc, err)
		}
		if c.Line < 1 || c.Line > 6 || c.Color < 1 || c.Color > 6 ||
			c.Tone < 1 || c.Tone > 6 || c.Base < 1 || c.Base > 5 {
			t.Fatalf("%v\": out of range %s", arc, c)
		}
	}
}

func TestParseFormats(t *testing.T) {
	want, err := Resolve(17, 23, 45, zodiac.Leo)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	inputs := []string{
		`17°23'45" Leo`,
		`Leo 17° 23' 45"`,
		`17d 23m 45s Leo`,
		`17D23M45S leo`,
		`17 23 45 Leo`,
		`sun in LEO at 17 23 45`,
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestParseFractionalSeconds(t *testing.T) {
	c, err := Parse(`0°56'15.5" Aries`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Seconds != 15.5 || c.Line != 2 {
		t.Errorf("got %+v", c)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no-sign", `17°23'45"`},
		{"no-angle", "Leo"},
		{"empty", ""},
		{"words", "somewhere in Gemini"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
		})
	}
}

func TestParseOutOfRangeAngleIsInvalidAngle(t *testing.T) {
	_, err := Parse("45 10 10 Aries")
	var ae *InvalidAngleError
	if !errors.As(err, &ae) {
		t.Fatalf("expected InvalidAngleError, got %v", err)
	}
}
