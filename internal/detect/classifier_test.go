package detect

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
)

func hint(d dimension.Dimension) *dimension.Dimension { return &d }

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// #region classify-tests

func TestClassifyPresenceText(t *testing.T) {
	c := NewClassifier(DefaultTierWeights())
	det := c.Classify("I am here, feeling my body, present in this moment", nil)

	if det.Dimension != dimension.Being {
		t.Fatalf("dimension = %s, want Being", det.Dimension)
	}
	if det.Confidence <= 0.5 {
		t.Errorf("confidence = %v, want > 0.5", det.Confidence)
	}
	if !det.Signal || det.Hinted || det.Aligned {
		t.Errorf("unexpected flags: %+v", det)
	}
}

func TestClassifyEmptyTextFallsBack(t *testing.T) {
	c := NewClassifier(DefaultTierWeights())

	det := c.Classify("", hint(dimension.Design))
	if det.Dimension != dimension.Design || det.Confidence != 0.50 {
		t.Errorf("with hint: got (%s, %v), want (Design, 0.50)", det.Dimension, det.Confidence)
	}
	if det.Signal {
		t.Error("empty text should carry no signal")
	}

	det = c.Classify("xyz qqq", nil)
	if det.Dimension != dimension.Being || det.Confidence != 0.20 {
		t.Errorf("without hint: got (%s, %v), want (Being, 0.20)", det.Dimension, det.Confidence)
	}
}

func TestClassifyAlignment(t *testing.T) {
	c := NewClassifier(DefaultTierWeights())
	tests := []struct {
		name    string
		text    string
		hint    *dimension.Dimension
		want    dimension.Dimension
		conf    float64
		aligned bool
	}{
		{"space-unhinted", "I imagine what if we could dream of new possibilities", nil, dimension.Space, 25.5 / 28.5, false},
		{"space-aligned-capped", "I imagine what if we could dream of new possibilities", hint(dimension.Space), dimension.Space, 0.95, true},
		{"space-misaligned", "I imagine what if we could dream of new possibilities", hint(dimension.Design), dimension.Space, 25.5 / 28.5 * 0.9, false},
		{"evolution-misaligned", "I remember the lesson and try to understand its meaning", hint(dimension.Space), dimension.Evolution, 0.78, false},
		{"design-unhinted", "Let us plan the system and build a structure", nil, dimension.Design, 0.88, false},
		{"being-aligned", "I am here, feeling my body, present in this moment", hint(dimension.Being), dimension.Being, 0.95, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := c.Classify(tt.text, tt.hint)
			if det.Dimension != tt.want {
				t.Fatalf("dimension = %s, want %s", det.Dimension, tt.want)
			}
			if !near(det.Confidence, tt.conf) {
				t.Errorf("confidence = %v, want %v", det.Confidence, tt.conf)
			}
			if det.Aligned != tt.aligned {
				t.Errorf("aligned = %v, want %v", det.Aligned, tt.aligned)
			}
		})
	}
}

func TestScoresMatchTierWeights(t *testing.T) {
	c := NewClassifier(DefaultTierWeights())
	got := c.Scores("I imagine what if we could dream of new possibilities")
	want := dimension.Vector{0, 0, 3, 0, 25.5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scores (-want +got):\n%s", diff)
	}
}

// #endregion classify-tests

// #region breakdown-tests

func TestBreakdown(t *testing.T) {
	c := NewClassifier(DefaultTierWeights())

	got := c.Breakdown("I remember the lesson and try to understand its meaning")
	want := dimension.Vector{0, 19.5 / 22.5, 3 / 22.5, 0, 0}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("breakdown (-want +got):\n%s", diff)
	}

	empty := c.Breakdown("")
	if diff := cmp.Diff(dimension.Uniform(), empty); diff != "" {
		t.Errorf("empty breakdown should be uniform (-want +got):\n%s", diff)
	}
}

// #endregion breakdown-tests

// #region theme-tests

func TestThemes(t *testing.T) {
	c := NewClassifier(DefaultTierWeights())
	tests := []struct {
		text string
		dim  dimension.Dimension
		want []string
	}{
		{"I am here, feeling my body, present in this moment", dimension.Being, []string{"am", "is", "here", "feel", "body"}},
		{"I imagine what if we could dream of new possibilities", dimension.Space, []string{"imagine", "dream", "could", "what if"}},
		{"nothing relevant", dimension.Design, []string{}},
	}
	for _, tt := range tests {
		got := c.Themes(tt.text, tt.dim)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Themes(%q) (-want +got):\n%s", tt.text, diff)
		}
	}
}

// #endregion theme-tests
