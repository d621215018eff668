package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
)

var approx = cmpopts.EquateApprox(0, 1e-5)

func TestProbabilityVectorSumsToOne(t *testing.T) {
	e := NewEngine(DefaultWeights())
	for g := 1; g <= 64; g++ {
		for l := 1; l <= 6; l++ {
			for c := 1; c <= 6; c++ {
				for tn := 1; tn <= 6; tn++ {
					coord := coordinate.Coordinate{Gate: g, Line: l, Color: c, Tone: tn, Base: 1}
					v := e.Vector(coord)
					if math.Abs(v.Sum()-1) > 1e-9 {
						t.Fatalf("%s: sum = %v", coord, v.Sum())
					}
					for i, p := range v {
						if p < 0 || p > 1 {
							t.Fatalf("%s: component %d = %v", coord, i, p)
						}
					}
				}
			}
		}
	}
}

func TestGate25FavoursMovement(t *testing.T) {
	coord := coordinate.Coordinate{Gate: 25, Line: 4, Color: 1, Tone: 3, Base: 3}
	v := ProbabilityVector(coord)

	if v.Primary() != dimension.Movement {
		t.Fatalf("primary = %s, want Movement (%v)", v.Primary(), v)
	}

	want := dimension.Vector{0.395893, 0.158080, 0.146427, 0.159920, 0.139680}
	if diff := cmp.Diff(want, v, approx); diff != "" {
		t.Errorf("vector mismatch (-want +got):\n%s", diff)
	}
}

func TestBaseDoesNotAffectVector(t *testing.T) {
	e := NewEngine(DefaultWeights())
	ref := e.Vector(coordinate.Coordinate{Gate: 12, Line: 3, Color: 5, Tone: 2, Base: 1})
	for b := 2; b <= 5; b++ {
		got := e.Vector(coordinate.Coordinate{Gate: 12, Line: 3, Color: 5, Tone: 2, Base: b})
		if got != ref {
			t.Errorf("base %d changed the vector: %v vs %v", b, got, ref)
		}
	}
}

func TestStageOrderMatters(t *testing.T) {
	coord := coordinate.Coordinate{Gate: 1, Line: 2, Color: 6, Tone: 4, Base: 1}
	ex := NewEngine(DefaultWeights()).Explain(coord)

	names := []string{"center", "line", "color", "tone"}
	if len(ex.Stages) != len(names) {
		t.Fatalf("expected %d stages, got %d", len(names), len(ex.Stages))
	}
	for i, s := range ex.Stages {
		if s.Name != names[i] {
			t.Errorf("stage %d = %s, want %s", i, s.Name, names[i])
		}
	}

	// Fold the same influences in reverse order against the same baseline.
	acc := dimension.Uniform()
	for i := len(ex.Stages) - 1; i >= 0; i-- {
		acc = blendStage(acc, ex.Stages[i].Influence, ex.Stages[i].Weight)
	}
	if cmp.Equal(acc.Normalize(), ex.Vector, cmpopts.EquateApprox(0, 1e-12)) {
		t.Error("reversed stage order produced the same vector")
	}
}

func TestInfluencesAreNormalized(t *testing.T) {
	for _, d := range dimension.All() {
		if s := CenterInfluence(d).Sum(); math.Abs(s-1) > 1e-12 {
			t.Errorf("center influence %s sums to %v", d, s)
		}
		if CenterInfluence(d).Primary() != d {
			t.Errorf("center influence %s: wrong primary", d)
		}
	}
	for n := 1; n <= 6; n++ {
		for name, v := range map[string]dimension.Vector{
			"line":  LineInfluence(n),
			"color": ColorInfluence(n),
			"tone":  ToneInfluence(n),
		} {
			if math.Abs(v.Sum()-1) > 1e-12 {
				t.Errorf("%s %d sums to %v", name, n, v.Sum())
			}
			low := v[0]
			for _, x := range v {
				low = math.Min(low, x)
			}
			if v[v.Primary()] <= low+1e-12 {
				t.Errorf("%s %d has no boosted dimension: %v", name, n, v)
			}
		}
	}
}

func TestLineInfluenceValues(t *testing.T) {
	v := LineInfluence(1)
	want := dimension.Vector{0.25 / 1.2, 0.2 / 1.2, 0.35 / 1.2, 0.2 / 1.2, 0.2 / 1.2}
	if diff := cmp.Diff(want, v, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("line 1 influence (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(dimension.Uniform(), LineInfluence(9), approx); diff != "" {
		t.Errorf("unknown line should be uniform:\n%s", diff)
	}
}
