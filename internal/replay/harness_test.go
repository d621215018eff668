package replay

import (
	"testing"

	"github.com/danielpatrickdp/synthai/go-core/internal/analysis"
	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

// helper: interaction at a fixed Leo position.
func leoInteraction(t *testing.T, id, text string) Interaction {
	t.Helper()
	coord, err := coordinate.Resolve(17, 23, 45.5, zodiac.Leo)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return Interaction{ID: id, Coordinate: coord, Text: text}
}

// 1. The first turn is compared against the uniform baseline, later turns
// against the previous blended vector.
func TestReplay_ThreadsPreviousVector(t *testing.T) {
	interactions := []Interaction{
		leoInteraction(t, "t1", "I remember the lesson and try to understand its meaning"),
		leoInteraction(t, "t2", "Let us plan the system and build a structure"),
	}
	results := Replay(interactions, DefaultReplayConfig())
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	analyzer := analysis.NewAnalyzer(nil, analysis.DefaultConfig())
	first := analyzer.AnalyzeCoordinate(interactions[0].Coordinate, interactions[0].Text, nil)
	second := analyzer.AnalyzeCoordinate(interactions[1].Coordinate, interactions[1].Text, &first.Blended)

	if results[0].Reading.Metrics.Stability != first.Metrics.Stability {
		t.Errorf("turn 1 stability = %v, want %v", results[0].Reading.Metrics.Stability, first.Metrics.Stability)
	}
	if results[1].Reading.Metrics.Stability != second.Metrics.Stability {
		t.Errorf("turn 2 stability = %v, want %v", results[1].Reading.Metrics.Stability, second.Metrics.Stability)
	}
}

// 2. Identical turns: the second is perfectly stable.
func TestReplay_RepeatedTurnIsStable(t *testing.T) {
	inter := leoInteraction(t, "t", "I am here, feeling my body")
	results := Replay([]Interaction{inter, inter}, DefaultReplayConfig())

	if got := results[1].Reading.Metrics.Stability; got != 1 {
		t.Errorf("repeated turn stability = %v, want 1", got)
	}
}

// 3. Unchecked expectations never mismatch.
func TestReplay_EmptyExpectationsMatch(t *testing.T) {
	results := Replay([]Interaction{leoInteraction(t, "t", "")}, DefaultReplayConfig())
	if !results[0].Match() {
		t.Errorf("unexpected mismatches: %v", results[0].Mismatches)
	}
	if results[0].Reading.NoteID != "t" {
		t.Errorf("NoteID = %q, want t", results[0].Reading.NoteID)
	}
}

// 4. A wrong expectation is reported per field.
func TestReplay_Mismatch(t *testing.T) {
	inter := leoInteraction(t, "t", "")
	inter.Expected = FixtureExpected{Coordinate: "1.1.1.1.1", Dimension: "Nothing", DetectedDimension: "Nothing"}

	results := Replay([]Interaction{inter}, DefaultReplayConfig())
	if len(results[0].Mismatches) != 3 {
		t.Fatalf("expected 3 mismatches, got %v", results[0].Mismatches)
	}

	s := Summarize(results)
	if s.Mismatches != 1 || s.Matches != 0 {
		t.Errorf("summary = %+v", s)
	}
}

// 5. Empty input: no results, uniform final vector.
func TestSummarize_Empty(t *testing.T) {
	s := Summarize(Replay(nil, DefaultReplayConfig()))
	if s.TotalTurns != 0 {
		t.Errorf("TotalTurns = %d", s.TotalTurns)
	}
	for _, v := range s.Final {
		if v != 0.2 {
			t.Fatalf("final = %v, want uniform", s.Final)
		}
	}
}
