package replay

import (
	"fmt"

	"github.com/danielpatrickdp/synthai/go-core/internal/analysis"
	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
	"github.com/danielpatrickdp/synthai/go-core/internal/eval"
)

// #region types
// Interaction represents a single recorded turn for replay.
type Interaction struct {
	ID         string
	Coordinate coordinate.Coordinate
	Text       string
	Expected   FixtureExpected
}

// ReplayConfig bundles the analysis and eval configs for a replay run.
type ReplayConfig struct {
	Analysis analysis.Config
	Eval     eval.EvalConfig
}

// DefaultReplayConfig returns the defaults of both stages.
func DefaultReplayConfig() ReplayConfig {
	return ReplayConfig{
		Analysis: analysis.DefaultConfig(),
		Eval:     eval.DefaultEvalConfig(),
	}
}

// ReplayResult captures the outcome of replaying one interaction.
type ReplayResult struct {
	ID         string
	Reading    analysis.Reading
	EvalResult eval.EvalResult
	Mismatches []string
}

// Match reports whether every expectation held.
func (r ReplayResult) Match() bool {
	return len(r.Mismatches) == 0
}

// ReplaySummary provides aggregate stats from a replay run.
type ReplaySummary struct {
	TotalTurns   int
	Matches      int
	Mismatches   int
	EvalFailures int
	Final        dimension.Vector
}

// #endregion types

// #region replay
// Replay analyses each interaction in order, carrying the blended vector of
// one turn into the stability of the next exactly as a session does.
// Operates entirely in-memory.
func Replay(interactions []Interaction, config ReplayConfig) []ReplayResult {
	analyzer := analysis.NewAnalyzer(nil, config.Analysis)
	harness := eval.NewEvalHarness(config.Eval)
	results := make([]ReplayResult, 0, len(interactions))

	var previous *dimension.Vector
	for _, inter := range interactions {
		reading := analyzer.AnalyzeCoordinate(inter.Coordinate, inter.Text, previous)
		reading.NoteID = inter.ID

		results = append(results, ReplayResult{
			ID:         inter.ID,
			Reading:    reading,
			EvalResult: harness.Run(reading),
			Mismatches: compare(inter.Expected, reading),
		})

		blended := reading.Blended
		previous = &blended
	}
	return results
}

func compare(exp FixtureExpected, r analysis.Reading) []string {
	var diffs []string
	if exp.Coordinate != "" && exp.Coordinate != r.Coordinate.String() {
		diffs = append(diffs, fmt.Sprintf("coordinate: expected %s, got %s", exp.Coordinate, r.Coordinate))
	}
	if exp.Dimension != "" && exp.Dimension != r.Primary.String() {
		diffs = append(diffs, fmt.Sprintf("dimension: expected %s, got %s", exp.Dimension, r.Primary))
	}
	if exp.DetectedDimension != "" && exp.DetectedDimension != r.Detection.Dimension.String() {
		diffs = append(diffs, fmt.Sprintf("detected_dimension: expected %s, got %s", exp.DetectedDimension, r.Detection.Dimension))
	}
	return diffs
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []ReplayResult) ReplaySummary {
	s := ReplaySummary{
		TotalTurns: len(results),
		Final:      dimension.Uniform(),
	}
	for _, r := range results {
		if r.Match() {
			s.Matches++
		} else {
			s.Mismatches++
		}
		if !r.EvalResult.Passed {
			s.EvalFailures++
		}
	}
	if len(results) > 0 {
		s.Final = results[len(results)-1].Reading.Blended
	}
	return s
}

// #endregion replay
