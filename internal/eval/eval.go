package eval

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/synthai/go-core/internal/analysis"
	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

// #region eval-harness
// EvalHarness checks every reading against the invariants the pipeline
// promises: normalized vectors, unit-range scores, in-bounds coordinates.
type EvalHarness struct {
	config EvalConfig
}

// NewEvalHarness creates an eval harness with the given configuration.
func NewEvalHarness(config EvalConfig) *EvalHarness {
	return &EvalHarness{config: config}
}

// Run validates r. A failing check marks the result failed; the confidence
// floor is informational only.
func (h *EvalHarness) Run(r analysis.Reading) EvalResult {
	var metrics []EvalMetric
	passed := true
	var failReasons []string

	check := func(name string, value float64, ok bool, reason string) {
		metrics = append(metrics, EvalMetric{Name: name, Value: value, Pass: ok})
		if !ok {
			passed = false
			failReasons = append(failReasons, reason)
		}
	}

	// 1. Normalization of every vector
	vectors := []struct {
		name string
		v    dimension.Vector
	}{
		{"geometric", r.Geometric},
		{"evidence", r.Evidence},
		{"blended", r.Blended},
	}
	for _, vec := range vectors {
		drift := math.Abs(vec.v.Sum() - 1)
		check(vec.name+"_sum_drift", drift, drift <= h.config.SumTolerance,
			fmt.Sprintf("%s vector sums to %.12f", vec.name, vec.v.Sum()))

		worst := rangeViolation(vec.v[:]...)
		check(vec.name+"_range", worst, worst == 0,
			fmt.Sprintf("%s vector has a component outside [0,1]", vec.name))
	}

	// 2. Scalar scores
	scores := []struct {
		name  string
		value float64
	}{
		{"coherence", r.Metrics.Coherence},
		{"stability", r.Metrics.Stability},
		{"confidence", r.Metrics.Confidence},
		{"detection_confidence", r.Detection.Confidence},
	}
	for _, s := range scores {
		check(s.name, s.value, rangeViolation(s.value) == 0,
			fmt.Sprintf("%s %.4f outside [0,1]", s.name, s.value))
	}

	// 3. Coordinate bounds
	bad := coordinateViolations(r.Coordinate)
	check("coordinate_bounds", float64(bad), bad == 0,
		fmt.Sprintf("coordinate %s has %d out-of-range fields", r.Coordinate, bad))

	// 4. Confidence floor: informational, does not fail
	metrics = append(metrics, EvalMetric{
		Name:  "confidence_floor",
		Value: r.Metrics.Confidence,
		Pass:  r.Metrics.Confidence >= h.config.ConfidenceFloor,
	})

	reason := "all checks passed"
	if !passed {
		reason = fmt.Sprintf("eval failed: %s", failReasons[0])
		if len(failReasons) > 1 {
			reason = fmt.Sprintf("eval failed: %d checks: %s", len(failReasons), failReasons[0])
		}
	}

	return EvalResult{
		Passed:  passed,
		Metrics: metrics,
		Reason:  reason,
	}
}

// #endregion eval-harness

// #region helpers
// rangeViolation returns how far the worst value lies outside [0,1], or 0.
func rangeViolation(vals ...float64) float64 {
	var worst float64
	for _, v := range vals {
		if math.IsNaN(v) {
			return math.Inf(1)
		}
		d := 0.0
		if v < 0 {
			d = -v
		} else if v > 1 {
			d = v - 1
		}
		worst = math.Max(worst, d)
	}
	return worst
}

// coordinateViolations counts fields of c outside their declared ranges.
func coordinateViolations(c coordinate.Coordinate) int {
	bounds := []struct{ v, lo, hi int }{
		{c.Gate, 1, 64},
		{c.Line, 1, zodiac.Lines},
		{c.Color, 1, zodiac.Colors},
		{c.Tone, 1, zodiac.Tones},
		{c.Base, 1, zodiac.Bases},
	}
	n := 0
	for _, b := range bounds {
		if b.v < b.lo || b.v > b.hi {
			n++
		}
	}
	if !c.Sign.Valid() {
		n++
	}
	return n
}

// #endregion helpers
