package geometry

import (
	"github.com/danielpatrickdp/synthai/go-core/internal/catalog"
	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
)

// #region influence-tables
const (
	primaryShare   = 0.70
	secondaryShare = 0.075
	baseShare      = 0.20
	boostShare     = 0.40
)

type lineBoost struct {
	first, second       dimension.Dimension
	firstVal, secondVal float64
}

// lineBoosts is indexed by line - 1.
var lineBoosts = [6]lineBoost{
	{dimension.Being, dimension.Movement, 0.35, 0.25},     // foundation
	{dimension.Evolution, dimension.Design, 0.35, 0.25},   // duality
	{dimension.Evolution, dimension.Being, 0.35, 0.25},    // process
	{dimension.Design, dimension.Being, 0.35, 0.25},       // fixed
	{dimension.Space, dimension.Movement, 0.35, 0.25},     // projection
	{dimension.Movement, dimension.Evolution, 0.35, 0.25}, // transition
}

// colorDimensions is indexed by color - 1: Fear, Hope, Desire, Need, Guilt, Innocence.
var colorDimensions = [6]dimension.Dimension{
	dimension.Evolution,
	dimension.Space,
	dimension.Movement,
	dimension.Design,
	dimension.Design,
	dimension.Being,
}

// toneDimensions is indexed by tone - 1: Security, Uncertainty, Action,
// Meditation, Judgment, Acceptance.
var toneDimensions = [6]dimension.Dimension{
	dimension.Being,
	dimension.Evolution,
	dimension.Movement,
	dimension.Space,
	dimension.Evolution,
	dimension.Being,
}

// #endregion influence-tables

// #region engine
// Engine derives a dimension probability vector from a coordinate. It holds
// no state besides its weights and is safe for concurrent use.
type Engine struct {
	weights Weights
}

// NewEngine creates an Engine with the given stage weights.
func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// ProbabilityVector computes the vector for coord using DefaultWeights.
func ProbabilityVector(coord coordinate.Coordinate) dimension.Vector {
	return NewEngine(DefaultWeights()).Vector(coord)
}

// Vector computes the probability vector for coord. Base is ignored.
func (e *Engine) Vector(coord coordinate.Coordinate) dimension.Vector {
	return e.Explain(coord).Vector
}

// Explain computes the vector and records every blend stage. Stages are
// applied center, line, color, tone against the running result; the order
// changes the output.
func (e *Engine) Explain(coord coordinate.Coordinate) Explanation {
	primary, ok := catalog.DimensionOf(coord.Gate)

	var center dimension.Vector
	if ok {
		center = CenterInfluence(primary)
	} else {
		center = dimension.Uniform()
	}

	steps := []struct {
		name      string
		weight    float64
		influence dimension.Vector
	}{
		{"center", e.weights.Center, center},
		{"line", e.weights.Line, LineInfluence(coord.Line)},
		{"color", e.weights.Color, ColorInfluence(coord.Color)},
		{"tone", e.weights.Tone, ToneInfluence(coord.Tone)},
	}

	result := dimension.Uniform()
	stages := make([]Stage, 0, len(steps))
	for _, s := range steps {
		result = blendStage(result, s.influence, s.weight)
		stages = append(stages, Stage{
			Name:      s.name,
			Weight:    s.weight,
			Influence: s.influence,
			Result:    result,
		})
	}

	return Explanation{
		Primary: primary,
		Stages:  stages,
		Vector:  result.Normalize(),
	}
}

func blendStage(acc, influence dimension.Vector, w float64) dimension.Vector {
	var out dimension.Vector
	for i := range acc {
		out[i] = (1-w)*acc[i] + w*influence[i]
	}
	return out
}

// #endregion engine

// #region influences
// CenterInfluence gives primary 0.70 and every other dimension 0.075.
func CenterInfluence(primary dimension.Dimension) dimension.Vector {
	var v dimension.Vector
	for i := range v {
		v[i] = secondaryShare
	}
	if primary.Valid() {
		v[primary] = primaryShare
	}
	return v.Normalize()
}

// LineInfluence layers the line's two boosts on a 0.20 base. Unknown lines
// yield the uniform vector.
func LineInfluence(line int) dimension.Vector {
	v := flat()
	if line >= 1 && line <= len(lineBoosts) {
		b := lineBoosts[line-1]
		v[b.first] = b.firstVal
		v[b.second] = b.secondVal
	}
	return v.Normalize()
}

// ColorInfluence boosts the color's associated dimension to 0.40.
func ColorInfluence(color int) dimension.Vector {
	return boosted(colorDimensions[:], color)
}

// ToneInfluence boosts the tone's associated dimension to 0.40.
func ToneInfluence(tone int) dimension.Vector {
	return boosted(toneDimensions[:], tone)
}

func boosted(table []dimension.Dimension, n int) dimension.Vector {
	v := flat()
	if n >= 1 && n <= len(table) {
		v[table[n-1]] = boostShare
	}
	return v.Normalize()
}

func flat() dimension.Vector {
	var v dimension.Vector
	for i := range v {
		v[i] = baseShare
	}
	return v
}

// #endregion influences
