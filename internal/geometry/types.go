package geometry

import "github.com/danielpatrickdp/synthai/go-core/internal/dimension"

// #region weights
// Weights are the blend weights of the four influence stages. Each stage is
// folded into the running result as (1-w)*result + w*influence.
type Weights struct {
	Center float64
	Line   float64
	Color  float64
	Tone   float64
}

// DefaultWeights returns the canonical stage weights.
func DefaultWeights() Weights {
	return Weights{
		Center: 0.60,
		Line:   0.20,
		Color:  0.12,
		Tone:   0.08,
	}
}

// #endregion weights

// #region stages
// Stage is one step of the hierarchical blend: the influence vector applied
// and the running result after applying it.
type Stage struct {
	Name      string // "center" | "line" | "color" | "tone"
	Weight    float64
	Influence dimension.Vector
	Result    dimension.Vector
}

// Explanation traces how a coordinate's vector was built.
type Explanation struct {
	Primary dimension.Dimension // gate→center→dimension
	Stages  []Stage
	Vector  dimension.Vector
}

// #endregion stages
