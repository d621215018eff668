package detect

import "github.com/danielpatrickdp/synthai/go-core/internal/dimension"

// #region config
// TierWeights are the per-match weights of each evidence tier.
type TierWeights struct {
	Primary   float64
	Secondary float64
	Theme     float64
	Pattern   float64
}

// DefaultTierWeights returns the canonical tier weights.
func DefaultTierWeights() TierWeights {
	return TierWeights{
		Primary:   3.0,
		Secondary: 1.5,
		Theme:     2.0,
		Pattern:   5.0,
	}
}

// #endregion config

// #region detection
// Detection is the classifier's single best guess for a text.
type Detection struct {
	Dimension  dimension.Dimension `json:"dimension"`
	Confidence float64             `json:"confidence"`
	Signal     bool                `json:"signal"`  // any tier matched
	Hinted     bool                `json:"hinted"`  // a geometric hint was supplied
	Aligned    bool                `json:"aligned"` // detection equals the hint
}

// #endregion detection
