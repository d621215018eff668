package metrics

// #region config
// ConfidenceWeights weight coherence against stability in Confidence.
type ConfidenceWeights struct {
	Coherence float64
	Stability float64
}

// DefaultConfidenceWeights returns 0.70 coherence, 0.30 stability.
func DefaultConfidenceWeights() ConfidenceWeights {
	return ConfidenceWeights{
		Coherence: 0.70,
		Stability: 0.30,
	}
}

// #endregion config

// #region summary
// Summary bundles the scalar metrics of one probability vector.
type Summary struct {
	Entropy    float64 `json:"entropy"`
	Coherence  float64 `json:"coherence"`
	Stability  float64 `json:"stability"`
	Confidence float64 `json:"confidence"`
}

// #endregion summary
