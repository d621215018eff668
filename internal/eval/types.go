package eval

// #region eval-config
// EvalConfig holds thresholds for post-analysis validation.
type EvalConfig struct {
	SumTolerance    float64 // reject if any vector sum strays further than this from 1
	ConfidenceFloor float64 // warn if confidence falls below this
}

// DefaultEvalConfig returns the standard thresholds.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		SumTolerance:    1e-9,
		ConfidenceFloor: 0.2,
	}
}

// #endregion eval-config

// #region eval-metric
// EvalMetric captures a single validation check result.
type EvalMetric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Pass  bool    `json:"pass"`
}

// #endregion eval-metric

// #region eval-result
// EvalResult is the output of post-analysis validation.
type EvalResult struct {
	Passed  bool         `json:"passed"`
	Metrics []EvalMetric `json:"metrics"`
	Reason  string       `json:"reason"`
}

// #endregion eval-result
