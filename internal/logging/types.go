package logging

import (
	"time"

	"github.com/danielpatrickdp/synthai/go-core/internal/analysis"
)

// #region analysis-entry
// AnalysisEntry is a single row in the analysis_log table.
type AnalysisEntry struct {
	ReadingID           string
	SessionID           string
	TriggerType         string // "repl" | "replay" | "inspect"
	Coordinate          string
	DetectedDimension   string
	DetectionConfidence float64
	Coherence           float64
	Stability           float64
	Confidence          float64
	EvalPassed          bool
	Reason              string
	CreatedAt           time.Time
}

// NewEntry captures the decision-relevant fields of r.
func NewEntry(r analysis.Reading, sessionID, trigger string, evalPassed bool, reason string) AnalysisEntry {
	return AnalysisEntry{
		ReadingID:           r.ID,
		SessionID:           sessionID,
		TriggerType:         trigger,
		Coordinate:          r.Description.Coordinate,
		DetectedDimension:   r.Detection.Dimension.String(),
		DetectionConfidence: r.Detection.Confidence,
		Coherence:           r.Metrics.Coherence,
		Stability:           r.Metrics.Stability,
		Confidence:          r.Metrics.Confidence,
		EvalPassed:          evalPassed,
		Reason:              reason,
	}
}

// #endregion analysis-entry
