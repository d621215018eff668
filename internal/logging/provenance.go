package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-analysis
// LogAnalysis writes an entry to the analysis_log table.
func LogAnalysis(db *sql.DB, entry AnalysisEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	passed := 0
	if entry.EvalPassed {
		passed = 1
	}

	_, err := db.Exec(
		`INSERT INTO analysis_log (reading_id, session_id, trigger_type, coordinate, detected_dimension,
			detection_confidence, coherence, stability, confidence, eval_passed, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ReadingID,
		nullIfEmpty(entry.SessionID),
		entry.TriggerType,
		entry.Coordinate,
		entry.DetectedDimension,
		entry.DetectionConfidence,
		entry.Coherence,
		entry.Stability,
		entry.Confidence,
		passed,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log analysis: %w", err)
	}
	return nil
}

// #endregion log-analysis

// #region failures
// CountFailures returns how many logged analyses failed eval.
func CountFailures(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM analysis_log WHERE eval_passed = 0`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count failures: %w", err)
	}
	return n, nil
}

// #endregion failures

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
