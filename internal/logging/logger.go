package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/danielpatrickdp/synthai/go-core/internal/analysis"
)

// #region logger
// NewLogger builds a production zap logger at the named level
// (debug, info, warn, error).
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// #endregion logger

// #region fields
// ReadingFields are the structured fields logged for every reading.
func ReadingFields(r analysis.Reading) []zap.Field {
	return []zap.Field{
		zap.String("reading_id", r.ID),
		zap.String("coordinate", r.Description.Coordinate),
		zap.String("position", r.Description.Position),
		zap.Stringer("detected", r.Detection.Dimension),
		zap.Float64("detection_confidence", r.Detection.Confidence),
		zap.Bool("aligned", r.Detection.Aligned),
		zap.Stringer("primary", r.Primary),
		zap.Float64("coherence", r.Metrics.Coherence),
		zap.Float64("stability", r.Metrics.Stability),
		zap.Float64("confidence", r.Metrics.Confidence),
	}
}

// #endregion fields
