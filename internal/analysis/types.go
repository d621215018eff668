package analysis

import (
	"time"

	"github.com/danielpatrickdp/synthai/go-core/internal/astro"
	"github.com/danielpatrickdp/synthai/go-core/internal/catalog"
	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/detect"
	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
	"github.com/danielpatrickdp/synthai/go-core/internal/geometry"
	"github.com/danielpatrickdp/synthai/go-core/internal/metrics"
	"github.com/danielpatrickdp/synthai/go-core/internal/sentence"
)

// #region config
// Config gathers the tunables of every pipeline stage.
type Config struct {
	Weights    geometry.Weights
	Tiers      detect.TierWeights
	Confidence metrics.ConfidenceWeights
}

// DefaultConfig returns the canonical pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Weights:    geometry.DefaultWeights(),
		Tiers:      detect.DefaultTierWeights(),
		Confidence: metrics.DefaultConfidenceWeights(),
	}
}

// #endregion config

// #region input
// Input is one analysis request. Previous carries the caller's last blended
// vector; nil compares stability against the uniform baseline.
type Input struct {
	Text     string
	NoteID   string
	At       time.Time       // zero means now
	Position *astro.Position // overrides the provider when set
	Previous *dimension.Vector
}

// #endregion input

// #region reading
// Reading is the complete result of one analysis.
type Reading struct {
	ID     string    `json:"id"`
	NoteID string    `json:"note_id,omitempty"`
	At     time.Time `json:"at"`
	Text   string    `json:"text"`

	Coordinate  coordinate.Coordinate `json:"-"`
	Description catalog.Description   `json:"description"`
	Sentences   sentence.Sentences    `json:"sentences"`

	Geometric dimension.Vector `json:"geometric"`
	Evidence  dimension.Vector `json:"evidence"`
	Blended   dimension.Vector `json:"blended"`

	Detection detect.Detection `json:"detection"`
	Themes    []string         `json:"themes"`

	Metrics   metrics.Summary     `json:"metrics"`
	Primary   dimension.Dimension `json:"primary"`
	Secondary dimension.Dimension `json:"secondary"`
}

// #endregion reading
