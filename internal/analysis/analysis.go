package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/synthai/go-core/internal/astro"
	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/detect"
	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
	"github.com/danielpatrickdp/synthai/go-core/internal/geometry"
	"github.com/danielpatrickdp/synthai/go-core/internal/metrics"
	"github.com/danielpatrickdp/synthai/go-core/internal/sentence"
)

// #region analyzer
// Analyzer runs the full pipeline: position, coordinate, geometric vector,
// text detection, blend, metrics. It keeps no state between calls; session
// memory is threaded through Input.Previous.
type Analyzer struct {
	provider   astro.Provider
	engine     *geometry.Engine
	classifier *detect.Classifier
	config     Config
}

// NewAnalyzer creates an Analyzer. provider may be nil when every Input
// carries a Position.
func NewAnalyzer(provider astro.Provider, config Config) *Analyzer {
	return &Analyzer{
		provider:   provider,
		engine:     geometry.NewEngine(config.Weights),
		classifier: detect.NewClassifier(config.Tiers),
		config:     config,
	}
}

// #endregion analyzer

// #region analyze
// Analyze resolves the input position and evaluates text against it.
func (a *Analyzer) Analyze(in Input) (Reading, error) {
	at := in.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	var pos astro.Position
	switch {
	case in.Position != nil:
		pos = *in.Position
	case a.provider != nil:
		p, err := a.provider.Position(at)
		if err != nil {
			return Reading{}, fmt.Errorf("locate body: %w", err)
		}
		pos = p
	default:
		return Reading{}, fmt.Errorf("analyze: no position and no provider")
	}

	coord, err := coordinate.Resolve(pos.Degrees, pos.Minutes, pos.Seconds, pos.Sign)
	if err != nil {
		return Reading{}, fmt.Errorf("resolve coordinate: %w", err)
	}

	r := a.AnalyzeCoordinate(coord, in.Text, in.Previous)
	r.NoteID = in.NoteID
	r.At = at
	return r, nil
}

// AnalyzeCoordinate evaluates text against an already resolved coordinate.
func (a *Analyzer) AnalyzeCoordinate(coord coordinate.Coordinate, text string, previous *dimension.Vector) Reading {
	desc, sentences := sentence.Generate(coord)

	geometric := a.engine.Vector(coord)
	hint := geometric.Primary()

	det := a.classifier.Classify(text, &hint)
	evidence := a.classifier.Breakdown(text)
	blended := metrics.BlendDetection(geometric, evidence, det.Confidence)

	return Reading{
		ID:          uuid.New().String(),
		At:          time.Now().UTC(),
		Text:        text,
		Coordinate:  coord,
		Description: desc,
		Sentences:   sentences,
		Geometric:   geometric,
		Evidence:    evidence,
		Blended:     blended,
		Detection:   det,
		Themes:      a.classifier.Themes(text, det.Dimension),
		Metrics:     metrics.Summarize(blended, previous, a.config.Confidence),
		Primary:     blended.Primary(),
		Secondary:   blended.Secondary(),
	}
}

// #endregion analyze
