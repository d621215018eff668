package detect

import (
	"strings"

	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
)

// #region constants
const (
	hintedFallback  = 0.50 // confidence when only the hint is available
	defaultFallback = 0.20 // confidence of the Being default
	alignBoost      = 1.3
	alignCap        = 0.95
	misalignFactor  = 0.9
	maxThemes       = 5
)

// #endregion constants

// #region classifier
// Classifier scores free text against each dimension's keyword tiers and
// phrase patterns. It holds only read-only tables and is safe for concurrent use.
type Classifier struct {
	weights TierWeights
}

// NewClassifier creates a Classifier with the given tier weights.
func NewClassifier(weights TierWeights) *Classifier {
	return &Classifier{weights: weights}
}

// Scores returns the raw per-dimension scores for text.
func (c *Classifier) Scores(text string) dimension.Vector {
	lower := strings.ToLower(text)
	var scores dimension.Vector
	for _, d := range dimension.All() {
		scores[d] = c.score(lower, d)
	}
	return scores
}

func (c *Classifier) score(lower string, d dimension.Dimension) float64 {
	kw := keywords[d]
	var s float64
	for _, k := range kw.primary {
		s += float64(strings.Count(lower, k)) * c.weights.Primary
	}
	for _, k := range kw.secondary {
		s += float64(strings.Count(lower, k)) * c.weights.Secondary
	}
	for _, k := range kw.themes {
		s += float64(strings.Count(lower, k)) * c.weights.Theme
	}
	for _, re := range patterns[d] {
		s += float64(len(re.FindAllStringIndex(lower, -1))) * c.weights.Pattern
	}
	return s
}

// #endregion classifier

// #region classify
// Classify picks the best-scoring dimension for text. hint is the geometric
// dimension, if known: agreement boosts confidence (x1.3, capped at 0.95),
// disagreement reduces it (x0.9). With no signal at all the hint is returned
// at 0.50, or Being at 0.20 without a hint.
func (c *Classifier) Classify(text string, hint *dimension.Dimension) Detection {
	scores := c.Scores(text)
	total := scores.Sum()

	if total == 0 {
		if hint != nil {
			return Detection{Dimension: *hint, Confidence: hintedFallback, Hinted: true, Aligned: true}
		}
		return Detection{Dimension: dimension.Being, Confidence: defaultFallback}
	}

	detected := scores.Primary()
	conf := scores[detected] / total
	det := Detection{Dimension: detected, Signal: true}

	if hint != nil {
		det.Hinted = true
		if detected == *hint {
			det.Aligned = true
			conf = min(conf*alignBoost, alignCap)
		} else {
			conf *= misalignFactor
		}
	}
	det.Confidence = conf
	return det
}

// Breakdown returns the normalized per-dimension scores, or the uniform
// vector when nothing matched. It ignores any geometric hint.
func (c *Classifier) Breakdown(text string) dimension.Vector {
	return c.Scores(text).Normalize()
}

// #endregion classify

// #region themes
// Themes lists up to five keywords of d that occur in text, primary tier
// first, then secondary, then themes.
func (c *Classifier) Themes(text string, d dimension.Dimension) []string {
	if !d.Valid() {
		return nil
	}
	lower := strings.ToLower(text)
	kw := keywords[d]
	found := []string{}
	for _, tier := range [][]string{kw.primary, kw.secondary, kw.themes} {
		for _, k := range tier {
			if strings.Contains(lower, k) {
				found = append(found, k)
				if len(found) == maxThemes {
					return found
				}
			}
		}
	}
	return found
}

// #endregion themes
