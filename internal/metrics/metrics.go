package metrics

import (
	"math"

	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
)

// #region constants
var (
	maxEntropy = math.Log2(dimension.Count)

	// maxDistance normalizes stability. It is larger than the true maximum
	// distance from the uniform baseline (sqrt(0.8)); kept so stability
	// values stay comparable with previously recorded readings.
	maxDistance = math.Sqrt2
)

// #endregion constants

// #region entropy
// Entropy is the Shannon entropy of v in bits. Zero terms are skipped.
func Entropy(v dimension.Vector) float64 {
	var h float64
	for _, p := range v {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// Coherence is 1 - Entropy/log2(5): 1 when one dimension holds all mass, 0
// when the vector is uniform.
func Coherence(v dimension.Vector) float64 {
	return clamp(1 - Entropy(v)/maxEntropy)
}

// #endregion entropy

// #region stability
// Distance is the Euclidean distance between a and b.
func Distance(a, b dimension.Vector) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Stability compares current against previous, or against the uniform vector
// when previous is nil. Result is 1 - distance/sqrt(2), clamped to [0,1].
func Stability(current dimension.Vector, previous *dimension.Vector) float64 {
	baseline := dimension.Uniform()
	if previous != nil {
		baseline = *previous
	}
	return clamp(1 - Distance(current, baseline)/maxDistance)
}

// #endregion stability

// #region confidence
// Confidence combines coherence and stability with DefaultConfidenceWeights.
func Confidence(coherence, stability float64) float64 {
	return WeightedConfidence(coherence, stability, DefaultConfidenceWeights())
}

// WeightedConfidence combines coherence and stability with w.
func WeightedConfidence(coherence, stability float64, w ConfidenceWeights) float64 {
	return w.Coherence*coherence + w.Stability*stability
}

// Summarize computes every scalar metric of v in one pass.
func Summarize(v dimension.Vector, previous *dimension.Vector, w ConfidenceWeights) Summary {
	coherence := Coherence(v)
	stability := Stability(v, previous)
	return Summary{
		Entropy:    Entropy(v),
		Coherence:  coherence,
		Stability:  stability,
		Confidence: WeightedConfidence(coherence, stability, w),
	}
}

// #endregion confidence

// #region divergence
// KLDivergence is sum p*ln(p/q) over dimensions where both p and q are
// positive. Zero terms are skipped rather than treated as infinite.
func KLDivergence(p, q dimension.Vector) float64 {
	var kl float64
	for i := range p {
		if p[i] > 0 && q[i] > 0 {
			kl += p[i] * math.Log(p[i]/q[i])
		}
	}
	return kl
}

// CosineSimilarity returns 0 when either vector has zero norm.
func CosineSimilarity(a, b dimension.Vector) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// #endregion divergence

// #region blend
// maxEvidenceShare caps how much text evidence may weigh in a blend.
const maxEvidenceShare = 0.5

// EvidenceStrength converts a classifier confidence into a blend strength.
// Text evidence never receives more than half the weight.
func EvidenceStrength(detectionConfidence float64) float64 {
	return maxEvidenceShare * clamp(detectionConfidence)
}

// Blend mixes prior and evidence as prior*(1-strength) + evidence*strength
// and renormalizes. strength is clamped to [0,1].
func Blend(prior, evidence dimension.Vector, strength float64) dimension.Vector {
	s := clamp(strength)
	var out dimension.Vector
	for i := range prior {
		out[i] = prior[i]*(1-s) + evidence[i]*s
	}
	return out.Normalize()
}

// BlendDetection blends a geometric vector with a text vector using the
// strength derived from the classifier's confidence.
func BlendDetection(geometric, text dimension.Vector, detectionConfidence float64) dimension.Vector {
	return Blend(geometric, text, EvidenceStrength(detectionConfidence))
}

// #endregion blend

// #region helpers
// clamp restricts v to [0, 1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
