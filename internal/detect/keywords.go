package detect

import (
	"regexp"

	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
)

// #region keywords
// keywordSet holds the three weighted tiers of one dimension. Matching is a
// substring count on lowercased text, not a token match.
type keywordSet struct {
	primary   []string
	secondary []string
	themes    []string
}

var keywords = [dimension.Count]keywordSet{
	dimension.Movement: {
		primary: []string{
			"create", "do", "make", "build", "start", "begin", "initiate",
			"action", "act", "move", "go", "drive", "push", "launch",
			"energy", "power", "force", "momentum", "generate", "produce",
		},
		secondary: []string{
			"doing", "making", "creating", "starting", "moving", "going",
			"active", "dynamic", "energetic", "powerful", "driven",
			"initiative", "spontaneous", "immediate", "now", "today",
		},
		themes: []string{
			"self-expression", "identity", "direction", "purpose",
			"manifestation", "will", "intention", "desire",
		},
	},
	dimension.Evolution: {
		primary: []string{
			"remember", "recall", "memory", "understand", "learn",
			"process", "think", "reflect", "consider", "analyze",
			"wisdom", "knowledge", "insight", "realize", "recognize",
		},
		secondary: []string{
			"thinking", "processing", "understanding", "learning",
			"reflective", "analytical", "thoughtful", "wise",
			"mental", "cognitive", "intellectual", "cerebral",
			"past", "history", "experience", "lesson",
		},
		themes: []string{
			"pattern", "meaning", "gravity", "depth", "synthesis",
			"integration", "comprehension", "awareness",
		},
	},
	dimension.Being: {
		primary: []string{
			"am", "is", "be", "being", "exist", "presence", "here",
			"feel", "sense", "body", "touch", "physical", "material",
			"alive", "breath", "heart", "gut", "instinct", "visceral",
		},
		secondary: []string{
			"existing", "present", "embodied", "grounded", "rooted",
			"feeling", "sensing", "experiencing", "living",
			"bodily", "tangible", "concrete", "real", "actual",
			"now", "currently", "immediate", "direct",
		},
		themes: []string{
			"matter", "substance", "form", "reality", "truth",
			"survival", "life force", "vitality", "essence",
		},
	},
	dimension.Design: {
		primary: []string{
			"plan", "design", "structure", "organize", "arrange",
			"system", "order", "pattern", "framework", "build",
			"construct", "engineer", "architect", "strategy", "method",
		},
		secondary: []string{
			"planning", "designing", "structuring", "organizing",
			"systematic", "ordered", "methodical", "strategic",
			"logical", "rational", "structured", "organized",
			"future", "goal", "objective", "target", "aim",
		},
		themes: []string{
			"progress", "development", "growth", "evolution",
			"improvement", "optimization", "refinement", "clarity",
		},
	},
	dimension.Space: {
		primary: []string{
			"imagine", "dream", "vision", "see", "visualize",
			"possibility", "potential", "could", "might", "maybe",
			"wonder", "curious", "explore", "discover", "envision",
		},
		secondary: []string{
			"imagining", "dreaming", "envisioning", "wondering",
			"imaginative", "creative", "visionary", "inspired",
			"possible", "potential", "conceptual", "abstract",
			"what if", "illusion", "form", "idea", "concept",
		},
		themes: []string{
			"inspiration", "creativity", "innovation", "novelty",
			"transcendence", "expansion", "freedom", "openness",
		},
	},
}

// #endregion keywords

// #region patterns
// patterns are phrase cues matched case-insensitively against the text.
var patterns = [dimension.Count][]*regexp.Regexp{
	dimension.Movement: compileAll(
		`\bI (create|do|make|start|begin)`,
		`\b(need to|want to|going to) (do|make|create|start)`,
		`\b(action|doing|creating|making)`,
	),
	dimension.Evolution: compileAll(
		`\bI (remember|think|understand|realize)`,
		`\b(trying to understand|learning|processing)`,
		`\b(pattern|meaning|why|how come)`,
	),
	dimension.Being: compileAll(
		`\bI am\b`,
		`\b(feel|sense|body|physical)`,
		`\b(here|now|present|alive)`,
	),
	dimension.Design: compileAll(
		`\bI (plan|design|organize|structure)`,
		`\b(need to (plan|organize|fix))`,
		`\b(system|structure|strategy|method)`,
	),
	dimension.Space: compileAll(
		`\bI (imagine|dream|wonder|envision)`,
		`\b(what if|could|might|possibly)`,
		`\b(possibility|potential|vision)`,
	),
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// #endregion patterns
