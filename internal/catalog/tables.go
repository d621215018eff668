package catalog

import "github.com/danielpatrickdp/synthai/go-core/internal/dimension"

// #region centers
var centers = [CenterCount]CenterInfo{
	Head:        {"Head", dimension.Space, "inspiring presence through the pineal", "Yellow"},
	Ajna:        {"Ajna", dimension.Evolution, "mentally conceptualizing through the pituitary", "Green"},
	Throat:      {"Throat", dimension.Design, "expressing through the thyroid", "Brown"},
	G:           {"G", dimension.Movement, "identifying direction through the liver", "Yellow"},
	Heart:       {"Heart", dimension.Design, "willing into being through the thymus", "Red"},
	Spleen:      {"Spleen", dimension.Being, "instinctively preserving through the spleen", "Brown"},
	Sacral:      {"Sacral", dimension.Being, "generating life force through gonads", "Red"},
	SolarPlexus: {"Solar Plexus", dimension.Being, "feeling through emotional waves via kidneys", "Brown"},
	Root:        {"Root", dimension.Design, "pressuring into manifestation via adrenals", "Brown"},
}

// #endregion centers

// #region dimensions
var dimensions = [dimension.Count]DimensionInfo{
	dimension.Movement:  {dimension.Movement, "I Create", "Energy = Creation"},
	dimension.Evolution: {dimension.Evolution, "I Remember", "Gravity = Memory"},
	dimension.Being:     {dimension.Being, "I Am", "Matter = Touch"},
	dimension.Design:    {dimension.Design, "I Design", "Structure = Progress"},
	dimension.Space:     {dimension.Space, "I Think", "Form = Illusion"},
}

// #endregion dimensions

// #region subdivisions
// colors, tones and bases are indexed by number - 1.
var colors = [6]ColorInfo{
	{"Fear", "Need to know", "Appetite"},
	{"Hope", "Expectation", "Taste"},
	{"Desire", "Need to lead/follow", "Thirst"},
	{"Need", "Need to master", "Touch"},
	{"Guilt", "Need to fix", "Sound"},
	{"Innocence", "Observer", "Light"},
}

var tones = [6]ToneInfo{
	{"Security", "Smell"},
	{"Uncertainty", "Taste"},
	{"Action", "Outer Vision"},
	{"Meditation", "Inner Vision"},
	{"Judgment", "Feeling"},
	{"Acceptance", "Touch"},
}

var bases = [5]BaseInfo{
	{"Reactive"},
	{"Integrative"},
	{"Objective"},
	{"Progressive"},
	{"Subjective"},
}

// #endregion subdivisions

// #region polarity
// polarity pairs each gate with its partner; the table is an involution.
var polarity = [65]int{
	1: 2, 2: 1, 3: 50, 4: 49, 5: 35, 6: 36, 7: 13, 8: 14,
	9: 16, 10: 15, 11: 12, 12: 11, 13: 7, 14: 8, 15: 10, 16: 9,
	17: 18, 18: 17, 19: 33, 20: 34, 21: 48, 22: 47, 23: 43, 24: 44,
	25: 46, 26: 45, 27: 28, 28: 27, 29: 30, 30: 29, 31: 41, 32: 42,
	33: 19, 34: 20, 35: 5, 36: 6, 37: 40, 38: 39, 39: 38, 40: 37,
	41: 31, 42: 32, 43: 23, 44: 24, 45: 26, 46: 25, 47: 22, 48: 21,
	49: 4, 50: 3, 51: 57, 52: 58, 53: 54, 54: 53, 55: 59, 56: 60,
	57: 51, 58: 52, 59: 55, 60: 56, 61: 62, 62: 61, 63: 64, 64: 63,
}

// #endregion polarity

// #region grammar
// Grammar glyphs used to punctuate generated sentences.
const (
	GlyphSingularity  = "•"
	GlyphTransitioner = "."
	GlyphCollapse     = "°"
	GlyphPortal       = ":"
	GlyphFork         = ";"
	GlyphBreath       = ","
	GlyphCurrent      = "–"
	GlyphPulse        = "′"
	GlyphFlicker      = "″"
	GlyphContainer    = `"`
	GlyphContinuation = "…"
	GlyphMirror       = "="
	GlyphVector       = "→"
)

// #endregion grammar
