package catalog

// #region gates
// gates is indexed by gate number; index 0 is unused.
var gates = [65]Gate{
	1:  {1, "The Creative", "Self-Expression", G, "Met"},
	2:  {2, "The Receptive", "Direction of the Self", G, "Ile"},
	3:  {3, "Difficulty at the Beginning", "Ordering", Sacral, "Leu"},
	4:  {4, "Youthful Folly", "Formulization", Ajna, "Phe"},
	5:  {5, "Waiting", "Fixed Rhythms", Sacral, "Ser"},
	6:  {6, "Conflict", "Friction", SolarPlexus, "Tyr"},
	7:  {7, "The Army", "Role of the Self", G, "Gly"},
	8:  {8, "Holding Together", "Contribution", Throat, "Ala"},
	9:  {9, "Taming Power of Small", "Focus", Sacral, "Val"},
	10: {10, "Treading", "Behavior of the Self", G, "Thr"},
	11: {11, "Peace", "Ideas", Ajna, "Asp"},
	12: {12, "Standstill", "Caution", Throat, "Glu"},
	13: {13, "Fellowship", "The Listener", G, "Asn"},
	14: {14, "Great Possession", "Power Skills", Sacral, "Gln"},
	15: {15, "Modesty", "Extremes", G, "Lys"},
	16: {16, "Enthusiasm", "Skills", Throat, "His"},
	17: {17, "Following", "Opinions", Ajna, "Arg"},
	18: {18, "Work on Spoilt", "Correction", Spleen, "Trp"},
	19: {19, "Approach", "Wanting", Root, "Cys"},
	20: {20, "Contemplation", "Now", Throat, "Arg"},
	21: {21, "Biting Through", "Hunter/Huntress", Heart, "Ser"},
	22: {22, "Grace", "Openness", SolarPlexus, "Leu"},
	23: {23, "Splitting Apart", "Assimilation", Throat, "Ile"},
	24: {24, "Return", "Rationalization", Ajna, "Met"},
	25: {25, "Innocence", "Spirit of Self", G, "Phe"},
	26: {26, "Great Taming", "Egoist", Heart, "Tyr"},
	27: {27, "Nourishment", "Caring", Sacral, "Gly"},
	28: {28, "Great Excess", "Game Player", Spleen, "Ala"},
	29: {29, "Abysmal", "Perseverance", Sacral, "Val"},
	30: {30, "Clinging Fire", "Feelings", SolarPlexus, "Thr"},
	31: {31, "Influence", "Leading", Throat, "Asp"},
	32: {32, "Duration", "Continuity", Spleen, "Glu"},
	33: {33, "Retreat", "Privacy", Throat, "Asn"},
	34: {34, "Great Power", "Power", Sacral, "Gln"},
	35: {35, "Progress", "Change", Throat, "Lys"},
	36: {36, "Darkening", "Crisis", SolarPlexus, "His"},
	37: {37, "Family", "Friendship", SolarPlexus, "Arg"},
	38: {38, "Opposition", "Fighter", Root, "Trp"},
	39: {39, "Obstruction", "Provocateur", Root, "Cys"},
	40: {40, "Deliverance", "Aloneness", Heart, "Arg"},
	41: {41, "Decrease", "Contraction", Root, "Ser"},
	42: {42, "Increase", "Growth", Sacral, "Leu"},
	43: {43, "Breakthrough", "Insight", Ajna, "Ile"},
	44: {44, "Coming to Meet", "Alertness", Spleen, "Met"},
	45: {45, "Gathering", "Gathering", Throat, "Phe"},
	46: {46, "Pushing Upward", "Determination", G, "Tyr"},
	47: {47, "Oppression", "Realization", Ajna, "Gly"},
	48: {48, "The Well", "Depth", Spleen, "Ala"},
	49: {49, "Revolution", "Principles", SolarPlexus, "Val"},
	50: {50, "The Cauldron", "Values", Spleen, "Thr"},
	51: {51, "Arousing", "Shock", Heart, "Asp"},
	52: {52, "Keeping Still", "Stillness", Root, "Glu"},
	53: {53, "Development", "Beginnings", Root, "Asn"},
	54: {54, "Marrying Maiden", "Ambition", Root, "Gln"},
	55: {55, "Abundance", "Spirit", SolarPlexus, "Lys"},
	56: {56, "Wanderer", "Stimulation", Throat, "His"},
	57: {57, "Gentle", "Intuitive Clarity", Spleen, "Arg"},
	58: {58, "Joyous", "Vitality", Root, "Trp"},
	59: {59, "Dispersion", "Sexuality", Sacral, "Cys"},
	60: {60, "Limitation", "Acceptance", Root, "Arg"},
	61: {61, "Inner Truth", "Mystery", Head, "Ser"},
	62: {62, "Small Excess", "Detail", Throat, "Leu"},
	63: {63, "After Completion", "Doubt", Head, "Ile"},
	64: {64, "Before Completion", "Confusion", Head, "Met"},
}

// #endregion gates

// #region lines
// lineNames holds the six line names of each gate, indexed by gate number.
var lineNames = [65][6]string{
	1:  {"Objectivity", "Love is Light", "Energy to Sustain Creative Work", "Aloneness as Medium of Creativity", "Energy to Attract Society", "Self-Preservation"},
	2:  {"Intuition", "Genius", "Patience", "Secretiveness", "Intelligent Application", "Fixation"},
	3:  {"Synthesis", "Immaturity", "Survival", "Charisma", "Victimization", "Surrender"},
	4:  {"Pleasure", "Acceptance", "Irresponsibility", "Suspension", "Seduction", "Excess"},
	5:  {"Perseverance", "Inner Peace", "Compulsiveness", "The Hunter", "Joy", "Yielding"},
	6:  {"Retreat", "The Guerrilla", "Allegiance", "Triumph", "Arbitration", "The Peacemaker"},
	7:  {"Authoritarian", "The Democrat", "The Anarchist", "The Abdicator", "The General", "The Administrator"},
	8:  {"Honesty", "Service", "Phoniness", "Phasing", "Dharma", "Communion"},
	9:  {"Sensibility", "Misery Loves Company", "Straw that Breaks Camel's Back", "Dedication", "Faith", "Gratitude"},
	10: {"Modesty", "The Hermit", "The Martyr", "The Opportunist", "The Heretic", "The Role Model"},
	11: {"Reconnaissance", "Rigor", "Realism", "The Teacher", "The Philanthropist", "Adaptability"},
	12: {"The Monk", "Purification", "Confession", "The Prophet", "The Pragmatist", "Metamorphosis"},
	13: {"Empathy", "Bigotry", "Pessimism", "Fatigue", "The Savior", "Optimism"},
	14: {"Money isn't Everything", "Management", "Service", "Security", "Arrogance", "Humility"},
	15: {"Duty", "Influence", "Ego Inflation", "The Wallflower", "Sensitivity", "Self-Defense"},
	16: {"Delusion", "Cynicism", "Independence", "Leader", "The Grinch", "Gullibility"},
	17: {"Openness", "Discrimination", "Self-Understanding", "Personnel Manager", "No Error", "Bodhisattva"},
	18: {"Conservatism", "Terminal Disease", "The Zealot", "The Incompetent", "Therapy", "Buddhahood"},
	19: {"Interdependence", "Service", "Dedication", "Teamwork", "Sacrifice", "Recluse"},
	20: {"Superficiality", "The Dogmatist", "Self-Awareness", "Application", "Realism", "Wisdom"},
	21: {"Humility", "The Court", "Powerlessness", "Strategy", "Objectivity", "Chaos"},
	22: {"Second Thoughts", "Charm School", "The Believer", "Sensitivity", "Directness", "Maturity"},
	23: {"Proselytization", "Self-Defense", "Individuality", "Fragmentation", "Exegesis", "Fusion"},
	24: {"The Miller", "Recognition", "The Addict", "The Hermit", "Confession", "Gifted Horse"},
	25: {"Selflessness", "Existence", "Sensibility", "Spiritual Nature", "Recuperation", "Ignorance"},
	26: {"Bird in Hand", "Lessons of History", "Influence", "Censorship", "Adaptability", "Authority"},
	27: {"Selfishness", "Self-Sufficiency", "Greed", "Generosity", "Executor", "Wariness"},
	28: {"Preparation", "Shake Hands with Devil", "Adventurism", "Holding On", "Treacherous Nature", "Blaze of Glory"},
	29: {"The Draftsman", "Assessment", "Evaluation", "Directness", "Overreach", "Confusion"},
	30: {"Composure", "Pragmatism", "Resignation", "Burnout", "Irony", "Enforcement"},
	31: {"Manifestation", "Arrogance", "Selectivity", "Intent", "Self-Righteousness", "Application"},
	32: {"Conservation", "Restraint", "Lack of Continuity", "Right is Might", "Flexibility", "Tranquillity"},
	33: {"Avoidance", "Surrender", "Spirit", "Dignity", "Timing", "Disassociation"},
	34: {"Bully", "Momentum", "Machismo", "Triumph", "Annihilation", "Common Sense"},
	35: {"Humility", "Creative Block", "Efficiency", "Hunger", "Altruism", "Rectification"},
	36: {"Resistance", "Support", "Transition", "Espionage", "Underground", "Justice"},
	37: {"Mother/Father", "Responsibility", "Invidiousness", "Leadership", "Love", "Purpose"},
	38: {"Qualification", "Politeness", "Alliance", "Investigation", "Alienation", "Naiveté"},
	39: {"Disengagement", "Confrontation", "Responsibility", "Temperance", "Single-mindedness", "Troubleshooter"},
	40: {"Recuperation", "Resoluteness", "Humility", "Organization", "Rigidity", "Decisiveness"},
	41: {"Reasonableness", "Caution", "Efficiency", "Correction", "Anticipation", "Manifestation"},
	42: {"Diversification", "Identification", "Trial and Error", "Middle Management", "Self-Actualization", "Nurturing"},
	43: {"Patience", "Dedication", "Surrender", "Minds-Eye", "Progression", "Breakthrough"},
	44: {"Conditions", "Management", "Interference", "Honesty", "Manipulation", "Aloofness"},
	45: {"Canvassing", "Consensus", "Exclusion", "Direction", "Leadership", "Reconsideration"},
	46: {"Being Discovered", "Departure", "Projection", "Impact", "Pacing", "Integrity"},
	47: {"Taking Stock", "Ambition", "Self-Oppression", "Constraint", "The Saint", "Futility"},
	48: {"Insignificance", "Degeneracy", "Incommunicado", "Restructuring", "Action", "Self-Fulfillment"},
	49: {"Relevance", "Last Resort", "Popular Discontent", "Platform", "Sacrifice", "Liberty"},
	50: {"Immature Rigidity", "Benevolence", "Adaptability", "Corruption", "Consistency", "Leadership"},
	51: {"Reference", "Withdrawal", "Adaptation", "Limitation", "Symmetry", "Separation"},
	52: {"Think Before You Speak", "Concern", "Controls", "Self-discipline", "Explanation", "Peacefulness"},
	53: {"Accumulation", "Momentum", "Practicality", "Assuredness", "Assertion", "Phasing"},
	54: {"Influence", "Discretion", "Covert Interaction", "Enlightenment/Endarkenment", "Magnanimity", "Selectivity"},
	55: {"Cooperation", "Distrust", "Innocence", "Assimilation", "Cause", "Selfishness"},
	56: {"Quality", "Linkage", "Readiness", "Expediency", "Attracting Attention", "Caution"},
	57: {"Confusion", "Cleansing", "Acuteness", "The Director", "Progression", "Utilization"},
	58: {"Love of Life", "Perversion", "Electricity", "Focusing", "Defense", "Carried Away"},
	59: {"Pre-emptive Strike", "Shyness", "Openness", "Brotherhood/Sisterhood", "Femme Fatale/Casanova", "One Night Stand"},
	60: {"Acceptance", "Decisiveness", "Conservatism", "Resourcefulness", "Leadership", "Rigidity"},
	61: {"Occult Knowledge", "Natural Brilliance", "Dependence", "Research", "Influence", "Appeal"},
	62: {"Routine", "Restraint", "Discovery", "Asceticism", "Discipline", "Self-discipline"},
	63: {"Composure", "Structuring", "Continuance", "Memory", "Affirmation", "Nostalgia"},
	64: {"Conditions", "Qualification", "Over-extension", "Conviction", "Promise", "Victory"},
}

// #endregion lines
