package sentence

// #region types

// Guidance is the actionable reading of a coordinate.
type Guidance struct {
	Keynote    string `json:"keynote"`
	Action     string `json:"action"`
	Approach   string `json:"approach"`
	Theme      string `json:"theme"`
	Expression string `json:"expression"`
}

// Sentences bundles the three renderings of one coordinate.
type Sentences struct {
	Metaphysical string   `json:"metaphysical"`
	Scientific   string   `json:"scientific"`
	Guidance     Guidance `json:"guidance"`
}

// #endregion types
