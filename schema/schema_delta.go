package schema

// DeltaRow is the signed difference between a candidate's and the
// baseline's accuracy for one matched category. Rows exist only for
// categories present on both sides.
type DeltaRow struct {
	Category       string  `json:"category"`
	Baseline       float64 `json:"baseline"`
	Candidate      float64 `json:"candidate"`
	Delta          float64 `json:"delta"`     // Candidate - Baseline (positive means the candidate improved)
	AbsDelta       float64 `json:"abs_delta"`
	CandidateLabel string  `json:"candidate_label"`
}

// DeltaSummary has high-level figures across a set of delta rows.
type DeltaSummary struct {
	NetDelta  float64 `json:"net_delta"`
	Improved  int     `json:"improved"`
	Regressed int     `json:"regressed"`
	Unchanged int     `json:"unchanged"`
}

// DeltaResult holds the delta rows and their summary.
type DeltaResult struct {
	BaselineLabel string       `json:"baseline_label"`
	Rows          []DeltaRow   `json:"rows"`
	Summary       DeltaSummary `json:"summary"`
}
