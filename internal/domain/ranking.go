package domain

// Ranking is one country's overall position for one report year.
// Rankings are read-only reference data owned by the store.
type Ranking struct {
	Rank    int     `json:"rank"`
	Country string  `json:"country"`
	Score   float64 `json:"score"`
	Year    int     `json:"year"`
}

// Factors is the per-year breakdown of the six sub-factor scores that
// contribute to a country's happiness score.
type Factors struct {
	Rank       int     `json:"rank"`
	Country    string  `json:"country"`
	Score      float64 `json:"score"`
	Economy    float64 `json:"economy"`
	Family     float64 `json:"family"`
	Health     float64 `json:"health"`
	Freedom    float64 `json:"freedom"`
	Generosity float64 `json:"generosity"`
	Trust      float64 `json:"trust"`
}
