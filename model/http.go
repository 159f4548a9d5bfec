package model

type SearchRequestBody struct {
	Tuning string `json:"tuning"`
	Chord  string `json:"chord"`
}

// PositionResult is one pedal/lever combination's worth of matches.
type PositionResult struct {
	Position  string         `json:"position"`
	Matches   []NeckPosition `json:"matches"`
	FullFrets []NeckPosition `json:"full_frets"`
}

type SearchResponse struct {
	RequestId string           `json:"request_id"`
	Chord     string           `json:"chord"`
	Notes     []string         `json:"notes"`
	Results   []PositionResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
