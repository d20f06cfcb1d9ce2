package models

// AdviceContext echoes the request alongside a generated advice block.
// Crop, Location and Season are null when the caller left them out.
type AdviceContext struct {
	Timestamp  string  `json:"timestamp"`
	QueryType  string  `json:"query_type"`
	AdviceKind string  `json:"advice_kind"`
	Query      string  `json:"query"`
	Crop       *string `json:"crop"`
	Location   *string `json:"location"`
	Season     *string `json:"season"`
}

type AdviceResult struct {
	Advice  string        `json:"advice"`
	Context AdviceContext `json:"context"`
}

// Diagnosis is the outcome of classifying a crop image.
type Diagnosis struct {
	Disease    string  `json:"disease"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message"`
}
