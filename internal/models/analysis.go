package models

// AnalysisResponse is the full and only body of a successful analysis.
type AnalysisResponse struct {
	AnalysisType   string `json:"analysis_type"`
	AnalysisResult string `json:"analysis_result"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
