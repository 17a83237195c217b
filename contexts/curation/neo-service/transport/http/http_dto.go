package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type NeoSuggestionRequest struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	AudioURL string `json:"audio_url,omitempty"`
}

type SubmitNeosRequest struct {
	TermID      string                 `json:"term_id"`
	Suggestions []NeoSuggestionRequest `json:"suggestions"`
}

type NeoResponse struct {
	NeoID         string  `json:"neo_id"`
	TermID        string  `json:"term_id"`
	ContributorID string  `json:"contributor_id"`
	Text          string  `json:"text"`
	Type          string  `json:"type"`
	AudioURL      string  `json:"audio_url,omitempty"`
	RatingCount   int     `json:"rating_count"`
	RatingScore   float64 `json:"rating_score"`
	RejectCount   int     `json:"reject_count"`
}

type SubmitNeosResponse struct {
	Neos []NeoResponse `json:"neos"`
}

type RateNeoRequest struct {
	Value           int     `json:"value"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type RatedNeoItem struct {
	NeoID string `json:"neo_id"`
	Value int    `json:"value"`
}

// RateNeoResponse is the success/message/data envelope the UI checks instead
// of catching errors.
type RateNeoResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Neo     *NeoResponse   `json:"neo,omitempty"`
	Data    []RatedNeoItem `json:"data"`
}

type RankedNeoItem struct {
	NeoResponse
	Vote int `json:"vote"`
}

type TermNeosResponse struct {
	TermID string          `json:"term_id"`
	Items  []RankedNeoItem `json:"items"`
}

type RatedByMeResponse struct {
	Items []RatedNeoItem `json:"items"`
}
