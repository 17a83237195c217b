package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SubmitRequestRequest struct {
	Gloss        string `json:"gloss"`
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	Language     string `json:"language"`
}

type TranslationRequestResponse struct {
	RequestID    string     `json:"request_id"`
	Gloss        string     `json:"gloss"`
	PartOfSpeech string     `json:"part_of_speech,omitempty"`
	Language     string     `json:"language"`
	RequesterID  string     `json:"requester_id"`
	Status       string     `json:"status"`
	ReviewerID   string     `json:"reviewer_id,omitempty"`
	ReviewNote   string     `json:"review_note,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ListRequestsResponse struct {
	Requests []TranslationRequestResponse `json:"requests"`
}

type ReviewRequestRequest struct {
	Decision string `json:"decision"`
	Headword string `json:"headword,omitempty"`
	Note     string `json:"note,omitempty"`
}

type ReviewRequestResponse struct {
	RequestID string        `json:"request_id"`
	Status    string        `json:"status"`
	Term      *TermResponse `json:"term,omitempty"`
}

type TermResponse struct {
	TermID       string `json:"term_id"`
	Headword     string `json:"headword"`
	Language     string `json:"language"`
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	Gloss        string `json:"gloss"`
}

type ListTermsResponse struct {
	Terms []TermResponse `json:"terms"`
}
