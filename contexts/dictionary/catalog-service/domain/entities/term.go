package entities

import (
	"strings"
	"time"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

func ParseRequestStatus(raw string) (RequestStatus, bool) {
	switch RequestStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case RequestStatusPending:
		return RequestStatusPending, true
	case RequestStatusApproved:
		return RequestStatusApproved, true
	case RequestStatusRejected:
		return RequestStatusRejected, true
	default:
		return "", false
	}
}

// Term is a published dictionary headword Neos are collected for.
type Term struct {
	TermID       string
	Headword     string
	Language     string
	PartOfSpeech string
	Gloss        string
	RequestID    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TranslationRequest is a contributor's ask for a new Term. Approval
// publishes a Term from the request fields; rejection only records the
// verdict.
type TranslationRequest struct {
	RequestID    string
	Gloss        string
	PartOfSpeech string
	Language     string
	RequesterID  string
	Status       RequestStatus
	ReviewerID   string
	ReviewNote   string
	ReviewedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r TranslationRequest) ValidateCreate() bool {
	return strings.TrimSpace(r.Gloss) != "" &&
		strings.TrimSpace(r.Language) != "" &&
		strings.TrimSpace(r.RequesterID) != ""
}
