package entities

import (
	"strings"
	"time"
)

// NeoType classifies how a candidate coinage was formed.
type NeoType string

const (
	NeoTypePopular    NeoType = "POPULAR"
	NeoTypeAdoptive   NeoType = "ADOPTIVE"
	NeoTypeFunctional NeoType = "FUNCTIONAL"
	NeoTypeRoot       NeoType = "ROOT"
	NeoTypeCreative   NeoType = "CREATIVE"
)

func ParseNeoType(value string) (NeoType, bool) {
	switch NeoType(strings.ToUpper(strings.TrimSpace(value))) {
	case NeoTypePopular:
		return NeoTypePopular, true
	case NeoTypeAdoptive:
		return NeoTypeAdoptive, true
	case NeoTypeFunctional:
		return NeoTypeFunctional, true
	case NeoTypeRoot:
		return NeoTypeRoot, true
	case NeoTypeCreative:
		return NeoTypeCreative, true
	default:
		return "", false
	}
}

// Neo is a candidate translation proposed for a dictionary term.
// RatingCount, RatingScore and RejectCount are derived from the NeoRating
// rows for this Neo and are written only by the rating command.
type Neo struct {
	NeoID         string
	TermID        string
	ContributorID string
	Text          string
	Type          NeoType
	AudioURL      string
	RatingCount   int
	RatingScore   float64
	RejectCount   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NeoRating is one user's rating of one Neo. At most one row exists per
// (user, neo) pair; re-rating overwrites value and rejection reason.
// A value of 0 is an explicit neutral vote, not the absence of a vote.
type NeoRating struct {
	NeoID           string
	UserID          string
	Value           int
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsReject reports whether the rating carried a rejection reason.
func (r NeoRating) IsReject() bool {
	return r.RejectionReason != nil && strings.TrimSpace(*r.RejectionReason) != ""
}

// RatedNeo is the compact (neo, value) pair returned by rated-by-me lookups.
type RatedNeo struct {
	NeoID string
	Value int
}

// RankedNeo is a listing entry. VoteTotal is the in-memory sum of the Neo's
// individual rating values, recomputed from the fetched rating rows rather
// than read from the persisted aggregate.
type RankedNeo struct {
	Neo       Neo
	VoteTotal int
}
