package services

import (
	"testing"

	"neolingo/contexts/curation/neo-service/domain/entities"
)

func strPtr(s string) *string { return &s }

func TestAggregateRatingsEmpty(t *testing.T) {
	aggregate := AggregateRatings(nil)
	if aggregate.RatingCount != 0 || aggregate.RatingScore != 0 || aggregate.RejectCount != 0 {
		t.Fatalf("empty scan must yield zero aggregate, got %+v", aggregate)
	}
}

func TestAggregateRatingsMeanAndRejects(t *testing.T) {
	ratings := []entities.NeoRating{
		{NeoID: "neo-1", UserID: "user-a", Value: 1},
		{NeoID: "neo-1", UserID: "user-b", Value: -1, RejectionReason: strPtr("spam")},
	}
	aggregate := AggregateRatings(ratings)
	if aggregate.RatingCount != 2 {
		t.Fatalf("expected count 2, got %d", aggregate.RatingCount)
	}
	if aggregate.RatingScore != 0 {
		t.Fatalf("expected mean 0, got %f", aggregate.RatingScore)
	}
	if aggregate.RejectCount != 1 {
		t.Fatalf("expected one reject, got %d", aggregate.RejectCount)
	}
}

func TestAggregateRatingsZeroVoteCounts(t *testing.T) {
	ratings := []entities.NeoRating{
		{NeoID: "neo-1", UserID: "user-a", Value: 1},
		{NeoID: "neo-1", UserID: "user-b", Value: 0},
	}
	aggregate := AggregateRatings(ratings)
	if aggregate.RatingCount != 2 {
		t.Fatalf("zero vote must count, got %d", aggregate.RatingCount)
	}
	if aggregate.RatingScore != 0.5 {
		t.Fatalf("zero vote must dilute the mean, got %f", aggregate.RatingScore)
	}
}

func TestAggregateRatingsBlankReasonIsNotReject(t *testing.T) {
	ratings := []entities.NeoRating{
		{NeoID: "neo-1", UserID: "user-a", Value: -1},
	}
	aggregate := AggregateRatings(ratings)
	if aggregate.RejectCount != 0 {
		t.Fatalf("downvote without reason is not a reject, got %d", aggregate.RejectCount)
	}
}
