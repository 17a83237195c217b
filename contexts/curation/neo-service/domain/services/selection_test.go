package services

import (
	"fmt"
	"testing"

	"neolingo/contexts/curation/neo-service/domain/entities"
)

func TestRankTermNeosRatedModeSortsByScore(t *testing.T) {
	neos := []entities.Neo{
		{NeoID: "neo-low", TermID: "term-1", RatingCount: 2, RatingScore: 0.5},
		{NeoID: "neo-high", TermID: "term-1", RatingCount: 3, RatingScore: 1},
		{NeoID: "neo-rejected", TermID: "term-1", RatingCount: 2, RatingScore: 0.5, RejectCount: 1},
		{NeoID: "neo-fresh", TermID: "term-1"},
	}
	ratings := []entities.NeoRating{
		{NeoID: "neo-low", UserID: "user-b", Value: 1},
		{NeoID: "neo-low", UserID: "user-c", Value: 0},
		{NeoID: "neo-high", UserID: "user-b", Value: 1},
		{NeoID: "neo-high", UserID: "user-c", Value: 1},
		{NeoID: "neo-high", UserID: "user-d", Value: 1},
	}

	ranked := RankTermNeos(neos, ratings, nil, true)
	if len(ranked) != 2 {
		t.Fatalf("expected two rated survivors, got %d", len(ranked))
	}
	if ranked[0].Neo.NeoID != "neo-high" || ranked[1].Neo.NeoID != "neo-low" {
		t.Fatalf("unexpected order: %s, %s", ranked[0].Neo.NeoID, ranked[1].Neo.NeoID)
	}
	if ranked[0].VoteTotal != 3 || ranked[1].VoteTotal != 1 {
		t.Fatalf("unexpected vote totals: %d, %d", ranked[0].VoteTotal, ranked[1].VoteTotal)
	}
}

func TestRankTermNeosExcludesCallerNonZeroVotes(t *testing.T) {
	neos := []entities.Neo{
		{NeoID: "neo-voted", TermID: "term-1", RatingCount: 1, RatingScore: 1},
		{NeoID: "neo-neutral", TermID: "term-1", RatingCount: 1, RatingScore: 0},
	}
	caller := []entities.RatedNeo{
		{NeoID: "neo-voted", Value: 1},
		{NeoID: "neo-neutral", Value: 0},
	}

	ranked := RankTermNeos(neos, nil, caller, true)
	if len(ranked) != 1 || ranked[0].Neo.NeoID != "neo-neutral" {
		t.Fatalf("only the zero-voted neo should remain, got %+v", ranked)
	}
}

func TestRankTermNeosUnratedModeSortsByCountAndHidesRejected(t *testing.T) {
	neos := []entities.Neo{
		{NeoID: "neo-a", TermID: "term-1"},
		{NeoID: "neo-b", TermID: "term-1"},
		{NeoID: "neo-hidden", TermID: "term-1", RejectCount: RejectListThreshold},
		{NeoID: "neo-rated", TermID: "term-1", RatingCount: 1},
	}

	ranked := RankTermNeos(neos, nil, nil, false)
	if len(ranked) != 2 {
		t.Fatalf("expected two unrated survivors, got %d", len(ranked))
	}
	for _, entry := range ranked {
		if entry.Neo.NeoID == "neo-hidden" || entry.Neo.NeoID == "neo-rated" {
			t.Fatalf("unexpected survivor %s", entry.Neo.NeoID)
		}
	}
}

func TestRankTermNeosCapsAtEleven(t *testing.T) {
	neos := make([]entities.Neo, 0, MaxListedNeos+4)
	for i := 0; i < MaxListedNeos+4; i++ {
		neos = append(neos, entities.Neo{
			NeoID:  fmt.Sprintf("neo-%02d", i),
			TermID: "term-1",
		})
	}

	ranked := RankTermNeos(neos, nil, nil, false)
	if len(ranked) != MaxListedNeos {
		t.Fatalf("expected listing capped at %d, got %d", MaxListedNeos, len(ranked))
	}
}
