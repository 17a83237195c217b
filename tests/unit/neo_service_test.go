package unit

import (
	"context"
	"errors"
	"fmt"
	"testing"

	neoservice "neolingo/contexts/curation/neo-service"
	"neolingo/contexts/curation/neo-service/adapters/memory"
	neoerrors "neolingo/contexts/curation/neo-service/domain/errors"
	"neolingo/contexts/curation/neo-service/ports"
	httptransport "neolingo/contexts/curation/neo-service/transport/http"
)

func newCurationModule(t *testing.T) neoservice.Module {
	t.Helper()
	module := neoservice.NewInMemoryModule(nil, nil)
	module.Store.SetTerm("term-1")
	return module
}

func submitOne(t *testing.T, module neoservice.Module, contributorID string, text string) httptransport.NeoResponse {
	t.Helper()
	resp, err := module.Handler.SubmitNeosHandler(context.Background(), contributorID, httptransport.SubmitNeosRequest{
		TermID: "term-1",
		Suggestions: []httptransport.NeoSuggestionRequest{
			{Text: text, Type: "CREATIVE"},
		},
	})
	if err != nil {
		t.Fatalf("submit neo failed: %v", err)
	}
	if len(resp.Neos) != 1 {
		t.Fatalf("expected one created neo, got %d", len(resp.Neos))
	}
	return resp.Neos[0]
}

func TestSubmitNeosBatchLimit(t *testing.T) {
	module := newCurationModule(t)

	suggestions := make([]httptransport.NeoSuggestionRequest, 0, 6)
	for i := 0; i < 6; i++ {
		suggestions = append(suggestions, httptransport.NeoSuggestionRequest{
			Text: fmt.Sprintf("coinage-%d", i),
			Type: "POPULAR",
		})
	}
	_, err := module.Handler.SubmitNeosHandler(context.Background(), "contributor-1", httptransport.SubmitNeosRequest{
		TermID:      "term-1",
		Suggestions: suggestions,
	})
	if !errors.Is(err, neoerrors.ErrBatchLimitExceeded) {
		t.Fatalf("expected batch limit error, got %v", err)
	}
}

func TestSubmitNeosUnknownTerm(t *testing.T) {
	module := newCurationModule(t)

	_, err := module.Handler.SubmitNeosHandler(context.Background(), "contributor-1", httptransport.SubmitNeosRequest{
		TermID: "term-missing",
		Suggestions: []httptransport.NeoSuggestionRequest{
			{Text: "coinage", Type: "ROOT"},
		},
	})
	if !errors.Is(err, neoerrors.ErrTermNotFound) {
		t.Fatalf("expected term not found, got %v", err)
	}
}

func TestRateNeoAggregateScenario(t *testing.T) {
	module := newCurationModule(t)
	created := submitOne(t, module, "contributor-1", "coinage")

	first, err := module.Handler.RateNeoHandler(context.Background(), created.NeoID, "user-a", httptransport.RateNeoRequest{Value: 1})
	if err != nil {
		t.Fatalf("first rating failed: %v", err)
	}
	if first.Neo.RatingCount != 1 || first.Neo.RatingScore != 1 || first.Neo.RejectCount != 0 {
		t.Fatalf("unexpected aggregate after first vote: %+v", first.Neo)
	}

	reason := "spam"
	second, err := module.Handler.RateNeoHandler(context.Background(), created.NeoID, "user-b", httptransport.RateNeoRequest{
		Value:           -1,
		RejectionReason: &reason,
	})
	if err != nil {
		t.Fatalf("second rating failed: %v", err)
	}
	if second.Neo.RatingCount != 2 || second.Neo.RatingScore != 0 || second.Neo.RejectCount != 1 {
		t.Fatalf("unexpected aggregate after reject: %+v", second.Neo)
	}
	if !second.Success {
		t.Fatalf("expected success envelope")
	}
	if len(second.Data) != 1 || second.Data[0].NeoID != created.NeoID {
		t.Fatalf("expected caller rated set with one entry, got %+v", second.Data)
	}
}

func TestRateNeoIdempotentAndReRate(t *testing.T) {
	module := newCurationModule(t)
	created := submitOne(t, module, "contributor-1", "coinage")

	for i := 0; i < 3; i++ {
		resp, err := module.Handler.RateNeoHandler(context.Background(), created.NeoID, "user-a", httptransport.RateNeoRequest{Value: 1})
		if err != nil {
			t.Fatalf("repeat rating failed: %v", err)
		}
		if resp.Neo.RatingCount != 1 || resp.Neo.RatingScore != 1 {
			t.Fatalf("repeat rating changed aggregate: %+v", resp.Neo)
		}
	}

	rerated, err := module.Handler.RateNeoHandler(context.Background(), created.NeoID, "user-a", httptransport.RateNeoRequest{Value: -1})
	if err != nil {
		t.Fatalf("re-rate failed: %v", err)
	}
	if rerated.Neo.RatingCount != 1 {
		t.Fatalf("re-rate must not add a row, got count %d", rerated.Neo.RatingCount)
	}
	if rerated.Neo.RatingScore != -1 {
		t.Fatalf("re-rate must use the new value, got score %f", rerated.Neo.RatingScore)
	}
}

func TestRateNeoZeroVoteCountsButKeepsListed(t *testing.T) {
	module := newCurationModule(t)
	created := submitOne(t, module, "contributor-1", "coinage")

	resp, err := module.Handler.RateNeoHandler(context.Background(), created.NeoID, "user-a", httptransport.RateNeoRequest{Value: 0})
	if err != nil {
		t.Fatalf("zero vote failed: %v", err)
	}
	if resp.Neo.RatingCount != 1 || resp.Neo.RatingScore != 0 {
		t.Fatalf("zero vote must count in aggregate: %+v", resp.Neo)
	}

	listing, err := module.Handler.TermNeosHandler(context.Background(), "term-1", true, "user-a")
	if err != nil {
		t.Fatalf("rated listing failed: %v", err)
	}
	if len(listing.Items) != 1 {
		t.Fatalf("zero vote must not hide the neo from its caster, got %d items", len(listing.Items))
	}
}

func TestRateNeoUnknownNeo(t *testing.T) {
	module := newCurationModule(t)

	_, err := module.Handler.RateNeoHandler(context.Background(), "neo-missing", "user-a", httptransport.RateNeoRequest{Value: 1})
	if !errors.Is(err, neoerrors.ErrNeoNotFound) {
		t.Fatalf("expected neo not found, got %v", err)
	}
}

func TestTermNeosRatedModeExcludesCallerVotes(t *testing.T) {
	module := newCurationModule(t)
	neoA := submitOne(t, module, "contributor-1", "coinage-a")
	neoB := submitOne(t, module, "contributor-1", "coinage-b")

	if _, err := module.Handler.RateNeoHandler(context.Background(), neoA.NeoID, "user-a", httptransport.RateNeoRequest{Value: 1}); err != nil {
		t.Fatalf("rate neo a failed: %v", err)
	}
	if _, err := module.Handler.RateNeoHandler(context.Background(), neoB.NeoID, "user-b", httptransport.RateNeoRequest{Value: 1}); err != nil {
		t.Fatalf("rate neo b failed: %v", err)
	}

	listing, err := module.Handler.TermNeosHandler(context.Background(), "term-1", true, "user-a")
	if err != nil {
		t.Fatalf("rated listing failed: %v", err)
	}
	if len(listing.Items) != 1 || listing.Items[0].NeoID != neoB.NeoID {
		t.Fatalf("caller-voted neo must be excluded, got %+v", listing.Items)
	}
	if listing.Items[0].Vote != 1 {
		t.Fatalf("expected vote total 1, got %d", listing.Items[0].Vote)
	}
}

func TestTermNeosUnratedModeAndRejectThreshold(t *testing.T) {
	module := newCurationModule(t)
	fresh := submitOne(t, module, "contributor-1", "fresh")
	buried := submitOne(t, module, "contributor-1", "buried")

	reason := "offensive"
	for _, rater := range []string{"user-a", "user-b", "user-c"} {
		if _, err := module.Handler.RateNeoHandler(context.Background(), buried.NeoID, rater, httptransport.RateNeoRequest{
			Value:           -1,
			RejectionReason: &reason,
		}); err != nil {
			t.Fatalf("reject vote failed: %v", err)
		}
	}

	listing, err := module.Handler.TermNeosHandler(context.Background(), "term-1", false, "user-z")
	if err != nil {
		t.Fatalf("unrated listing failed: %v", err)
	}
	if len(listing.Items) != 1 || listing.Items[0].NeoID != fresh.NeoID {
		t.Fatalf("thrice-rejected neo must be hidden from the unrated list, got %+v", listing.Items)
	}
}

func TestRatedByMeScoped(t *testing.T) {
	module := newCurationModule(t)
	neoA := submitOne(t, module, "contributor-1", "coinage-a")
	neoB := submitOne(t, module, "contributor-1", "coinage-b")

	if _, err := module.Handler.RateNeoHandler(context.Background(), neoA.NeoID, "user-a", httptransport.RateNeoRequest{Value: 1}); err != nil {
		t.Fatalf("rate neo a failed: %v", err)
	}
	if _, err := module.Handler.RateNeoHandler(context.Background(), neoB.NeoID, "user-a", httptransport.RateNeoRequest{Value: -1}); err != nil {
		t.Fatalf("rate neo b failed: %v", err)
	}

	all, err := module.Handler.RatedByMeHandler(context.Background(), "user-a", nil)
	if err != nil {
		t.Fatalf("rated-by-me failed: %v", err)
	}
	if len(all.Items) != 2 {
		t.Fatalf("expected two ratings, got %d", len(all.Items))
	}

	scoped, err := module.Handler.RatedByMeHandler(context.Background(), "user-a", []string{neoB.NeoID})
	if err != nil {
		t.Fatalf("scoped rated-by-me failed: %v", err)
	}
	if len(scoped.Items) != 1 || scoped.Items[0].NeoID != neoB.NeoID || scoped.Items[0].Value != -1 {
		t.Fatalf("unexpected scoped result: %+v", scoped.Items)
	}
}

func TestSubmitNeosEmitsOutboxEvents(t *testing.T) {
	module := newCurationModule(t)
	created := submitOne(t, module, "contributor-1", "coinage")
	if _, err := module.Handler.RateNeoHandler(context.Background(), created.NeoID, "user-a", httptransport.RateNeoRequest{Value: 1}); err != nil {
		t.Fatalf("rate failed: %v", err)
	}

	pending, err := module.Store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected neo.created and neo.rated events, got %d", len(pending))
	}
	types := map[string]bool{}
	for _, message := range pending {
		types[message.EventType] = true
	}
	if !types["neo.created"] || !types["neo.rated"] {
		t.Fatalf("unexpected event types: %v", types)
	}
}

type stubReviewer struct {
	verdict ports.ReviewVerdict
	err     error
}

func (s stubReviewer) ReviewNeo(_ context.Context, _ ports.ReviewInput) (ports.ReviewVerdict, error) {
	return s.verdict, s.err
}

func newReviewedModule(t *testing.T, reviewer ports.ContentReviewer) neoservice.Module {
	t.Helper()
	store := memory.NewStore(nil)
	store.SetTerm("term-1")
	module := neoservice.NewModule(neoservice.Dependencies{
		Neos:     store,
		Terms:    store,
		Reviewer: reviewer,
		Outbox:   store,
		Clock:    store,
		IDGen:    store,
	})
	module.Store = store
	return module
}

func TestSubmitNeosFlaggedContentRejectsBatch(t *testing.T) {
	module := newReviewedModule(t, stubReviewer{
		verdict: ports.ReviewVerdict{Flagged: true, Reason: "slur"},
	})

	_, err := module.Handler.SubmitNeosHandler(context.Background(), "contributor-1", httptransport.SubmitNeosRequest{
		TermID: "term-1",
		Suggestions: []httptransport.NeoSuggestionRequest{
			{Text: "bad-coinage", Type: "CREATIVE"},
		},
	})
	if !errors.Is(err, neoerrors.ErrContentRejected) {
		t.Fatalf("expected content rejected, got %v", err)
	}

	neos, listErr := module.Store.ListNeosByTerm(context.Background(), "term-1")
	if listErr != nil {
		t.Fatalf("list neos failed: %v", listErr)
	}
	if len(neos) != 0 {
		t.Fatalf("rejected batch must persist nothing, got %d neos", len(neos))
	}
}

func TestSubmitNeosReviewerFailureFailsOpen(t *testing.T) {
	module := newReviewedModule(t, stubReviewer{
		err: errors.New("model unavailable"),
	})

	resp, err := module.Handler.SubmitNeosHandler(context.Background(), "contributor-1", httptransport.SubmitNeosRequest{
		TermID: "term-1",
		Suggestions: []httptransport.NeoSuggestionRequest{
			{Text: "coinage", Type: "CREATIVE"},
		},
	})
	if err != nil {
		t.Fatalf("reviewer outage must not block submission: %v", err)
	}
	if len(resp.Neos) != 1 {
		t.Fatalf("expected the suggestion to be accepted, got %d", len(resp.Neos))
	}
}
