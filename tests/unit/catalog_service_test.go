package unit

import (
	"context"
	"errors"
	"testing"

	catalogservice "neolingo/contexts/dictionary/catalog-service"
	catalogerrors "neolingo/contexts/dictionary/catalog-service/domain/errors"
	httptransport "neolingo/contexts/dictionary/catalog-service/transport/http"
)

func TestSubmitAndApproveRequestPublishesTerm(t *testing.T) {
	module := catalogservice.NewInMemoryModule(nil, nil)

	submitted, err := module.Handler.SubmitRequestHandler(context.Background(), "contributor-1", httptransport.SubmitRequestRequest{
		Gloss:        "computer",
		PartOfSpeech: "noun",
		Language:     "gd",
	})
	if err != nil {
		t.Fatalf("submit request failed: %v", err)
	}
	if submitted.Status != "pending" {
		t.Fatalf("expected pending request, got %s", submitted.Status)
	}

	reviewed, err := module.Handler.ReviewRequestHandler(context.Background(), submitted.RequestID, "juror-1", httptransport.ReviewRequestRequest{
		Decision: "approve",
		Headword: "coimpiutair",
	})
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if reviewed.Term == nil || reviewed.Term.Headword != "coimpiutair" {
		t.Fatalf("approval must publish a term, got %+v", reviewed.Term)
	}

	term, err := module.Handler.GetTermHandler(context.Background(), reviewed.Term.TermID)
	if err != nil {
		t.Fatalf("get term failed: %v", err)
	}
	if term.Gloss != "computer" || term.Language != "gd" {
		t.Fatalf("term must carry request fields, got %+v", term)
	}
}

func TestReviewRequestConflictsWhenAlreadyReviewed(t *testing.T) {
	module := catalogservice.NewInMemoryModule(nil, nil)

	submitted, err := module.Handler.SubmitRequestHandler(context.Background(), "contributor-1", httptransport.SubmitRequestRequest{
		Gloss:    "bicycle",
		Language: "gd",
	})
	if err != nil {
		t.Fatalf("submit request failed: %v", err)
	}

	if _, err := module.Handler.ReviewRequestHandler(context.Background(), submitted.RequestID, "juror-1", httptransport.ReviewRequestRequest{
		Decision: "reject",
		Note:     "duplicate",
	}); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	_, err = module.Handler.ReviewRequestHandler(context.Background(), submitted.RequestID, "juror-2", httptransport.ReviewRequestRequest{
		Decision: "approve",
	})
	if !errors.Is(err, catalogerrors.ErrAlreadyReviewed) {
		t.Fatalf("expected already-reviewed conflict, got %v", err)
	}
}

func TestListRequestsFiltersByStatus(t *testing.T) {
	module := catalogservice.NewInMemoryModule(nil, nil)

	for _, gloss := range []string{"river", "mountain"} {
		if _, err := module.Handler.SubmitRequestHandler(context.Background(), "contributor-1", httptransport.SubmitRequestRequest{
			Gloss:    gloss,
			Language: "gd",
		}); err != nil {
			t.Fatalf("submit %s failed: %v", gloss, err)
		}
	}

	pending, err := module.Handler.ListRequestsHandler(context.Background(), "pending")
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending.Requests) != 2 {
		t.Fatalf("expected two pending requests, got %d", len(pending.Requests))
	}

	if _, err := module.Handler.ListRequestsHandler(context.Background(), "bogus"); !errors.Is(err, catalogerrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status error, got %v", err)
	}
}

func TestListTermsFiltersByLanguage(t *testing.T) {
	module := catalogservice.NewInMemoryModule(nil, nil)

	glosses := map[string]string{"sea": "gd", "sky": "cy"}
	for gloss, language := range glosses {
		submitted, err := module.Handler.SubmitRequestHandler(context.Background(), "contributor-1", httptransport.SubmitRequestRequest{
			Gloss:    gloss,
			Language: language,
		})
		if err != nil {
			t.Fatalf("submit %s failed: %v", gloss, err)
		}
		if _, err := module.Handler.ReviewRequestHandler(context.Background(), submitted.RequestID, "juror-1", httptransport.ReviewRequestRequest{
			Decision: "approve",
		}); err != nil {
			t.Fatalf("approve %s failed: %v", gloss, err)
		}
	}

	all, err := module.Handler.ListTermsHandler(context.Background(), "")
	if err != nil {
		t.Fatalf("list all terms failed: %v", err)
	}
	if len(all.Terms) != 2 {
		t.Fatalf("expected two terms, got %d", len(all.Terms))
	}

	welsh, err := module.Handler.ListTermsHandler(context.Background(), "cy")
	if err != nil {
		t.Fatalf("list welsh terms failed: %v", err)
	}
	if len(welsh.Terms) != 1 || welsh.Terms[0].Gloss != "sky" {
		t.Fatalf("unexpected language filter result: %+v", welsh.Terms)
	}
}
