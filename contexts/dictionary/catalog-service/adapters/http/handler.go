package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	"neolingo/contexts/dictionary/catalog-service/application/commands"
	"neolingo/contexts/dictionary/catalog-service/application/queries"
	"neolingo/contexts/dictionary/catalog-service/domain/entities"
	domainerrors "neolingo/contexts/dictionary/catalog-service/domain/errors"
	httptransport "neolingo/contexts/dictionary/catalog-service/transport/http"
)

type Handler struct {
	Submit  commands.SubmitRequestUseCase
	Review  commands.ReviewRequestUseCase
	Queries queries.CatalogQueries
	Logger  *slog.Logger
}

func (h Handler) SubmitRequestHandler(
	ctx context.Context,
	requesterID string,
	req httptransport.SubmitRequestRequest,
) (httptransport.TranslationRequestResponse, error) {
	request, err := h.Submit.Execute(ctx, commands.SubmitRequestCommand{
		RequesterID:  requesterID,
		Gloss:        req.Gloss,
		PartOfSpeech: req.PartOfSpeech,
		Language:     req.Language,
	})
	if err != nil {
		return httptransport.TranslationRequestResponse{}, err
	}
	return mapRequest(request), nil
}

func (h Handler) ReviewRequestHandler(
	ctx context.Context,
	requestID string,
	reviewerID string,
	req httptransport.ReviewRequestRequest,
) (httptransport.ReviewRequestResponse, error) {
	switch strings.ToLower(strings.TrimSpace(req.Decision)) {
	case "approve":
		term, err := h.Review.Approve(ctx, commands.ApproveRequestCommand{
			RequestID:  requestID,
			ReviewerID: reviewerID,
			Headword:   req.Headword,
			Note:       req.Note,
		})
		if err != nil {
			return httptransport.ReviewRequestResponse{}, err
		}
		mapped := mapTerm(term)
		return httptransport.ReviewRequestResponse{
			RequestID: requestID,
			Status:    string(entities.RequestStatusApproved),
			Term:      &mapped,
		}, nil
	case "reject":
		if err := h.Review.Reject(ctx, commands.RejectRequestCommand{
			RequestID:  requestID,
			ReviewerID: reviewerID,
			Note:       req.Note,
		}); err != nil {
			return httptransport.ReviewRequestResponse{}, err
		}
		return httptransport.ReviewRequestResponse{
			RequestID: requestID,
			Status:    string(entities.RequestStatusRejected),
		}, nil
	default:
		return httptransport.ReviewRequestResponse{}, domainerrors.ErrInvalidStatus
	}
}

func (h Handler) ListRequestsHandler(
	ctx context.Context,
	status string,
) (httptransport.ListRequestsResponse, error) {
	requests, err := h.Queries.ListRequests(ctx, status)
	if err != nil {
		return httptransport.ListRequestsResponse{}, err
	}
	items := make([]httptransport.TranslationRequestResponse, 0, len(requests))
	for _, request := range requests {
		items = append(items, mapRequest(request))
	}
	return httptransport.ListRequestsResponse{Requests: items}, nil
}

func (h Handler) GetTermHandler(
	ctx context.Context,
	termID string,
) (httptransport.TermResponse, error) {
	term, err := h.Queries.GetTerm(ctx, termID)
	if err != nil {
		return httptransport.TermResponse{}, err
	}
	return mapTerm(term), nil
}

func (h Handler) ListTermsHandler(
	ctx context.Context,
	language string,
) (httptransport.ListTermsResponse, error) {
	terms, err := h.Queries.ListTerms(ctx, language)
	if err != nil {
		return httptransport.ListTermsResponse{}, err
	}
	items := make([]httptransport.TermResponse, 0, len(terms))
	for _, term := range terms {
		items = append(items, mapTerm(term))
	}
	return httptransport.ListTermsResponse{Terms: items}, nil
}

func mapRequest(request entities.TranslationRequest) httptransport.TranslationRequestResponse {
	return httptransport.TranslationRequestResponse{
		RequestID:    request.RequestID,
		Gloss:        request.Gloss,
		PartOfSpeech: request.PartOfSpeech,
		Language:     request.Language,
		RequesterID:  request.RequesterID,
		Status:       string(request.Status),
		ReviewerID:   request.ReviewerID,
		ReviewNote:   request.ReviewNote,
		ReviewedAt:   request.ReviewedAt,
		CreatedAt:    request.CreatedAt,
	}
}

func mapTerm(term entities.Term) httptransport.TermResponse {
	return httptransport.TermResponse{
		TermID:       term.TermID,
		Headword:     term.Headword,
		Language:     term.Language,
		PartOfSpeech: term.PartOfSpeech,
		Gloss:        term.Gloss,
	}
}
