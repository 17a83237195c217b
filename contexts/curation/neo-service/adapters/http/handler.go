package httpadapter

import (
	"context"
	"log/slog"

	"neolingo/contexts/curation/neo-service/application/commands"
	"neolingo/contexts/curation/neo-service/application/queries"
	"neolingo/contexts/curation/neo-service/domain/entities"
	httptransport "neolingo/contexts/curation/neo-service/transport/http"
)

type Handler struct {
	Submit    commands.SubmitNeosUseCase
	Rate      commands.RateNeoUseCase
	TermNeos  queries.TermNeosUseCase
	RatedByMe queries.RatedByMeUseCase
	Logger    *slog.Logger
}

func (h Handler) SubmitNeosHandler(
	ctx context.Context,
	contributorID string,
	req httptransport.SubmitNeosRequest,
) (httptransport.SubmitNeosResponse, error) {
	suggestions := make([]commands.NeoSuggestion, 0, len(req.Suggestions))
	for _, suggestion := range req.Suggestions {
		suggestions = append(suggestions, commands.NeoSuggestion{
			Text:     suggestion.Text,
			Type:     suggestion.Type,
			AudioURL: suggestion.AudioURL,
		})
	}
	neos, err := h.Submit.Execute(ctx, commands.SubmitNeosCommand{
		ContributorID: contributorID,
		TermID:        req.TermID,
		Suggestions:   suggestions,
	})
	if err != nil {
		return httptransport.SubmitNeosResponse{}, err
	}
	items := make([]httptransport.NeoResponse, 0, len(neos))
	for _, neo := range neos {
		items = append(items, mapNeo(neo))
	}
	return httptransport.SubmitNeosResponse{Neos: items}, nil
}

// RateNeoHandler wraps the rating command in the success/message/data
// envelope the UI contract expects; domain errors never cross this boundary
// as exceptions.
func (h Handler) RateNeoHandler(
	ctx context.Context,
	neoID string,
	userID string,
	req httptransport.RateNeoRequest,
) (httptransport.RateNeoResponse, error) {
	result, err := h.Rate.Execute(ctx, commands.RateNeoCommand{
		NeoID:           neoID,
		UserID:          userID,
		Value:           req.Value,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return httptransport.RateNeoResponse{}, err
	}
	neo := mapNeo(result.Neo)
	return httptransport.RateNeoResponse{
		Success: true,
		Message: "rating recorded",
		Neo:     &neo,
		Data:    mapRated(result.RatedNeos),
	}, nil
}

func (h Handler) TermNeosHandler(
	ctx context.Context,
	termID string,
	wantRated bool,
	userID string,
) (httptransport.TermNeosResponse, error) {
	ranked, err := h.TermNeos.Execute(ctx, queries.TermNeosQuery{
		TermID:    termID,
		WantRated: wantRated,
		UserID:    userID,
	})
	if err != nil {
		return httptransport.TermNeosResponse{}, err
	}
	items := make([]httptransport.RankedNeoItem, 0, len(ranked))
	for _, entry := range ranked {
		items = append(items, httptransport.RankedNeoItem{
			NeoResponse: mapNeo(entry.Neo),
			Vote:        entry.VoteTotal,
		})
	}
	return httptransport.TermNeosResponse{
		TermID: termID,
		Items:  items,
	}, nil
}

func (h Handler) RatedByMeHandler(
	ctx context.Context,
	userID string,
	neoIDs []string,
) (httptransport.RatedByMeResponse, error) {
	rated, err := h.RatedByMe.Execute(ctx, userID, neoIDs)
	if err != nil {
		return httptransport.RatedByMeResponse{}, err
	}
	return httptransport.RatedByMeResponse{Items: mapRated(rated)}, nil
}

func mapNeo(neo entities.Neo) httptransport.NeoResponse {
	return httptransport.NeoResponse{
		NeoID:         neo.NeoID,
		TermID:        neo.TermID,
		ContributorID: neo.ContributorID,
		Text:          neo.Text,
		Type:          string(neo.Type),
		AudioURL:      neo.AudioURL,
		RatingCount:   neo.RatingCount,
		RatingScore:   neo.RatingScore,
		RejectCount:   neo.RejectCount,
	}
}

func mapRated(rated []entities.RatedNeo) []httptransport.RatedNeoItem {
	items := make([]httptransport.RatedNeoItem, 0, len(rated))
	for _, entry := range rated {
		items = append(items, httptransport.RatedNeoItem{
			NeoID: entry.NeoID,
			Value: entry.Value,
		})
	}
	return items
}
