package queries

import (
	"context"
	"log/slog"
	"strings"

	application "neolingo/contexts/curation/neo-service/application"
	"neolingo/contexts/curation/neo-service/domain/entities"
	domainerrors "neolingo/contexts/curation/neo-service/domain/errors"
	"neolingo/contexts/curation/neo-service/domain/services"
	"neolingo/contexts/curation/neo-service/ports"
)

// TermNeosQuery selects the ranked candidate list for one term.
// WantRated switches between the juror-facing rated listing and the
// voter-facing unrated listing. UserID, when set, excludes Neos the caller
// has already cast a non-zero vote on.
type TermNeosQuery struct {
	TermID    string
	WantRated bool
	UserID    string
}

type TermNeosUseCase struct {
	Neos   ports.NeoRepository
	Logger *slog.Logger
}

func (uc TermNeosUseCase) Execute(ctx context.Context, query TermNeosQuery) ([]entities.RankedNeo, error) {
	termID := strings.TrimSpace(query.TermID)
	if termID == "" {
		return nil, domainerrors.ErrInvalidNeoInput
	}
	logger := application.ResolveLogger(uc.Logger)

	neos, err := uc.Neos.ListNeosByTerm(ctx, termID)
	if err != nil {
		return nil, uc.logQueryError(logger, "neo_term_listing_failed", termID, err)
	}
	ratings, err := uc.Neos.ListRatingsByTerm(ctx, termID)
	if err != nil {
		return nil, uc.logQueryError(logger, "neo_term_ratings_failed", termID, err)
	}

	var callerRatings []entities.NeoRating
	if userID := strings.TrimSpace(query.UserID); userID != "" {
		neoIDs := make([]string, 0, len(neos))
		for _, neo := range neos {
			neoIDs = append(neoIDs, neo.NeoID)
		}
		callerRatings, err = uc.Neos.ListRatingsByUser(ctx, userID, neoIDs)
		if err != nil {
			return nil, uc.logQueryError(logger, "neo_caller_ratings_failed", termID, err)
		}
	}

	rated := make([]entities.RatedNeo, 0, len(callerRatings))
	for _, rating := range callerRatings {
		rated = append(rated, entities.RatedNeo{
			NeoID: rating.NeoID,
			Value: rating.Value,
		})
	}

	return services.RankTermNeos(neos, ratings, rated, query.WantRated), nil
}

func (uc TermNeosUseCase) logQueryError(logger *slog.Logger, event string, termID string, err error) error {
	logger.Error("term neo selection failed",
		"event", event,
		"module", "curation/neo-service",
		"layer", "application",
		"term_id", termID,
		"error", err.Error(),
	)
	return err
}
