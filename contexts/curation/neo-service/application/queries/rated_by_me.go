package queries

import (
	"context"
	"log/slog"
	"strings"

	application "neolingo/contexts/curation/neo-service/application"
	"neolingo/contexts/curation/neo-service/domain/entities"
	domainerrors "neolingo/contexts/curation/neo-service/domain/errors"
	"neolingo/contexts/curation/neo-service/ports"
)

// RatedByMeUseCase returns every rating the user has cast, optionally scoped
// to a set of Neos. Failures surface on the error channel; an empty result
// always means "no ratings", never "query failed".
type RatedByMeUseCase struct {
	Neos   ports.NeoRepository
	Logger *slog.Logger
}

func (uc RatedByMeUseCase) Execute(
	ctx context.Context,
	userID string,
	neoIDs []string,
) ([]entities.RatedNeo, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domainerrors.ErrInvalidRating
	}
	ratings, err := uc.Neos.ListRatingsByUser(ctx, userID, neoIDs)
	if err != nil {
		logger := application.ResolveLogger(uc.Logger)
		logger.Error("rated-by-me lookup failed",
			"event", "neo_rated_by_me_failed",
			"module", "curation/neo-service",
			"layer", "application",
			"user_id", userID,
			"error", err.Error(),
		)
		return nil, err
	}
	items := make([]entities.RatedNeo, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, entities.RatedNeo{
			NeoID: rating.NeoID,
			Value: rating.Value,
		})
	}
	return items, nil
}
