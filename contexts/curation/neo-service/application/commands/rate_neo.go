package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "neolingo/contexts/curation/neo-service/application"
	"neolingo/contexts/curation/neo-service/domain/entities"
	domainerrors "neolingo/contexts/curation/neo-service/domain/errors"
	"neolingo/contexts/curation/neo-service/ports"
)

// RateNeoCommand is the write-model input for rating a Neo. Value 0 is a
// valid neutral vote; a non-nil RejectionReason marks the vote as a reject.
type RateNeoCommand struct {
	NeoID           string
	UserID          string
	Value           int
	RejectionReason *string
}

// RateNeoResult carries the Neo with its recomputed aggregate plus the
// caller's full rated set, re-queried after the write.
type RateNeoResult struct {
	Neo       entities.Neo
	RatedNeos []entities.RatedNeo
}

// RateNeoUseCase orchestrates the upsert-then-recompute rating flow. The
// storage adapter runs the whole sequence in one transaction so concurrent
// raters of the same Neo never observe a partial aggregate.
type RateNeoUseCase struct {
	Neos   ports.NeoRepository
	Outbox ports.OutboxWriter
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (uc RateNeoUseCase) Execute(ctx context.Context, cmd RateNeoCommand) (RateNeoResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	neoID := strings.TrimSpace(cmd.NeoID)
	userID := strings.TrimSpace(cmd.UserID)
	if neoID == "" || userID == "" {
		logger.Warn("rate neo validation failed",
			"event", "neo_rate_validation_failed",
			"module", "curation/neo-service",
			"layer", "application",
			"neo_id", neoID,
			"user_id", userID,
		)
		return RateNeoResult{}, domainerrors.ErrInvalidRating
	}

	now := uc.now()
	rating := entities.NeoRating{
		NeoID:     neoID,
		UserID:    userID,
		Value:     cmd.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if cmd.RejectionReason != nil {
		reason := strings.TrimSpace(*cmd.RejectionReason)
		if reason != "" {
			rating.RejectionReason = &reason
		}
	}

	neo, err := uc.Neos.ApplyRating(ctx, rating)
	if err != nil {
		logger.Error("rate neo failed",
			"event", "neo_rate_failed",
			"module", "curation/neo-service",
			"layer", "application",
			"neo_id", neoID,
			"user_id", userID,
			"error", err.Error(),
		)
		return RateNeoResult{}, err
	}

	ratedNeos, err := ratedByUser(ctx, uc.Neos, userID, nil)
	if err != nil {
		return RateNeoResult{}, err
	}

	if err := uc.appendNeoRated(ctx, neo, rating, now); err != nil {
		return RateNeoResult{}, err
	}

	logger.Info("neo rated",
		"event", "neo_rated",
		"module", "curation/neo-service",
		"layer", "application",
		"neo_id", neo.NeoID,
		"term_id", neo.TermID,
		"user_id", userID,
		"value", cmd.Value,
		"rejected", rating.IsReject(),
		"rating_count", neo.RatingCount,
		"rating_score", neo.RatingScore,
		"reject_count", neo.RejectCount,
	)
	return RateNeoResult{
		Neo:       neo,
		RatedNeos: ratedNeos,
	}, nil
}

func (uc RateNeoUseCase) appendNeoRated(
	ctx context.Context,
	neo entities.Neo,
	rating entities.NeoRating,
	occurredAt time.Time,
) error {
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newCurationEnvelope(eventID, "neo.rated", neo.TermID, occurredAt, map[string]any{
		"neo_id":       neo.NeoID,
		"term_id":      neo.TermID,
		"user_id":      rating.UserID,
		"value":        rating.Value,
		"rejected":     rating.IsReject(),
		"rating_count": neo.RatingCount,
		"rating_score": neo.RatingScore,
		"reject_count": neo.RejectCount,
		"occurred_at":  occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

func (uc RateNeoUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

// ratedByUser is shared with the rated-by-me query so both paths return the
// same shape.
func ratedByUser(
	ctx context.Context,
	repo ports.NeoRepository,
	userID string,
	neoIDs []string,
) ([]entities.RatedNeo, error) {
	ratings, err := repo.ListRatingsByUser(ctx, userID, neoIDs)
	if err != nil {
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
