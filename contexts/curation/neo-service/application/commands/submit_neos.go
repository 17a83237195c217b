package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "neolingo/contexts/curation/neo-service/application"
	"neolingo/contexts/curation/neo-service/domain/entities"
	domainerrors "neolingo/contexts/curation/neo-service/domain/errors"
	"neolingo/contexts/curation/neo-service/ports"
)

// MaxSuggestionBatch caps how many Neos one submission may carry.
const MaxSuggestionBatch = 5

// NeoSuggestion is one proposed coinage inside a submission batch.
type NeoSuggestion struct {
	Text     string
	Type     string
	AudioURL string
}

// SubmitNeosCommand is the write-model input for contributor submissions.
type SubmitNeosCommand struct {
	ContributorID string
	TermID        string
	Suggestions   []NeoSuggestion
}

// SubmitNeosUseCase validates, screens and persists a suggestion batch.
type SubmitNeosUseCase struct {
	Neos     ports.NeoRepository
	Terms    ports.TermCatalog
	Reviewer ports.ContentReviewer
	Outbox   ports.OutboxWriter
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc SubmitNeosUseCase) Execute(ctx context.Context, cmd SubmitNeosCommand) ([]entities.Neo, error) {
	logger := application.ResolveLogger(uc.Logger)
	contributorID := strings.TrimSpace(cmd.ContributorID)
	termID := strings.TrimSpace(cmd.TermID)
	if contributorID == "" || termID == "" || len(cmd.Suggestions) == 0 {
		return nil, domainerrors.ErrInvalidNeoInput
	}
	if len(cmd.Suggestions) > MaxSuggestionBatch {
		logger.Warn("suggestion batch over limit",
			"event", "neo_submit_batch_limit",
			"module", "curation/neo-service",
			"layer", "application",
			"contributor_id", contributorID,
			"term_id", termID,
			"batch_size", len(cmd.Suggestions),
		)
		return nil, domainerrors.ErrBatchLimitExceeded
	}

	exists, err := uc.Terms.TermExists(ctx, termID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainerrors.ErrTermNotFound
	}

	now := uc.now()
	neos := make([]entities.Neo, 0, len(cmd.Suggestions))
	for _, suggestion := range cmd.Suggestions {
		text := strings.TrimSpace(suggestion.Text)
		if text == "" {
			return nil, domainerrors.ErrInvalidNeoInput
		}
		neoType, ok := entities.ParseNeoType(suggestion.Type)
		if !ok {
			return nil, domainerrors.ErrInvalidNeoInput
		}
		if err := uc.review(ctx, termID, text, neoType); err != nil {
			return nil, err
		}

		neoID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return nil, err
		}
		neos = append(neos, entities.Neo{
			NeoID:         neoID,
			TermID:        termID,
			ContributorID: contributorID,
			Text:          text,
			Type:          neoType,
			AudioURL:      strings.TrimSpace(suggestion.AudioURL),
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	if err := uc.Neos.CreateNeos(ctx, neos); err != nil {
		return nil, err
	}
	for _, neo := range neos {
		if err := uc.appendNeoCreated(ctx, neo, now); err != nil {
			return nil, err
		}
	}

	logger.Info("suggestion batch accepted",
		"event", "neo_submit_accepted",
		"module", "curation/neo-service",
		"layer", "application",
		"contributor_id", contributorID,
		"term_id", termID,
		"batch_size", len(neos),
	)
	return neos, nil
}

// review screens one suggestion. Reviewer outages fail open: moderation is
// advisory and must not block contributors.
func (uc SubmitNeosUseCase) review(ctx context.Context, termID string, text string, neoType entities.NeoType) error {
	if uc.Reviewer == nil {
		return nil
	}
	logger := application.ResolveLogger(uc.Logger)
	verdict, err := uc.Reviewer.ReviewNeo(ctx, ports.ReviewInput{
		TermID: termID,
		Text:   text,
		Type:   neoType,
	})
	if err != nil {
		logger.Warn("content review unavailable, accepting suggestion",
			"event", "neo_review_unavailable",
			"module", "curation/neo-service",
			"layer", "application",
			"term_id", termID,
			"error", err.Error(),
		)
		return nil
	}
	if verdict.Flagged {
		logger.Warn("suggestion flagged by content review",
			"event", "neo_review_flagged",
			"module", "curation/neo-service",
			"layer", "application",
			"term_id", termID,
			"reason", verdict.Reason,
		)
		return fmt.Errorf("%w: %s", domainerrors.ErrContentRejected, verdict.Reason)
	}
	return nil
}

func (uc SubmitNeosUseCase) appendNeoCreated(ctx context.Context, neo entities.Neo, occurredAt time.Time) error {
	// Outbox is optional for pure read/test wiring, so nil is treated as no-op.
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newCurationEnvelope(eventID, "neo.created", neo.TermID, occurredAt, map[string]any{
		"neo_id":         neo.NeoID,
		"term_id":        neo.TermID,
		"contributor_id": neo.ContributorID,
		"neo_type":       string(neo.Type),
		"occurred_at":    occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

func (uc SubmitNeosUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
