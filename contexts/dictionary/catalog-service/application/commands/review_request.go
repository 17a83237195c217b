package commands

import (
	"context"
	"log/slog"
	"strings"

	application "neolingo/contexts/dictionary/catalog-service/application"
	"neolingo/contexts/dictionary/catalog-service/domain/entities"
	domainerrors "neolingo/contexts/dictionary/catalog-service/domain/errors"
	"neolingo/contexts/dictionary/catalog-service/ports"
)

type ApproveRequestCommand struct {
	RequestID  string
	ReviewerID string
	Headword   string
	Note       string
}

type RejectRequestCommand struct {
	RequestID  string
	ReviewerID string
	Note       string
}

type ReviewRequestUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

// Approve publishes a Term from the request. The status flip and the Term
// insert are one repository transaction; a request someone else already
// reviewed fails with ErrAlreadyReviewed and publishes nothing.
func (uc ReviewRequestUseCase) Approve(
	ctx context.Context,
	cmd ApproveRequestCommand,
) (entities.Term, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.ReviewerID) == "" {
		return entities.Term{}, domainerrors.ErrInvalidReviewer
	}
	request, err := uc.Repository.GetRequest(ctx, strings.TrimSpace(cmd.RequestID))
	if err != nil {
		return entities.Term{}, err
	}
	if request.Status != entities.RequestStatusPending {
		return entities.Term{}, domainerrors.ErrAlreadyReviewed
	}

	now := uc.Clock.Now().UTC()
	request.Status = entities.RequestStatusApproved
	request.ReviewerID = strings.TrimSpace(cmd.ReviewerID)
	request.ReviewNote = strings.TrimSpace(cmd.Note)
	request.ReviewedAt = &now
	request.UpdatedAt = now

	termID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Term{}, err
	}
	headword := strings.TrimSpace(cmd.Headword)
	if headword == "" {
		headword = request.Gloss
	}
	term := entities.Term{
		TermID:       termID,
		Headword:     headword,
		Language:     request.Language,
		PartOfSpeech: request.PartOfSpeech,
		Gloss:        request.Gloss,
		RequestID:    request.RequestID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.Repository.ApproveRequest(ctx, request, term); err != nil {
		return entities.Term{}, err
	}

	logger.Info("translation request approved",
		"event", "translation_request_approved",
		"module", "dictionary/catalog-service",
		"layer", "application",
		"request_id", request.RequestID,
		"term_id", term.TermID,
	)
	return term, nil
}

func (uc ReviewRequestUseCase) Reject(ctx context.Context, cmd RejectRequestCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.ReviewerID) == "" {
		return domainerrors.ErrInvalidReviewer
	}
	request, err := uc.Repository.GetRequest(ctx, strings.TrimSpace(cmd.RequestID))
	if err != nil {
		return err
	}
	if request.Status != entities.RequestStatusPending {
		return domainerrors.ErrAlreadyReviewed
	}

	now := uc.Clock.Now().UTC()
	request.Status = entities.RequestStatusRejected
	request.ReviewerID = strings.TrimSpace(cmd.ReviewerID)
	request.ReviewNote = strings.TrimSpace(cmd.Note)
	request.ReviewedAt = &now
	request.UpdatedAt = now
	if err := uc.Repository.RejectRequest(ctx, request); err != nil {
		return err
	}

	logger.Info("translation request rejected",
		"event", "translation_request_rejected",
		"module", "dictionary/catalog-service",
		"layer", "application",
		"request_id", request.RequestID,
	)
	return nil
}
