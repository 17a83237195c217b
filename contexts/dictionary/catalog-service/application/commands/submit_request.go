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

type SubmitRequestCommand struct {
	RequesterID  string
	Gloss        string
	PartOfSpeech string
	Language     string
}

type SubmitRequestUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc SubmitRequestUseCase) Execute(
	ctx context.Context,
	cmd SubmitRequestCommand,
) (entities.TranslationRequest, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()
	request := entities.TranslationRequest{
		Gloss:        strings.TrimSpace(cmd.Gloss),
		PartOfSpeech: strings.TrimSpace(cmd.PartOfSpeech),
		Language:     strings.TrimSpace(cmd.Language),
		RequesterID:  strings.TrimSpace(cmd.RequesterID),
		Status:       entities.RequestStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if !request.ValidateCreate() {
		return entities.TranslationRequest{}, domainerrors.ErrInvalidRequestInput
	}

	requestID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.TranslationRequest{}, err
	}
	request.RequestID = requestID
	if err := uc.Repository.CreateRequest(ctx, request); err != nil {
		return entities.TranslationRequest{}, err
	}

	logger.Info("translation request submitted",
		"event", "translation_request_submitted",
		"module", "dictionary/catalog-service",
		"layer", "application",
		"request_id", request.RequestID,
		"language", request.Language,
	)
	return request, nil
}
