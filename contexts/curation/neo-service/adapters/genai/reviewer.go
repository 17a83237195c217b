package genaiadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"neolingo/contexts/curation/neo-service/ports"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Reviewer screens suggestion text with a Gemini classification call. The
// model is asked for a strict JSON verdict so the response parses without
// heuristics.
type Reviewer struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

func NewReviewer(ctx context.Context, apiKey string, model string, logger *slog.Logger) (*Reviewer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("genai api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Reviewer{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

type verdictPayload struct {
	Flagged bool   `json:"flagged"`
	Reason  string `json:"reason"`
}

func (r *Reviewer) ReviewNeo(ctx context.Context, input ports.ReviewInput) (ports.ReviewVerdict, error) {
	prompt := fmt.Sprintf(
		"You review candidate dictionary coinages for a community translation project.\n"+
			"Flag a suggestion only when it is obscene, hateful, spam, or plainly unrelated "+
			"to forming a word (e.g. a full sentence or URL).\n"+
			"Suggestion type: %s\nSuggestion text: %q\n"+
			"Answer with JSON only: {\"flagged\": bool, \"reason\": string}.",
		input.Type, input.Text,
	)

	resp, err := r.client.Models.GenerateContent(ctx,
		r.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return ports.ReviewVerdict{}, fmt.Errorf("genai review call: %w", err)
	}

	raw := strings.TrimSpace(resp.Text())
	var payload verdictPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		r.logger.Warn("unparseable review verdict",
			"event", "neo_review_verdict_unparseable",
			"module", "curation/neo-service",
			"layer", "adapter",
			"term_id", input.TermID,
			"error", err.Error(),
		)
		return ports.ReviewVerdict{}, fmt.Errorf("decode review verdict: %w", err)
	}
	return ports.ReviewVerdict{
		Flagged: payload.Flagged,
		Reason:  strings.TrimSpace(payload.Reason),
	}, nil
}

var _ ports.ContentReviewer = (*Reviewer)(nil)
