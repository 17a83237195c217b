package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "neolingo/contexts/curation/neo-service/application"
	"neolingo/contexts/curation/neo-service/ports"
)

// OutboxRelay publishes persisted outbox records to the event bus.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

// RunOnce publishes a bounded batch of pending outbox rows and marks each row
// published only after publish succeeds. It stops on the first failure so the
// retry loop can reprocess remaining rows safely.
func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("curation outbox list failed",
			"event", "neo_outbox_list_failed",
			"module", "curation/neo-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if len(pending) == 0 {
		logger.Debug("curation outbox relay found no pending rows",
			"event", "neo_outbox_relay_noop",
			"module", "curation/neo-service",
			"layer", "worker",
			"batch_size", limit,
		)
		return nil
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		var event ports.EventEnvelope
		if err := json.Unmarshal(row.Payload, &event); err != nil {
			logger.Error("curation outbox decode failed",
				"event", "neo_outbox_decode_failed",
				"module", "curation/neo-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
		topic := event.EventType
		if topic == "" {
			topic = row.EventType
		}
		if err := r.Publisher.Publish(ctx, topic, event); err != nil {
			logger.Error("curation outbox publish failed",
				"event", "neo_outbox_publish_failed",
				"module", "curation/neo-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"event_id", event.EventID,
				"event_type", event.EventType,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.OutboxID, now); err != nil {
			logger.Error("curation outbox mark published failed",
				"event", "neo_outbox_mark_published_failed",
				"module", "curation/neo-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
	}

	logger.Info("curation outbox relay cycle completed",
		"event", "neo_outbox_relay_completed",
		"module", "curation/neo-service",
		"layer", "worker",
		"published_count", len(pending),
	)
	return nil
}
