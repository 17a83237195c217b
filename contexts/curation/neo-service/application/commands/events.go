package commands

import (
	"encoding/json"
	"time"

	"neolingo/contexts/curation/neo-service/ports"
)

func newCurationEnvelope(
	eventID string,
	eventType string,
	termID string,
	occurredAt time.Time,
	data map[string]any,
) (ports.EventEnvelope, error) {
	// Command-side events are partitioned by term for stable ordering on
	// term-scoped consumers.
	payload, err := json.Marshal(data)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:          eventID,
		EventType:        eventType,
		OccurredAt:       occurredAt.UTC(),
		SourceService:    "neo-service",
		TraceID:          eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "term_id",
		PartitionKey:     termID,
		Data:             payload,
	}, nil
}
