package unit

import (
	"context"
	"errors"
	"testing"

	"neolingo/contexts/curation/neo-service/application/workers"
	"neolingo/contexts/curation/neo-service/ports"
	httptransport "neolingo/contexts/curation/neo-service/transport/http"
)

type capturePublisher struct {
	published []ports.EventEnvelope
	fail      bool
}

func (p *capturePublisher) Publish(_ context.Context, _ string, event ports.EventEnvelope) error {
	if p.fail {
		return errors.New("publish failed")
	}
	p.published = append(p.published, event)
	return nil
}

func TestOutboxRelayPublishesAndAcksPending(t *testing.T) {
	module := newCurationModule(t)
	created := submitOne(t, module, "contributor-1", "coinage")
	if _, err := module.Handler.RateNeoHandler(context.Background(), created.NeoID, "user-a", httptransport.RateNeoRequest{Value: 1}); err != nil {
		t.Fatalf("rate failed: %v", err)
	}

	publisher := &capturePublisher{}
	relay := workers.OutboxRelay{
		Outbox:    module.Store,
		Publisher: publisher,
		Clock:     module.Store,
		BatchSize: 10,
	}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}
	if len(publisher.published) != 2 {
		t.Fatalf("expected two published events, got %d", len(publisher.published))
	}

	pending, err := module.Store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("published rows must be acknowledged, %d still pending", len(pending))
	}

	// A second cycle with nothing pending is a no-op.
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("idle relay run failed: %v", err)
	}
	if len(publisher.published) != 2 {
		t.Fatalf("idle cycle must publish nothing, got %d", len(publisher.published))
	}
}

func TestOutboxRelayKeepsRowsOnPublishFailure(t *testing.T) {
	module := newCurationModule(t)
	submitOne(t, module, "contributor-1", "coinage")

	relay := workers.OutboxRelay{
		Outbox:    module.Store,
		Publisher: &capturePublisher{fail: true},
		Clock:     module.Store,
		BatchSize: 10,
	}
	if err := relay.RunOnce(context.Background()); err == nil {
		t.Fatalf("expected relay to surface publish failure")
	}

	pending, err := module.Store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("failed publish must keep the row pending, got %d", len(pending))
	}
}
