package neoservice

import (
	"log/slog"

	httpadapter "neolingo/contexts/curation/neo-service/adapters/http"
	"neolingo/contexts/curation/neo-service/adapters/memory"
	"neolingo/contexts/curation/neo-service/application/commands"
	"neolingo/contexts/curation/neo-service/application/queries"
	"neolingo/contexts/curation/neo-service/domain/entities"
	"neolingo/contexts/curation/neo-service/ports"
)

// Module is the neo-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
// Reviewer and Outbox are optional; nil disables content review and event
// emission respectively.
type Dependencies struct {
	Neos     ports.NeoRepository
	Terms    ports.TermCatalog
	Reviewer ports.ContentReviewer
	Outbox   ports.OutboxWriter
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	submit := commands.SubmitNeosUseCase{
		Neos:     deps.Neos,
		Terms:    deps.Terms,
		Reviewer: deps.Reviewer,
		Outbox:   deps.Outbox,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	rate := commands.RateNeoUseCase{
		Neos:   deps.Neos,
		Outbox: deps.Outbox,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	termNeos := queries.TermNeosUseCase{
		Neos:   deps.Neos,
		Logger: deps.Logger,
	}
	ratedByMe := queries.RatedByMeUseCase{
		Neos:   deps.Neos,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Submit:    submit,
			Rate:      rate,
			TermNeos:  termNeos,
			RatedByMe: ratedByMe,
			Logger:    deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters and no content reviewer.
func NewInMemoryModule(seed []entities.Neo, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Neos:   store,
		Terms:  store,
		Outbox: store,
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
