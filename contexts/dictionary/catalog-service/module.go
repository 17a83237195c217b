package catalogservice

import (
	"log/slog"

	httpadapter "neolingo/contexts/dictionary/catalog-service/adapters/http"
	"neolingo/contexts/dictionary/catalog-service/adapters/memory"
	"neolingo/contexts/dictionary/catalog-service/application/commands"
	"neolingo/contexts/dictionary/catalog-service/application/queries"
	"neolingo/contexts/dictionary/catalog-service/domain/entities"
	"neolingo/contexts/dictionary/catalog-service/ports"
)

// Module is the catalog-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	submit := commands.SubmitRequestUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	review := commands.ReviewRequestUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	catalogQueries := queries.CatalogQueries{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Submit:  submit,
			Review:  review,
			Queries: catalogQueries,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters, seeded with published terms.
func NewInMemoryModule(seed []entities.Term, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
