package authorization

import (
	"log/slog"

	httpadapter "neolingo/contexts/identity-access/authorization-service/adapters/http"
	"neolingo/contexts/identity-access/authorization-service/adapters/memory"
	"neolingo/contexts/identity-access/authorization-service/application/commands"
	"neolingo/contexts/identity-access/authorization-service/application/queries"
	"neolingo/contexts/identity-access/authorization-service/ports"
)

// Module is the authorization-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Roles  ports.RoleRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	require := queries.RequirePermissionUseCase{
		Roles:  deps.Roles,
		Logger: deps.Logger,
	}
	userRole := queries.UserRoleUseCase{
		Roles:  deps.Roles,
		Logger: deps.Logger,
	}
	assignRole := commands.AssignRoleUseCase{
		Roles:  deps.Roles,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Require:    require,
			UserRole:   userRole,
			AssignRole: assignRole,
			Logger:     deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Roles:  store,
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
