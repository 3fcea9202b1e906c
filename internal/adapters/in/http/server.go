// Package http exposes the mailroom use cases over the generated OpenAPI
// server interface.
package http

import (
	"log/slog"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/generated/servers"
)

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	CreateMailroom         commands.CreateMailroomCommandHandler
	UpdateMailroomSettings commands.UpdateMailroomSettingsCommandHandler
	RetireMailroom         commands.RetireMailroomCommandHandler
	AllocatePackageNumber  commands.AllocatePackageNumberCommandHandler
	ReleasePackageNumber   commands.ReleasePackageNumberCommandHandler
	RegisterPackage        commands.RegisterPackageCommandHandler
	TransitionPackage      commands.TransitionPackageCommandHandler
	AddResident            commands.AddResidentCommandHandler
	RemoveResident         commands.RemoveResidentCommandHandler
	SyncRoster             commands.SyncRosterCommandHandler
	CreateInvitation       commands.CreateInvitationCommandHandler
	ResolveInvitation      commands.ResolveInvitationCommandHandler
	CancelInvitation       commands.CancelInvitationCommandHandler

	GetMailroomBySlug          queries.GetMailroomBySlugQueryHandler
	GetPackages                queries.GetPackagesQueryHandler
	GetResidentWaitingPackages queries.GetResidentWaitingPackagesQueryHandler
	SearchResidents            queries.SearchResidentsQueryHandler
	GetPoolUsage               queries.GetPoolUsageQueryHandler
}

// Server implements servers.ServerInterface.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}

var _ servers.ServerInterface = (*Server)(nil)
