package http

import (
	"net/http"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateMailroom handles POST /api/v1/mailrooms.
func (s *Server) CreateMailroom(ctx echo.Context) error {
	var body servers.CreateMailroomJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orgID, err := toKernel(body.OrganizationId)
	if err != nil {
		return badRequest(ctx, "Invalid organization id")
	}
	settings, err := settingsFromRequest(body.Settings)
	if err != nil {
		return s.fail(ctx, "create mailroom", err)
	}

	cmd, err := commands.NewCreateMailroomCommand(kernel.NewUUID(), orgID, body.Slug, body.Name,
		deref(body.PoolSize), settings)
	if err != nil {
		return s.fail(ctx, "create mailroom", err)
	}

	m, err := s.h.CreateMailroom.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "create mailroom", err)
	}
	return ctx.JSON(http.StatusCreated, mailroomResponse(m))
}

// GetMailroomBySlug handles GET /api/v1/organizations/{orgId}/mailrooms/{slug}.
func (s *Server) GetMailroomBySlug(ctx echo.Context, orgId openapi_types.UUID, slug string) error {
	orgID, err := toKernel(orgId)
	if err != nil {
		return badRequest(ctx, "Invalid organization id")
	}

	query, err := queries.NewGetMailroomBySlugQuery(orgID, slug)
	if err != nil {
		return s.fail(ctx, "get mailroom", err)
	}

	view, err := s.h.GetMailroomBySlug.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "get mailroom", err)
	}
	return ctx.JSON(http.StatusOK, mailroomViewResponse(view))
}

// UpdateMailroomSettings handles PATCH /api/v1/mailrooms/{mailroomId}/settings.
func (s *Server) UpdateMailroomSettings(ctx echo.Context, mailroomId servers.MailroomId) error {
	var body servers.UpdateMailroomSettingsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}
	settings, err := settingsFromRequest(body)
	if err != nil {
		return s.fail(ctx, "update settings", err)
	}

	cmd, err := commands.NewUpdateMailroomSettingsCommand(id, settings)
	if err != nil {
		return s.fail(ctx, "update settings", err)
	}

	m, err := s.h.UpdateMailroomSettings.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "update settings", err)
	}
	return ctx.JSON(http.StatusOK, mailroomResponse(m))
}

// RetireMailroom handles POST /api/v1/mailrooms/{mailroomId}/retire.
func (s *Server) RetireMailroom(ctx echo.Context, mailroomId servers.MailroomId) error {
	id, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}

	cmd, err := commands.NewRetireMailroomCommand(id)
	if err != nil {
		return s.fail(ctx, "retire mailroom", err)
	}

	m, err := s.h.RetireMailroom.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "retire mailroom", err)
	}
	return ctx.JSON(http.StatusOK, mailroomResponse(m))
}

// AllocatePackageNumber handles POST /api/v1/mailrooms/{mailroomId}/package-numbers.
func (s *Server) AllocatePackageNumber(ctx echo.Context, mailroomId servers.MailroomId) error {
	id, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}

	cmd, err := commands.NewAllocatePackageNumberCommand(id)
	if err != nil {
		return s.fail(ctx, "allocate", err)
	}

	number, err := s.h.AllocatePackageNumber.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "allocate", err)
	}
	return ctx.JSON(http.StatusCreated, servers.PackageNumber{PackageNumber: number.Int()})
}

// ReleasePackageNumber handles DELETE /api/v1/mailrooms/{mailroomId}/package-numbers/{packageNumber}.
func (s *Server) ReleasePackageNumber(ctx echo.Context, mailroomId servers.MailroomId, packageNumber int) error {
	id, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}

	cmd, err := commands.NewReleasePackageNumberCommand(id, packageNumber)
	if err != nil {
		return s.fail(ctx, "release", err)
	}

	released, err := s.h.ReleasePackageNumber.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "release", err)
	}
	return ctx.JSON(http.StatusOK, servers.ReleaseResult{Released: released})
}

// GetPoolUsage handles GET /api/v1/mailrooms/{mailroomId}/package-numbers/usage.
func (s *Server) GetPoolUsage(ctx echo.Context, mailroomId servers.MailroomId) error {
	id, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}

	query, err := queries.NewGetPoolUsageQuery(id)
	if err != nil {
		return s.fail(ctx, "pool usage", err)
	}

	usage, err := s.h.GetPoolUsage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "pool usage", err)
	}
	return ctx.JSON(http.StatusOK, servers.PoolUsage{
		Total:     usage.Total,
		Available: usage.Available,
		InUse:     usage.InUse,
		Waiting:   usage.Waiting,
	})
}
