package http

import (
	"net/http"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/resident"
	"mailroom/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// SearchResidents handles GET /api/v1/mailrooms/{mailroomId}/residents.
func (s *Server) SearchResidents(
	ctx echo.Context,
	mailroomId servers.MailroomId,
	params servers.SearchResidentsParams,
) error {
	id, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}

	query, err := queries.NewSearchResidentsQuery(id, deref(params.Q), deref(params.Limit))
	if err != nil {
		return s.fail(ctx, "search residents", err)
	}

	views, err := s.h.SearchResidents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "search residents", err)
	}
	return ctx.JSON(http.StatusOK, residentViewsResponse(views))
}

// AddResident handles POST /api/v1/mailrooms/{mailroomId}/residents.
func (s *Server) AddResident(ctx echo.Context, mailroomId servers.MailroomId) error {
	var body servers.AddResidentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}

	cmd, err := commands.NewAddResidentCommand(kernel.NewUUID(), id, profileFromRequest(body))
	if err != nil {
		return s.fail(ctx, "add resident", err)
	}

	r, err := s.h.AddResident.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "add resident", err)
	}
	return ctx.JSON(http.StatusCreated, residentResponse(r))
}

// RemoveResident handles DELETE /api/v1/mailrooms/{mailroomId}/residents/{residentId}.
func (s *Server) RemoveResident(ctx echo.Context, mailroomId servers.MailroomId, residentId servers.ResidentId) error {
	mailroomID, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}
	residentID, err := toKernel(residentId)
	if err != nil {
		return badRequest(ctx, "Invalid resident id")
	}

	cmd, err := commands.NewRemoveResidentCommand(mailroomID, residentID)
	if err != nil {
		return s.fail(ctx, "remove resident", err)
	}
	if err = s.h.RemoveResident.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "remove resident", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetResidentWaitingPackages handles GET /api/v1/mailrooms/{mailroomId}/residents/{residentId}/packages.
func (s *Server) GetResidentWaitingPackages(
	ctx echo.Context,
	mailroomId servers.MailroomId,
	residentId servers.ResidentId,
) error {
	mailroomID, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}
	residentID, err := toKernel(residentId)
	if err != nil {
		return badRequest(ctx, "Invalid resident id")
	}

	query, err := queries.NewGetResidentWaitingPackagesQuery(mailroomID, residentID)
	if err != nil {
		return s.fail(ctx, "waiting packages", err)
	}

	views, err := s.h.GetResidentWaitingPackages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "waiting packages", err)
	}
	return ctx.JSON(http.StatusOK, packageViewsResponse(views))
}

// SyncRoster handles PUT /api/v1/mailrooms/{mailroomId}/roster.
func (s *Server) SyncRoster(ctx echo.Context, mailroomId servers.MailroomId) error {
	var body servers.SyncRosterJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}

	rows := make([]resident.Profile, 0, len(body.Residents))
	for _, r := range body.Residents {
		rows = append(rows, profileFromRequest(r))
	}

	cmd, err := commands.NewSyncRosterCommand(id, rows)
	if err != nil {
		return s.fail(ctx, "sync roster", err)
	}

	result, err := s.h.SyncRoster.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "sync roster", err)
	}
	return ctx.JSON(http.StatusOK, servers.RosterSyncResult{
		Added:       result.Added,
		Updated:     result.Updated,
		Reactivated: result.Reactivated,
		Removed:     result.Removed,
		Unchanged:   result.Unchanged,
	})
}
