package http

import (
	"net/http"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/invitation"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateInvitation handles POST /api/v1/invitations.
func (s *Server) CreateInvitation(ctx echo.Context) error {
	var body servers.CreateInvitationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orgID, err := toKernel(body.OrganizationId)
	if err != nil {
		return badRequest(ctx, "Invalid organization id")
	}
	invitedBy, err := toKernel(body.InvitedBy)
	if err != nil {
		return badRequest(ctx, "Invalid inviter id")
	}
	var mailroomID *kernel.UUID
	if body.MailroomId != nil {
		id, idErr := toKernel(*body.MailroomId)
		if idErr != nil {
			return badRequest(ctx, "Invalid mailroom id")
		}
		mailroomID = &id
	}
	role, err := invitation.ParseRole(string(body.Role))
	if err != nil {
		return s.fail(ctx, "create invitation", err)
	}

	cmd, err := commands.NewCreateInvitationCommand(kernel.NewUUID(), body.Email, role, orgID, mailroomID, invitedBy)
	if err != nil {
		return s.fail(ctx, "create invitation", err)
	}

	inv, err := s.h.CreateInvitation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "create invitation", err)
	}
	return ctx.JSON(http.StatusCreated, invitationResponse(inv))
}

// ResolveInvitation handles POST /api/v1/invitations/{invitationId}/resolve.
func (s *Server) ResolveInvitation(ctx echo.Context, invitationId servers.InvitationId) error {
	id, err := toKernel(invitationId)
	if err != nil {
		return badRequest(ctx, "Invalid invitation id")
	}

	cmd, err := commands.NewResolveInvitationCommand(id)
	if err != nil {
		return s.fail(ctx, "resolve invitation", err)
	}

	inv, err := s.h.ResolveInvitation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "resolve invitation", err)
	}
	return ctx.JSON(http.StatusOK, invitationResponse(inv))
}

// CancelInvitation handles DELETE /api/v1/invitations/{invitationId}.
func (s *Server) CancelInvitation(ctx echo.Context, invitationId servers.InvitationId) error {
	id, err := toKernel(invitationId)
	if err != nil {
		return badRequest(ctx, "Invalid invitation id")
	}

	cmd, err := commands.NewCancelInvitationCommand(id)
	if err != nil {
		return s.fail(ctx, "cancel invitation", err)
	}
	if err = s.h.CancelInvitation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "cancel invitation", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
