package http

import (
	"net/http"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// RegisterPackage handles POST /api/v1/mailrooms/{mailroomId}/packages.
func (s *Server) RegisterPackage(ctx echo.Context, mailroomId servers.MailroomId) error {
	var body servers.RegisterPackageJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	mailroomID, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}
	residentID, err := toKernel(body.ResidentId)
	if err != nil {
		return badRequest(ctx, "Invalid resident id")
	}
	staffID, err := toKernel(body.StaffId)
	if err != nil {
		return badRequest(ctx, "Invalid staff id")
	}

	cmd, err := commands.NewRegisterPackageCommand(kernel.NewUUID(), mailroomID, residentID, staffID, body.Provider)
	if err != nil {
		return s.fail(ctx, "register package", err)
	}

	pkg, err := s.h.RegisterPackage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "register package", err)
	}
	return ctx.JSON(http.StatusCreated, packageResponse(pkg))
}

// GetPackages handles GET /api/v1/mailrooms/{mailroomId}/packages.
func (s *Server) GetPackages(ctx echo.Context, mailroomId servers.MailroomId, params servers.GetPackagesParams) error {
	id, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}

	var statuses []parcel.Status
	for _, name := range deref(params.Status) {
		status, parseErr := parcel.ParseStatus(string(name))
		if parseErr != nil {
			return s.fail(ctx, "list packages", parseErr)
		}
		statuses = append(statuses, status)
	}

	query, err := queries.NewGetPackagesQuery(id, statuses, deref(params.Limit))
	if err != nil {
		return s.fail(ctx, "list packages", err)
	}

	views, err := s.h.GetPackages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "list packages", err)
	}
	return ctx.JSON(http.StatusOK, packageViewsResponse(views))
}

// TransitionPackage handles POST /api/v1/mailrooms/{mailroomId}/packages/{packageId}/transition.
func (s *Server) TransitionPackage(
	ctx echo.Context,
	mailroomId servers.MailroomId,
	packageId openapi_types.UUID,
) error {
	var body servers.TransitionPackageJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	mailroomID, err := toKernel(mailroomId)
	if err != nil {
		return badRequest(ctx, "Invalid mailroom id")
	}
	packageID, err := toKernel(packageId)
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}
	staffID, err := toKernel(body.StaffId)
	if err != nil {
		return badRequest(ctx, "Invalid staff id")
	}
	target, err := parcel.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, "transition", err)
	}

	cmd, err := commands.NewTransitionPackageCommand(mailroomID, packageID, target, staffID)
	if err != nil {
		return s.fail(ctx, "transition", err)
	}

	pkg, err := s.h.TransitionPackage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "transition", err)
	}
	return ctx.JSON(http.StatusOK, packageResponse(pkg))
}
