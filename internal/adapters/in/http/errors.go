package http

import (
	"errors"
	"fmt"
	"net/http"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/invitation"
	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/model/slot"
	"mailroom/internal/generated/servers"
	"mailroom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// sentinelResponses maps use-case and domain errors to fixed user messages.
// Order matters: specific sentinels come before the generic errs ones.
var sentinelResponses = []struct {
	err     error
	code    int
	message string
}{
	{slot.ErrQueueExhausted, http.StatusConflict, "No package numbers available"},
	{slot.ErrNumberInUse, http.StatusConflict, "Package number is still in use"},
	{parcel.ErrInvalidTransition, http.StatusConflict, "Package is no longer waiting"},
	{mailroom.ErrMailroomIsDefunct, http.StatusConflict, "Mailroom is no longer active"},
	{invitation.ErrInvitationExpired, http.StatusConflict, "Invitation has expired"},
	{invitation.ErrInvitationNotPending, http.StatusConflict, "Invitation is no longer pending"},
	{commands.ErrMailroomNotFound, http.StatusNotFound, "Mailroom not found"},
	{commands.ErrResidentNotFound, http.StatusNotFound, "Resident not found"},
	{commands.ErrPackageNotFound, http.StatusNotFound, "Package not found"},
	{commands.ErrInvitationNotFound, http.StatusNotFound, "Invitation not found"},
	{slot.ErrSlotNotFound, http.StatusNotFound, "Package number not found"},
	{commands.ErrRosterIsEmpty, http.StatusBadRequest, "Roster has no rows"},
}

// errorResponse classifies err. Validation errors carry their own text since
// it names the offending field; unexpected errors never leak their text.
func errorResponse(err error) servers.Error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return servers.Error{Code: httpErr.Code, Message: fmt.Sprint(httpErr.Message)}
	}

	for _, r := range sentinelResponses {
		if errors.Is(err, r.err) {
			return servers.Error{Code: r.code, Message: r.message}
		}
	}

	var exists *errs.ObjectAlreadyExistsError
	switch {
	case errors.As(err, &exists):
		return servers.Error{Code: http.StatusConflict, Message: exists.ParamName + " already exists"}
	case errors.Is(err, errs.ErrObjectNotFound):
		return servers.Error{Code: http.StatusNotFound, Message: "Not found"}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return servers.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	return servers.Error{Code: http.StatusInternalServerError, Message: "Internal server error"}
}

// fail writes the error response and logs server-side failures.
func (s *Server) fail(ctx echo.Context, operation string, err error) error {
	resp := errorResponse(err)
	if resp.Code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), operation+" failed", "error", err)
	}
	return ctx.JSON(resp.Code, resp)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}
