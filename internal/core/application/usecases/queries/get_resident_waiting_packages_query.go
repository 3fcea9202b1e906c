package queries

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

var ErrGetResidentWaitingPackagesQueryIsNotConstructed = errors.New(
	"GetResidentWaitingPackagesQuery must be created via NewGetResidentWaitingPackagesQuery constructor",
)

// GetResidentWaitingPackagesQuery is the second step of the pickup flow:
// after staff picked the resident, list what is waiting for them.
type GetResidentWaitingPackagesQuery struct {
	mailroomID kernel.UUID
	residentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetResidentWaitingPackagesQuery(mailroomID, residentID kernel.UUID) (GetResidentWaitingPackagesQuery, error) {
	if err := errors.Join(mailroomID.Validate(), residentID.Validate()); err != nil {
		return GetResidentWaitingPackagesQuery{}, err
	}
	return GetResidentWaitingPackagesQuery{
		mailroomID: mailroomID,
		residentID: residentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetResidentWaitingPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetResidentWaitingPackagesQueryIsNotConstructed)
}

func (q GetResidentWaitingPackagesQuery) MailroomID() kernel.UUID { return q.mailroomID }
func (q GetResidentWaitingPackagesQuery) ResidentID() kernel.UUID { return q.residentID }
