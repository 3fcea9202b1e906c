package queries

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

var ErrGetPoolUsageQueryIsNotConstructed = errors.New(
	"GetPoolUsageQuery must be created via NewGetPoolUsageQuery constructor",
)

type GetPoolUsageQuery struct {
	mailroomID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPoolUsageQuery(mailroomID kernel.UUID) (GetPoolUsageQuery, error) {
	if err := mailroomID.Validate(); err != nil {
		return GetPoolUsageQuery{}, err
	}
	return GetPoolUsageQuery{mailroomID: mailroomID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPoolUsageQuery) Validate() error {
	return q.guard.Validate(ErrGetPoolUsageQueryIsNotConstructed)
}

func (q GetPoolUsageQuery) MailroomID() kernel.UUID { return q.mailroomID }

// PoolUsage summarizes a mailroom's package number pool. Waiting counts
// WAITING packages; InUse minus Waiting is the number of slots held by
// in-flight registrations or leaked by failed compensation.
type PoolUsage struct {
	Total     int
	Available int
	InUse     int
	Waiting   int
}
