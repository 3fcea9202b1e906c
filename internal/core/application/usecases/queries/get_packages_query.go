package queries

import (
	"errors"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 500
)

var ErrGetPackagesQueryIsNotConstructed = errors.New(
	"GetPackagesQuery must be created via NewGetPackagesQuery constructor",
)

// GetPackagesQuery lists the packages of a mailroom, newest first. An empty
// status list means every status.
type GetPackagesQuery struct {
	mailroomID kernel.UUID
	statuses   []parcel.Status
	limit      int

	guard guard.ConstructorGuard
}

// NewGetPackagesQuery builds the listing query. A zero limit selects
// DefaultPageSize.
func NewGetPackagesQuery(mailroomID kernel.UUID, statuses []parcel.Status, limit int) (GetPackagesQuery, error) {
	problems := []error{mailroomID.Validate()}
	for _, s := range statuses {
		problems = append(problems, s.Validate())
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 1 || limit > MaxPageSize {
		problems = append(problems, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize))
	}
	if err := errors.Join(problems...); err != nil {
		return GetPackagesQuery{}, err
	}

	return GetPackagesQuery{
		mailroomID: mailroomID,
		statuses:   append([]parcel.Status(nil), statuses...),
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagesQueryIsNotConstructed)
}

func (q GetPackagesQuery) MailroomID() kernel.UUID { return q.mailroomID }
func (q GetPackagesQuery) Limit() int              { return q.limit }

func (q GetPackagesQuery) StatusNames() []string {
	names := make([]string, 0, len(q.statuses))
	for _, s := range q.statuses {
		names = append(names, s.String())
	}
	return names
}

// PackageView is a package row joined with its resident's name.
type PackageView struct {
	ID            kernel.UUID
	ResidentID    kernel.UUID
	ResidentName  string
	StudentID     string
	PackageNumber int
	Provider      string
	Status        parcel.Status
	CreatedAt     time.Time
	RetrievedAt   *time.Time
	PickupStaffID *kernel.UUID
}
