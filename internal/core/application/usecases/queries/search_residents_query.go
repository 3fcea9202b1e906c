package queries

import (
	"errors"
	"strings"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

const DefaultSearchLimit = 20

var ErrSearchResidentsQueryIsNotConstructed = errors.New(
	"SearchResidentsQuery must be created via NewSearchResidentsQuery constructor",
)

// SearchResidentsQuery is the first step of the pickup flow. The term is
// matched case-insensitively as a prefix of the first name, last name,
// "first last" or student id. An empty term lists active residents by name.
type SearchResidentsQuery struct {
	mailroomID kernel.UUID
	term       string
	limit      int

	guard guard.ConstructorGuard
}

func NewSearchResidentsQuery(mailroomID kernel.UUID, term string, limit int) (SearchResidentsQuery, error) {
	problems := []error{mailroomID.Validate()}
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	if limit < 1 || limit > MaxPageSize {
		problems = append(problems, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize))
	}
	if err := errors.Join(problems...); err != nil {
		return SearchResidentsQuery{}, err
	}

	return SearchResidentsQuery{
		mailroomID: mailroomID,
		term:       strings.ToLower(strings.Join(strings.Fields(term), " ")),
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q SearchResidentsQuery) Validate() error {
	return q.guard.Validate(ErrSearchResidentsQueryIsNotConstructed)
}

func (q SearchResidentsQuery) MailroomID() kernel.UUID { return q.mailroomID }
func (q SearchResidentsQuery) Term() string            { return q.term }
func (q SearchResidentsQuery) Limit() int              { return q.limit }

// likePrefix escapes LIKE wildcards in the term and appends %.
func (q SearchResidentsQuery) likePrefix() string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(q.term) + "%"
}

type ResidentView struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	StudentID string
	Email     string
	// WaitingPackages counts the resident's WAITING packages.
	WaitingPackages int
}
