package queries

import (
	"errors"
	"strings"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrGetMailroomBySlugQueryIsNotConstructed = errors.New(
	"GetMailroomBySlugQuery must be created via NewGetMailroomBySlugQuery constructor",
)

// GetMailroomBySlugQuery resolves the mailroom addressed by an
// organization-scoped URL segment.
type GetMailroomBySlugQuery struct {
	organizationID kernel.UUID
	slug           string

	guard guard.ConstructorGuard
}

func NewGetMailroomBySlugQuery(organizationID kernel.UUID, slug string) (GetMailroomBySlugQuery, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	var slugErr error
	if slug == "" {
		slugErr = errs.NewValueIsRequiredError("slug")
	}
	if err := errors.Join(organizationID.Validate(), slugErr); err != nil {
		return GetMailroomBySlugQuery{}, err
	}

	return GetMailroomBySlugQuery{
		organizationID: organizationID,
		slug:           slug,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetMailroomBySlugQuery) Validate() error {
	return q.guard.Validate(ErrGetMailroomBySlugQueryIsNotConstructed)
}

func (q GetMailroomBySlugQuery) OrganizationID() kernel.UUID { return q.organizationID }
func (q GetMailroomBySlugQuery) Slug() string                { return q.slug }

// MailroomView is the settings read model of a mailroom.
type MailroomView struct {
	ID                  kernel.UUID
	OrganizationID      kernel.UUID
	Slug                string
	Name                string
	Status              string
	PoolSize            int
	PickupOption        string
	Hours               map[string]string
	EmailAdditionalText string
	AdminEmail          string
}
