// Package invitation provides the Invitation aggregate: a pending offer for a
// person to join an organization (and usually one of its mailrooms) with a role.
//
// State transitions:
//
//	PENDING ──┬──> RESOLVED   (registration completed before expiry)
//	          ├──> CANCELLED  (withdrawn by a manager)
//	          └──> FAILED     (expired, or registration failed)
//
// An invitation expires TTL after creation.
package invitation

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// TTL is how long an invitation stays usable.
const TTL = 7 * 24 * time.Hour

type Role string

const (
	RoleUser    Role = "USER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleUser, RoleManager, RoleAdmin:
		return r, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", s))
}

// RequiresMailroom reports whether invitations for the role must name a mailroom.
func (r Role) RequiresMailroom() bool {
	return r != RoleAdmin
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusResolved  Status = "RESOLVED"
	StatusFailed    Status = "FAILED"
	StatusCancelled Status = "CANCELLED"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusResolved, StatusFailed, StatusCancelled:
		return st, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("invitation status", fmt.Errorf("%q is not an invitation status", s))
}

var (
	ErrInvitationIsNotConstructed = errors.New("Invitation must be created via NewInvitation or RestoreInvitation constructor")

	// ErrInvitationNotPending is returned when acting on an invitation that was already settled.
	ErrInvitationNotPending = errors.New("invitation is not pending")

	// ErrInvitationExpired is returned when resolving an invitation past its expiry.
	ErrInvitationExpired = errors.New("invitation has expired")
)

// Invitation is addressed to an email within one organization.
type Invitation struct {
	id             kernel.UUID
	email          string
	role           Role
	organizationID kernel.UUID
	mailroomID     *kernel.UUID
	invitedBy      kernel.UUID
	createdAt      time.Time
	expiresAt      time.Time
	used           bool
	status         Status

	guard guard.ConstructorGuard
}

// NewInvitation creates a PENDING invitation expiring TTL after now.
func NewInvitation(
	id kernel.UUID,
	email string,
	role Role,
	organizationID kernel.UUID,
	mailroomID *kernel.UUID,
	invitedBy kernel.UUID,
	now time.Time,
) (*Invitation, error) {
	created := now.UTC()
	return RestoreInvitation(id, email, role, organizationID, mailroomID, invitedBy,
		created, created.Add(TTL), false, StatusPending)
}

// RestoreInvitation rebuilds an invitation read from storage.
func RestoreInvitation(
	id kernel.UUID,
	email string,
	role Role,
	organizationID kernel.UUID,
	mailroomID *kernel.UUID,
	invitedBy kernel.UUID,
	createdAt, expiresAt time.Time,
	used bool,
	status Status,
) (*Invitation, error) {
	inv := &Invitation{
		createdAt: createdAt.UTC(),
		expiresAt: expiresAt.UTC(),
		used:      used,
		guard:     guard.NewConstructorGuard(),
	}

	_, roleErr := ParseRole(string(role))
	_, statusErr := ParseStatus(string(status))
	if err := errors.Join(
		id.Validate(),
		organizationID.Validate(),
		invitedBy.Validate(),
		roleErr,
		statusErr,
		inv.setEmail(email),
		inv.setMailroom(role, mailroomID),
	); err != nil {
		return nil, err
	}
	if !inv.expiresAt.After(inv.createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause("expires at", errors.New("must be after creation"))
	}

	inv.id = id
	inv.role = role
	inv.organizationID = organizationID
	inv.invitedBy = invitedBy
	inv.status = status
	return inv, nil
}

func (i *Invitation) Validate() error {
	if i == nil {
		return ErrInvitationIsNotConstructed
	}
	return i.guard.Validate(ErrInvitationIsNotConstructed)
}

func (i *Invitation) ID() kernel.UUID             { return i.id }
func (i *Invitation) Email() string               { return i.email }
func (i *Invitation) Role() Role                  { return i.role }
func (i *Invitation) OrganizationID() kernel.UUID { return i.organizationID }
func (i *Invitation) InvitedBy() kernel.UUID      { return i.invitedBy }
func (i *Invitation) CreatedAt() time.Time        { return i.createdAt }
func (i *Invitation) ExpiresAt() time.Time        { return i.expiresAt }
func (i *Invitation) Used() bool                  { return i.used }
func (i *Invitation) Status() Status              { return i.status }

// MailroomID is nil for organization-wide (ADMIN) invitations.
func (i *Invitation) MailroomID() *kernel.UUID {
	if i.mailroomID == nil {
		return nil
	}
	id := *i.mailroomID
	return &id
}

// IsExpired reports whether now is at or past the expiry time.
func (i *Invitation) IsExpired(now time.Time) bool {
	return !now.Before(i.expiresAt)
}

// Resolve marks the invitation used after the invitee registered.
func (i *Invitation) Resolve(now time.Time) error {
	if i.status != StatusPending {
		return fmt.Errorf("%w: %s", ErrInvitationNotPending, i.status)
	}
	if i.IsExpired(now) {
		return ErrInvitationExpired
	}
	i.status = StatusResolved
	i.used = true
	return nil
}

// Cancel withdraws a pending invitation.
func (i *Invitation) Cancel() error {
	if i.status != StatusPending {
		return fmt.Errorf("%w: %s", ErrInvitationNotPending, i.status)
	}
	i.status = StatusCancelled
	return nil
}

// Expire fails a pending invitation whose expiry has passed. It reports
// whether the invitation changed.
func (i *Invitation) Expire(now time.Time) bool {
	if i.status != StatusPending || !i.IsExpired(now) {
		return false
	}
	i.status = StatusFailed
	return true
}

func (i *Invitation) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	i.email = strings.ToLower(addr.Address)
	return nil
}

func (i *Invitation) setMailroom(role Role, mailroomID *kernel.UUID) error {
	if mailroomID == nil {
		if role.RequiresMailroom() {
			return errs.NewValueIsRequiredError("mailroom id")
		}
		return nil
	}
	if err := mailroomID.Validate(); err != nil {
		return err
	}
	id := *mailroomID
	i.mailroomID = &id
	return nil
}
