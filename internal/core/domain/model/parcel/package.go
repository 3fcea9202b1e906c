package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// MaxProviderLength bounds the carrier name ("UPS", "Amazon", ...).
const MaxProviderLength = 64

// ErrPackageIsNotConstructed is returned when a Package was not created through
// NewPackage or RestorePackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage constructor")

// Package is a physical package waiting in, or already gone from, a mailroom.
// It is the aggregate root of the package lifecycle.
//
// Package follows these invariants:
//   - identity, mailroom, resident and registering staff are valid UUIDs
//   - the package number was allocated from the mailroom's pool before creation
//   - provider is non-blank and at most MaxProviderLength characters
//   - a WAITING package has no retrieval time and no pickup staff
//   - a package in a terminal status has both
//   - status only ever leaves WAITING, never returns to it
type Package struct {
	id         kernel.UUID
	mailroomID kernel.UUID
	residentID kernel.UUID
	staffID    kernel.UUID

	// number is the slot number written on the physical package
	number kernel.PackageNumber

	provider string
	status   Status

	createdAt time.Time

	// retrievedAt and pickupStaffID are set when the package leaves WAITING
	retrievedAt   *time.Time
	pickupStaffID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewPackage registers an incoming package in WAITING.
//
// Parameters:
//   - id: identity of the new package
//   - mailroomID: tenant the package belongs to
//   - residentID: recipient, already resolved within mailroomID
//   - staffID: staff member registering the package
//   - number: package number just allocated from the mailroom's pool
//   - provider: carrier name
//   - now: registration time
//
// Returns every validation failure joined into one error.
//
// Example:
//
//	pkg, err := parcel.NewPackage(kernel.NewUUID(), mailroomID, residentID, staffID,
//	    kernel.MustNewPackageNumber(47), "UPS", time.Now())
func NewPackage(
	id kernel.UUID,
	mailroomID kernel.UUID,
	residentID kernel.UUID,
	staffID kernel.UUID,
	number kernel.PackageNumber,
	provider string,
	now time.Time,
) (*Package, error) {
	p := &Package{
		status:    Waiting,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setIdentity(id, mailroomID, residentID, staffID),
		p.setNumber(number),
		p.setProvider(provider),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage rebuilds a Package read from storage and checks that the
// stored status and retrieval stamps are consistent.
func RestorePackage(
	id kernel.UUID,
	mailroomID kernel.UUID,
	residentID kernel.UUID,
	staffID kernel.UUID,
	number kernel.PackageNumber,
	provider string,
	status Status,
	createdAt time.Time,
	retrievedAt *time.Time,
	pickupStaffID *kernel.UUID,
) (*Package, error) {
	p := &Package{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setIdentity(id, mailroomID, residentID, staffID),
		p.setNumber(number),
		p.setProvider(provider),
		p.setLifecycle(status, retrievedAt, pickupStaffID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Package was built by a constructor.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// ID returns the package identity.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// MailroomID returns the owning mailroom.
func (p *Package) MailroomID() kernel.UUID {
	return p.mailroomID
}

// ResidentID returns the recipient.
func (p *Package) ResidentID() kernel.UUID {
	return p.residentID
}

// StaffID returns the staff member who registered the package.
func (p *Package) StaffID() kernel.UUID {
	return p.staffID
}

// Number returns the package number held by this package.
func (p *Package) Number() kernel.PackageNumber {
	return p.number
}

// Provider returns the carrier name.
func (p *Package) Provider() string {
	return p.provider
}

// Status returns the lifecycle status.
func (p *Package) Status() Status {
	return p.status
}

// CreatedAt returns the registration time (UTC).
func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

// RetrievedAt returns when the package left WAITING, or nil while waiting.
func (p *Package) RetrievedAt() *time.Time {
	return p.retrievedAt
}

// PickupStaffID returns the staff member who moved the package out of WAITING, or nil.
func (p *Package) PickupStaffID() *kernel.UUID {
	return p.pickupStaffID
}

// BelongsTo reports whether the package is owned by mailroomID.
func (p *Package) BelongsTo(mailroomID kernel.UUID) bool {
	return p.mailroomID.IsEqual(mailroomID)
}

// Transition moves the package out of WAITING.
//
// This method enforces the following business rules:
//   - the acting staff id must be valid
//   - the package must currently be WAITING
//   - target must be RETRIEVED, STAFF_RESOLVED or STAFF_REMOVED
//
// Returns:
//   - nil on success; retrieval time and pickup staff are stamped
//   - an error wrapping ErrInvalidTransition when the package already left WAITING
//     or target is not a legal destination
//
// The in-memory transition is only half of the story: persistence must apply
// it with a conditional update on status = WAITING so that concurrent callers
// produce a single winner.
//
// Example:
//
//	if err := pkg.Transition(parcel.Retrieved, staffID, time.Now()); err != nil {
//	    return err
//	}
func (p *Package) Transition(target Status, actingStaffID kernel.UUID, now time.Time) error {
	if err := actingStaffID.Validate(); err != nil {
		return err
	}

	next, err := p.status.TransitionTo(target)
	if err != nil {
		return err
	}

	at := now.UTC()
	staff := actingStaffID
	p.status = next
	p.retrievedAt = &at
	p.pickupStaffID = &staff
	return nil
}

func (p *Package) setIdentity(id, mailroomID, residentID, staffID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		mailroomID.Validate(),
		residentID.Validate(),
		staffID.Validate(),
	); err != nil {
		return err
	}
	p.id = id
	p.mailroomID = mailroomID
	p.residentID = residentID
	p.staffID = staffID
	return nil
}

func (p *Package) setNumber(number kernel.PackageNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	p.number = number
	return nil
}

func (p *Package) setProvider(provider string) error {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return errs.NewValueIsRequiredError("provider")
	}
	if len(provider) > MaxProviderLength {
		return errs.NewValueIsInvalidErrorWithCause("provider",
			fmt.Errorf("%d characters exceeds %d", len(provider), MaxProviderLength))
	}
	p.provider = provider
	return nil
}

func (p *Package) setLifecycle(status Status, retrievedAt *time.Time, pickupStaffID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	stamped := retrievedAt != nil && pickupStaffID != nil
	switch {
	case status == Waiting && (retrievedAt != nil || pickupStaffID != nil):
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("a waiting package cannot carry retrieval data"))
	case status != Waiting && !stamped:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("a %s package requires retrieval time and pickup staff", status))
	}

	if pickupStaffID != nil {
		if err := pickupStaffID.Validate(); err != nil {
			return err
		}
		staff := *pickupStaffID
		p.pickupStaffID = &staff
	}
	if retrievedAt != nil {
		at := retrievedAt.UTC()
		p.retrievedAt = &at
	}
	p.status = status
	return nil
}
