// Package resident provides the Resident aggregate: a person who can receive
// packages in one mailroom. Residents come from roster uploads or manual adds
// and are soft-removed by a status flip; they are never hard-deleted while
// packages reference them.
package resident

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// Status is the membership state of a resident.
type Status string

const (
	StatusActive            Status = "ACTIVE"
	StatusRemovedBulk       Status = "REMOVED_BULK"
	StatusRemovedIndividual Status = "REMOVED_INDIVIDUAL"
	StatusAdminAction       Status = "ADMIN_ACTION"
)

const maxFieldLength = 128

var ErrResidentIsNotConstructed = errors.New("Resident must be created via NewResident or RestoreResident constructor")

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusActive, StatusRemovedBulk, StatusRemovedIndividual, StatusAdminAction:
		return st, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("resident status", fmt.Errorf("%q is not a resident status", s))
}

// Profile holds the roster fields of a resident.
type Profile struct {
	FirstName string
	LastName  string
	StudentID string
	Email     string
}

// Resident belongs to exactly one mailroom; StudentID is unique within it.
type Resident struct {
	id         kernel.UUID
	mailroomID kernel.UUID
	profile    Profile
	status     Status

	guard guard.ConstructorGuard
}

// NewResident creates an ACTIVE resident.
func NewResident(id, mailroomID kernel.UUID, profile Profile) (*Resident, error) {
	return RestoreResident(id, mailroomID, profile, StatusActive)
}

// RestoreResident rebuilds a resident read from storage.
func RestoreResident(id, mailroomID kernel.UUID, profile Profile, status Status) (*Resident, error) {
	r := &Resident{guard: guard.NewConstructorGuard()}

	_, statusErr := ParseStatus(string(status))
	if err := errors.Join(
		id.Validate(),
		mailroomID.Validate(),
		r.setProfile(profile),
		statusErr,
	); err != nil {
		return nil, err
	}

	r.id = id
	r.mailroomID = mailroomID
	r.status = status
	return r, nil
}

func (r *Resident) Validate() error {
	if r == nil {
		return ErrResidentIsNotConstructed
	}
	return r.guard.Validate(ErrResidentIsNotConstructed)
}

func (r *Resident) ID() kernel.UUID         { return r.id }
func (r *Resident) MailroomID() kernel.UUID { return r.mailroomID }
func (r *Resident) Profile() Profile        { return r.profile }
func (r *Resident) StudentID() string       { return r.profile.StudentID }
func (r *Resident) Email() string           { return r.profile.Email }
func (r *Resident) Status() Status          { return r.status }

// FullName is "First Last".
func (r *Resident) FullName() string {
	return strings.TrimSpace(r.profile.FirstName + " " + r.profile.LastName)
}

func (r *Resident) IsActive() bool {
	return r.status == StatusActive
}

// RemoveIndividually soft-removes a resident on a manager's request.
func (r *Resident) RemoveIndividually() {
	r.status = StatusRemovedIndividual
}

// RemoveInBulk soft-removes a resident missing from a newly uploaded roster.
// Residents an admin already set aside keep their ADMIN_ACTION status.
func (r *Resident) RemoveInBulk() {
	if r.status == StatusAdminAction {
		return
	}
	r.status = StatusRemovedBulk
}

// Reactivate refreshes the roster fields and marks the resident ACTIVE again.
// The student id cannot change.
func (r *Resident) Reactivate(profile Profile) error {
	if !strings.EqualFold(strings.TrimSpace(profile.StudentID), r.profile.StudentID) {
		return errs.NewValueIsInvalidErrorWithCause("student id",
			fmt.Errorf("%q does not match %q", profile.StudentID, r.profile.StudentID))
	}
	next := &Resident{}
	if err := next.setProfile(profile); err != nil {
		return err
	}
	r.profile = next.profile
	r.status = StatusActive
	return nil
}

// ProfileDiffers reports whether profile would change any roster field.
func (r *Resident) ProfileDiffers(profile Profile) bool {
	next := &Resident{}
	if err := next.setProfile(profile); err != nil {
		return true
	}
	return next.profile != r.profile
}

func (r *Resident) setProfile(p Profile) error {
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	studentID := strings.TrimSpace(p.StudentID)
	email := strings.TrimSpace(p.Email)

	var problems []error
	if first == "" {
		problems = append(problems, errs.NewValueIsRequiredError("first name"))
	}
	if last == "" {
		problems = append(problems, errs.NewValueIsRequiredError("last name"))
	}
	if studentID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("student id"))
	}
	for name, v := range map[string]string{"first name": first, "last name": last, "student id": studentID} {
		if len(v) > maxFieldLength {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("longer than %d characters", maxFieldLength)))
		}
	}
	if email == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	} else if addr, err := mail.ParseAddress(email); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("email", err))
	} else {
		email = strings.ToLower(addr.Address)
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}

	r.profile = Profile{FirstName: first, LastName: last, StudentID: studentID, Email: email}
	return nil
}
