package mailroom

import (
	"errors"
	"fmt"
	"maps"
	"net/mail"
	"regexp"
	"strings"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

const (
	// DefaultPoolSize provisions the full 1..999 range.
	DefaultPoolSize = kernel.MaxPackageNumber

	MaxNameLength                = 128
	MaxEmailAdditionalTextLength = 2000
)

var (
	ErrMailroomIsNotConstructed = errors.New("Mailroom must be created via NewMailroom or RestoreMailroom constructor")

	// ErrMailroomIsDefunct is returned when registering packages in a retired mailroom.
	ErrMailroomIsDefunct = errors.New("mailroom is no longer active")

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	weekdays = map[string]struct{}{
		"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
		"friday": {}, "saturday": {}, "sunday": {},
	}
)

// Settings is the part of a mailroom managers edit from the email settings form.
type Settings struct {
	PickupOption        PickupOption
	Hours               map[string]string
	EmailAdditionalText string
	AdminEmail          string
}

// Mailroom is a tenant-scoped package room.
type Mailroom struct {
	id             kernel.UUID
	organizationID kernel.UUID
	slug           string
	name           string
	poolSize       int
	status         Status
	settings       Settings

	guard guard.ConstructorGuard
}

// NewMailroom creates an ACTIVE mailroom.
//
// Parameters:
//   - id, organizationID: identities of the mailroom and its organization
//   - slug: URL segment, unique within the organization
//   - name: display name
//   - poolSize: how many package numbers (1..poolSize) to provision
//   - settings: initial pickup option, hours and email settings
//
// Example:
//
//	m, err := mailroom.NewMailroom(kernel.NewUUID(), orgID, "north-hall", "North Hall",
//	    mailroom.DefaultPoolSize, mailroom.Settings{PickupOption: mailroom.PickupByResidentID})
func NewMailroom(id, organizationID kernel.UUID, slug, name string, poolSize int, settings Settings) (*Mailroom, error) {
	return RestoreMailroom(id, organizationID, slug, name, poolSize, StatusActive, settings)
}

// RestoreMailroom rebuilds a mailroom read from storage.
func RestoreMailroom(
	id, organizationID kernel.UUID,
	slug, name string,
	poolSize int,
	status Status,
	settings Settings,
) (*Mailroom, error) {
	m := &Mailroom{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		organizationID.Validate(),
		m.setSlug(slug),
		m.setName(name),
		m.setPoolSize(poolSize),
		status.Validate(),
		m.setSettings(settings),
	); err != nil {
		return nil, err
	}

	m.id = id
	m.organizationID = organizationID
	m.status = status
	return m, nil
}

func (m *Mailroom) Validate() error {
	if m == nil {
		return ErrMailroomIsNotConstructed
	}
	return m.guard.Validate(ErrMailroomIsNotConstructed)
}

func (m *Mailroom) ID() kernel.UUID             { return m.id }
func (m *Mailroom) OrganizationID() kernel.UUID { return m.organizationID }
func (m *Mailroom) Slug() string                { return m.slug }
func (m *Mailroom) Name() string                { return m.name }
func (m *Mailroom) PoolSize() int               { return m.poolSize }
func (m *Mailroom) Status() Status              { return m.status }

// Settings returns a copy of the mailroom settings.
func (m *Mailroom) Settings() Settings {
	s := m.settings
	s.Hours = maps.Clone(m.settings.Hours)
	return s
}

// IsActive reports whether the mailroom accepts new packages.
func (m *Mailroom) IsActive() bool {
	return m.status == StatusActive
}

// EnsureAcceptsPackages returns ErrMailroomIsDefunct for retired mailrooms.
func (m *Mailroom) EnsureAcceptsPackages() error {
	if !m.IsActive() {
		return ErrMailroomIsDefunct
	}
	return nil
}

// UpdateSettings replaces the settings after validating all of them.
// The mailroom is left untouched when any value is invalid.
func (m *Mailroom) UpdateSettings(settings Settings) error {
	next := &Mailroom{}
	if err := next.setSettings(settings); err != nil {
		return err
	}
	m.settings = next.settings
	return nil
}

// Retire marks the mailroom DEFUNCT. Retiring twice is a no-op.
func (m *Mailroom) Retire() {
	m.status = StatusDefunct
}

func (m *Mailroom) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	if len(slug) > 64 || !slugPattern.MatchString(slug) {
		return errs.NewValueIsInvalidErrorWithCause("slug",
			fmt.Errorf("%q must be lowercase letters, digits and dashes", slug))
	}
	m.slug = slug
	return nil
}

func (m *Mailroom) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > MaxNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("longer than %d characters", MaxNameLength))
	}
	m.name = name
	return nil
}

func (m *Mailroom) setPoolSize(size int) error {
	if size < kernel.MinPackageNumber || size > kernel.MaxPackageNumber {
		return errs.NewValueIsOutOfRangeError("pool size", size, kernel.MinPackageNumber, kernel.MaxPackageNumber)
	}
	m.poolSize = size
	return nil
}

func (m *Mailroom) setSettings(s Settings) error {
	if err := s.PickupOption.Validate(); err != nil {
		return err
	}

	hours := make(map[string]string, len(s.Hours))
	for day, span := range s.Hours {
		key := strings.ToLower(strings.TrimSpace(day))
		if _, ok := weekdays[key]; !ok {
			return errs.NewValueIsInvalidErrorWithCause("hours", fmt.Errorf("%q is not a weekday", day))
		}
		hours[key] = strings.TrimSpace(span)
	}

	text := strings.TrimSpace(s.EmailAdditionalText)
	if len(text) > MaxEmailAdditionalTextLength {
		return errs.NewValueIsInvalidErrorWithCause("email additional text",
			fmt.Errorf("longer than %d characters", MaxEmailAdditionalTextLength))
	}

	adminEmail := strings.TrimSpace(s.AdminEmail)
	if adminEmail != "" {
		addr, err := mail.ParseAddress(adminEmail)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("admin email", err)
		}
		adminEmail = addr.Address
	}

	m.settings = Settings{
		PickupOption:        s.PickupOption,
		Hours:               hours,
		EmailAdditionalText: text,
		AdminEmail:          adminEmail,
	}
	return nil
}
