package commands

import (
	"errors"
	"maps"
	"strings"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrCreateMailroomCommandIsNotConstructed = errors.New(
	"CreateMailroomCommand must be created via NewCreateMailroomCommand constructor",
)

// CreateMailroomCommand registers a mailroom and provisions its package number pool.
//
// Example:
//
//	cmd, err := NewCreateMailroomCommand(kernel.NewUUID(), orgID, "north-hall", "North Hall",
//	    mailroom.DefaultPoolSize, mailroom.Settings{PickupOption: mailroom.PickupByResidentID})
type CreateMailroomCommand struct { //nolint:recvcheck //using for validation
	mailroomID     kernel.UUID
	organizationID kernel.UUID
	slug           string
	name           string
	poolSize       int
	settings       mailroom.Settings

	guard guard.ConstructorGuard
}

// NewCreateMailroomCommand checks identities and required fields. Slug format,
// pool bounds and settings are checked by the mailroom aggregate itself.
// A pool size of 0 selects mailroom.DefaultPoolSize.
func NewCreateMailroomCommand(
	mailroomID, organizationID kernel.UUID,
	slug, name string,
	poolSize int,
	settings mailroom.Settings,
) (CreateMailroomCommand, error) {
	cmd := CreateMailroomCommand{
		poolSize: poolSize,
		settings: settings,
		guard:    guard.NewConstructorGuard(),
	}
	if cmd.poolSize == 0 {
		cmd.poolSize = mailroom.DefaultPoolSize
	}
	cmd.settings.Hours = maps.Clone(settings.Hours)

	if err := errors.Join(
		mailroomID.Validate(),
		organizationID.Validate(),
		cmd.setSlug(slug),
		cmd.setName(name),
	); err != nil {
		return CreateMailroomCommand{}, err
	}

	cmd.mailroomID = mailroomID
	cmd.organizationID = organizationID
	return cmd, nil
}

func (c CreateMailroomCommand) Validate() error {
	return c.guard.Validate(ErrCreateMailroomCommandIsNotConstructed)
}

func (c CreateMailroomCommand) MailroomID() kernel.UUID     { return c.mailroomID }
func (c CreateMailroomCommand) OrganizationID() kernel.UUID { return c.organizationID }
func (c CreateMailroomCommand) Slug() string                { return c.slug }
func (c CreateMailroomCommand) Name() string                { return c.name }
func (c CreateMailroomCommand) PoolSize() int               { return c.poolSize }
func (c CreateMailroomCommand) Settings() mailroom.Settings { return c.settings }

func (c *CreateMailroomCommand) setSlug(slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	c.slug = slug
	return nil
}

func (c *CreateMailroomCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
