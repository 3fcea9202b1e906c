package commands

import (
	"errors"
	"maps"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/pkg/guard"
)

var ErrUpdateMailroomSettingsCommandIsNotConstructed = errors.New(
	"UpdateMailroomSettingsCommand must be created via NewUpdateMailroomSettingsCommand constructor",
)

// UpdateMailroomSettingsCommand carries the email settings form of a mailroom.
type UpdateMailroomSettingsCommand struct { //nolint:recvcheck //using for validation
	mailroomID kernel.UUID
	settings   mailroom.Settings

	guard guard.ConstructorGuard
}

func NewUpdateMailroomSettingsCommand(mailroomID kernel.UUID, settings mailroom.Settings) (UpdateMailroomSettingsCommand, error) {
	if err := errors.Join(mailroomID.Validate(), settings.PickupOption.Validate()); err != nil {
		return UpdateMailroomSettingsCommand{}, err
	}

	settings.Hours = maps.Clone(settings.Hours)
	return UpdateMailroomSettingsCommand{
		mailroomID: mailroomID,
		settings:   settings,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMailroomSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMailroomSettingsCommandIsNotConstructed)
}

func (c UpdateMailroomSettingsCommand) MailroomID() kernel.UUID     { return c.mailroomID }
func (c UpdateMailroomSettingsCommand) Settings() mailroom.Settings { return c.settings }
