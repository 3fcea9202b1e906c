package commands

import (
	"errors"
	"fmt"
	"strings"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/resident"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var (
	ErrSyncRosterCommandIsNotConstructed = errors.New(
		"SyncRosterCommand must be created via NewSyncRosterCommand constructor",
	)
	ErrRosterIsEmpty = errors.New("roster has no rows")
)

// SyncRosterCommand carries a parsed roster: the full list of people who
// should be active residents of a mailroom.
type SyncRosterCommand struct { //nolint:recvcheck //using for validation
	mailroomID kernel.UUID
	profiles   []resident.Profile

	guard guard.ConstructorGuard
}

// NewSyncRosterCommand validates every row and rejects student ids that
// appear twice. Row errors name the 1-based row.
func NewSyncRosterCommand(mailroomID kernel.UUID, rows []resident.Profile) (SyncRosterCommand, error) {
	if err := mailroomID.Validate(); err != nil {
		return SyncRosterCommand{}, err
	}
	if len(rows) == 0 {
		return SyncRosterCommand{}, ErrRosterIsEmpty
	}

	profiles := make([]resident.Profile, 0, len(rows))
	seen := make(map[string]int, len(rows))
	var problems []error
	for i, row := range rows {
		r, err := resident.NewResident(kernel.NewUUID(), mailroomID, row)
		if err != nil {
			problems = append(problems, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		key := strings.ToLower(r.StudentID())
		if first, dup := seen[key]; dup {
			problems = append(problems, fmt.Errorf("row %d: %w", i+1,
				errs.NewValueIsInvalidErrorWithCause("student id",
					fmt.Errorf("%q already appears in row %d", r.StudentID(), first))))
			continue
		}
		seen[key] = i + 1
		profiles = append(profiles, r.Profile())
	}
	if err := errors.Join(problems...); err != nil {
		return SyncRosterCommand{}, err
	}

	return SyncRosterCommand{
		mailroomID: mailroomID,
		profiles:   profiles,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SyncRosterCommand) Validate() error {
	return c.guard.Validate(ErrSyncRosterCommandIsNotConstructed)
}

func (c SyncRosterCommand) MailroomID() kernel.UUID { return c.mailroomID }

func (c SyncRosterCommand) Profiles() []resident.Profile {
	out := make([]resident.Profile, len(c.profiles))
	copy(out, c.profiles)
	return out
}
