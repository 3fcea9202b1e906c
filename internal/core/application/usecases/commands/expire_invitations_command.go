package commands

import (
	"errors"
	"time"

	"mailroom/internal/pkg/guard"
)

const DefaultBatchSize = 500

var ErrExpireInvitationsCommandIsNotConstructed = errors.New(
	"ExpireInvitationsCommand must be created via NewExpireInvitationsCommand constructor",
)

// ExpireInvitationsCommand fails PENDING invitations whose expiry passed by now.
type ExpireInvitationsCommand struct { //nolint:recvcheck //using for validation
	now       time.Time
	batchSize int

	guard guard.ConstructorGuard
}

func NewExpireInvitationsCommand(now time.Time, batchSize int) (ExpireInvitationsCommand, error) {
	if err := errors.Join(requiredTime("now", now), positive("batchSize", int64(batchSize))); err != nil {
		return ExpireInvitationsCommand{}, err
	}
	return ExpireInvitationsCommand{now: now, batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c ExpireInvitationsCommand) Validate() error {
	return c.guard.Validate(ErrExpireInvitationsCommandIsNotConstructed)
}

func (c ExpireInvitationsCommand) Now() time.Time { return c.now }
func (c ExpireInvitationsCommand) BatchSize() int { return c.batchSize }
