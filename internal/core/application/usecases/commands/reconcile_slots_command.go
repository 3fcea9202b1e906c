package commands

import (
	"errors"
	"time"

	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrReconcileSlotsCommandIsNotConstructed = errors.New(
	"ReconcileSlotsCommand must be created via NewReconcileSlotsCommand constructor",
)

// ReconcileSlotsCommand returns leaked numbers to their pools. A slot is leaked
// when it is unavailable, no WAITING package references it and it was last
// used before cutoff. The grace period between cutoff and now protects
// registrations that allocated a number and have not inserted their package yet.
type ReconcileSlotsCommand struct { //nolint:recvcheck //using for validation
	cutoff    time.Time
	batchSize int

	guard guard.ConstructorGuard
}

func NewReconcileSlotsCommand(now time.Time, grace time.Duration, batchSize int) (ReconcileSlotsCommand, error) {
	if err := errors.Join(
		requiredTime("now", now),
		positive("grace", int64(grace)),
		positive("batchSize", int64(batchSize)),
	); err != nil {
		return ReconcileSlotsCommand{}, err
	}
	return ReconcileSlotsCommand{
		cutoff:    now.Add(-grace),
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcileSlotsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileSlotsCommandIsNotConstructed)
}

func (c ReconcileSlotsCommand) Cutoff() time.Time { return c.cutoff }
func (c ReconcileSlotsCommand) BatchSize() int    { return c.batchSize }

func requiredTime(name string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func positive(name string, v int64) error {
	if v <= 0 {
		return errs.NewValueIsOutOfRangeError(name, v, 1, "unbounded")
	}
	return nil
}
