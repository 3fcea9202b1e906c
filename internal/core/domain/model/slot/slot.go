// Package slot models a mailroom's pool of reusable package numbers.
//
// A Slot is one (mailroom, number) pair with an availability flag. Slots are
// provisioned in bulk when a mailroom is created and are never deleted.
// Flipping availability is reserved to the datastore's conditional updates
// behind ports.SlotRepository; this package never toggles a slot in memory.
package slot

import (
	"errors"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

var (
	// ErrQueueExhausted is returned when a mailroom has no available package number.
	ErrQueueExhausted = errors.New("no package numbers available")

	// ErrSlotNotFound is returned when a (mailroom, number) pair was never provisioned.
	ErrSlotNotFound = errors.New("package number slot not found")

	// ErrNumberInUse is returned when an allocated number is still held by a
	// WAITING package, which happens after a manual release of a busy number.
	ErrNumberInUse = errors.New("package number is held by a waiting package")

	ErrSlotIsNotConstructed = errors.New("Slot must be created via NewSlot or RestoreSlot constructor")
)

// Slot is a single entry of a mailroom's package number pool.
type Slot struct {
	mailroomID  kernel.UUID
	number      kernel.PackageNumber
	isAvailable bool
	lastUsedAt  *time.Time

	guard guard.ConstructorGuard
}

// NewSlot returns a freshly provisioned, available slot that was never used.
func NewSlot(mailroomID kernel.UUID, number kernel.PackageNumber) (*Slot, error) {
	return RestoreSlot(mailroomID, number, true, nil)
}

// RestoreSlot rebuilds a slot read from storage.
func RestoreSlot(mailroomID kernel.UUID, number kernel.PackageNumber, isAvailable bool, lastUsedAt *time.Time) (*Slot, error) {
	if err := errors.Join(mailroomID.Validate(), number.Validate()); err != nil {
		return nil, err
	}

	s := &Slot{
		mailroomID:  mailroomID,
		number:      number,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}
	if lastUsedAt != nil {
		at := lastUsedAt.UTC()
		s.lastUsedAt = &at
	}
	return s, nil
}

func (s *Slot) Validate() error {
	if s == nil {
		return ErrSlotIsNotConstructed
	}
	return s.guard.Validate(ErrSlotIsNotConstructed)
}

func (s *Slot) MailroomID() kernel.UUID {
	return s.mailroomID
}

func (s *Slot) Number() kernel.PackageNumber {
	return s.number
}

func (s *Slot) IsAvailable() bool {
	return s.isAvailable
}

// LastUsedAt is nil for a slot that was never allocated or released.
func (s *Slot) LastUsedAt() *time.Time {
	return s.lastUsedAt
}

// IdleSince reports whether the slot has been held out of the pool since
// before cutoff. Reconciliation only considers such slots so that a number
// allocated a moment ago, whose package row is still being written, is left alone.
func (s *Slot) IdleSince(cutoff time.Time) bool {
	if s.isAvailable {
		return false
	}
	return s.lastUsedAt == nil || s.lastUsedAt.Before(cutoff)
}
