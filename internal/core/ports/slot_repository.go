package ports

import (
	"context"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/slot"
)

// SlotRepository owns the package number pool. It is the only component
// allowed to flip a slot's availability, and every flip is a single
// conditional update in the datastore.
type SlotRepository interface {
	// AddPool inserts freshly provisioned slots.
	AddPool(ctx context.Context, slots []*slot.Slot) error

	// AllocateNext atomically takes the lowest available number of the
	// mailroom and marks it unavailable. Concurrent callers never receive the
	// same number. Returns slot.ErrQueueExhausted when nothing is available.
	AllocateNext(ctx context.Context, mailroomID kernel.UUID) (kernel.PackageNumber, error)

	// Release marks the slot available and refreshes last_used_at. Releasing
	// an already available slot succeeds. Returns slot.ErrSlotNotFound when
	// the pair was never provisioned.
	Release(ctx context.Context, mailroomID kernel.UUID, number kernel.PackageNumber) error

	// ListLeaked returns unavailable slots last used before cutoff that no
	// WAITING package references, at most limit of them.
	ListLeaked(ctx context.Context, cutoff time.Time, limit int) ([]*slot.Slot, error)

	// ReleaseIfLeaked releases the slot only if it still matches the
	// ListLeaked conditions, and reports whether it did.
	ReleaseIfLeaked(ctx context.Context, s *slot.Slot, cutoff time.Time) (bool, error)
}
