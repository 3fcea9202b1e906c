package services

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/core/domain/model/slot"
)

// ErrPoolSizeExceedsNumberRange is returned when a mailroom asks for more
// slots than there are package numbers.
var ErrPoolSizeExceedsNumberRange = errors.New("pool size exceeds the package number range")

// PoolProvisioner derives the initial slot set of a mailroom.
//
// Business rules:
//   - numbers run from kernel.MinPackageNumber up to the mailroom's pool size
//   - every provisioned slot starts available and unused
//   - the pool is built once, at mailroom creation; slots are never deleted
//
// Example:
//
//	m, _ := mailroom.NewMailroom(id, orgID, "north-hall", "North Hall", 50, settings)
//	slots, err := services.NewPoolProvisioner().Provision(m)
//	// len(slots) == 50, slots[0].Number().Int() == 1
type PoolProvisioner struct{}

func NewPoolProvisioner() PoolProvisioner {
	return PoolProvisioner{}
}

// Provision returns the slots 1..PoolSize for the mailroom, in ascending order.
func (PoolProvisioner) Provision(m *mailroom.Mailroom) ([]*slot.Slot, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	size := m.PoolSize()
	if size > kernel.MaxPackageNumber-kernel.MinPackageNumber+1 {
		return nil, ErrPoolSizeExceedsNumberRange
	}

	slots := make([]*slot.Slot, 0, size)
	for n := kernel.MinPackageNumber; n < kernel.MinPackageNumber+size; n++ {
		number, err := kernel.NewPackageNumber(n)
		if err != nil {
			return nil, err
		}

		s, err := slot.NewSlot(m.ID(), number)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}

	return slots, nil
}
