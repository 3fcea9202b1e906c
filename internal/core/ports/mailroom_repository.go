// Package ports defines the contracts between the mailroom domain and its
// infrastructure: repositories, the unit of work, outbound notifications and
// the read cache.
package ports

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"
)

// MailroomRepository persists mailroom aggregates.
type MailroomRepository interface {
	// Add persists a new mailroom. A duplicate (organization, slug) pair is
	// reported as errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *mailroom.Mailroom) error

	// Update persists name, status and settings of an existing mailroom.
	Update(ctx context.Context, aggregate *mailroom.Mailroom) error

	// Get returns the mailroom or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*mailroom.Mailroom, error)
}
