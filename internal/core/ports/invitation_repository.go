package ports

import (
	"context"
	"time"

	"mailroom/internal/core/domain/model/invitation"
	"mailroom/internal/core/domain/model/kernel"
)

type InvitationRepository interface {
	Add(ctx context.Context, aggregate *invitation.Invitation) error
	Update(ctx context.Context, aggregate *invitation.Invitation) error
	Get(ctx context.Context, id kernel.UUID) (*invitation.Invitation, error)

	// HasPending reports whether a PENDING, unexpired invitation exists for
	// the email within the organization.
	HasPending(ctx context.Context, email string, organizationID kernel.UUID, now time.Time) (bool, error)

	// ListExpiredPending returns PENDING invitations whose expiry is at or
	// before now, oldest first, at most limit of them.
	ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]*invitation.Invitation, error)
}
