package ports

import (
	"context"
	"time"
)

// PackageNotice carries what a resident email about one package needs.
type PackageNotice struct {
	MailroomName   string
	ResidentName   string
	ResidentEmail  string
	PackageNumber  int
	Provider       string
	AdditionalText string
	Hours          map[string]string
	OccurredAt     time.Time
}

// InvitationNotice carries what an invitation email needs.
type InvitationNotice struct {
	InvitationID string
	Email        string
	Role         string
	ExpiresAt    time.Time
}

// Notifier hands messages to the email transport. Callers treat delivery as
// fire-and-forget: a failed notification never fails the business operation.
type Notifier interface {
	PackageArrived(ctx context.Context, notice PackageNotice) error
	PackageRetrieved(ctx context.Context, notice PackageNotice) error
	InvitationCreated(ctx context.Context, notice InvitationNotice) error
}
