package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"mailroom/internal/core/domain/model/invitation"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/model/resident"

	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.DiscardHandler)

func newTestMailroom(t *testing.T) *mailroom.Mailroom {
	t.Helper()
	m, err := mailroom.NewMailroom(kernel.NewUUID(), kernel.NewUUID(), "north-hall", "North Hall", 3,
		mailroom.Settings{
			PickupOption:        mailroom.PickupByResidentID,
			Hours:               map[string]string{"monday": "9-17"},
			EmailAdditionalText: "Bring your ID.",
		})
	require.NoError(t, err)
	return m
}

func adaProfile() resident.Profile {
	return resident.Profile{FirstName: "Ada", LastName: "Lovelace", StudentID: "S-100", Email: "ada@example.edu"}
}

func newTestResident(t *testing.T, mailroomID kernel.UUID, p resident.Profile) *resident.Resident {
	t.Helper()
	r, err := resident.NewResident(kernel.NewUUID(), mailroomID, p)
	require.NoError(t, err)
	return r
}

func newWaitingPackage(t *testing.T, mailroomID, residentID kernel.UUID, number int) *parcel.Package {
	t.Helper()
	p, err := parcel.NewPackage(kernel.NewUUID(), mailroomID, residentID, kernel.NewUUID(),
		kernel.MustNewPackageNumber(number), "UPS", time.Now())
	require.NoError(t, err)
	return p
}

func newPendingInvitation(t *testing.T, sentAt time.Time) *invitation.Invitation {
	t.Helper()
	inv, err := invitation.NewInvitation(kernel.NewUUID(), "clerk@example.edu", invitation.RoleAdmin,
		kernel.NewUUID(), nil, kernel.NewUUID(), sentAt)
	require.NoError(t, err)
	return inv
}
