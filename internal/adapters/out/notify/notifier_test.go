package notify_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"mailroom/internal/adapters/out/notify"
	"mailroom/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotifier(buf *bytes.Buffer) *notify.LogNotifier {
	return notify.NewLogNotifier(slog.New(slog.NewJSONHandler(buf, nil)), "mailroom@example.edu")
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogNotifier_PackageArrived(t *testing.T) {
	var buf bytes.Buffer
	err := newNotifier(&buf).PackageArrived(context.Background(), ports.PackageNotice{
		MailroomName:   "North Hall",
		ResidentName:   "Ada Lovelace",
		ResidentEmail:  "ada@example.edu",
		PackageNumber:  47,
		Provider:       "UPS",
		AdditionalText: "Bring your student card.",
		Hours:          map[string]string{"friday": "10-14", "monday": "9-17"},
	})
	require.NoError(t, err)

	entry := decode(t, &buf)
	assert.Equal(t, "package_arrived", entry["kind"])
	assert.Equal(t, "ada@example.edu", entry["to"])
	assert.Equal(t, "Package #47 is waiting at North Hall", entry["subject"])

	body, _ := entry["body"].(string)
	assert.Contains(t, body, "Hi Ada Lovelace")
	assert.Contains(t, body, "#47")
	assert.Contains(t, body, "  Monday: 9-17\n  Friday: 10-14")
	assert.Contains(t, body, "Bring your student card.")
}

func TestLogNotifier_PackageRetrieved(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2026, 3, 2, 15, 4, 0, 0, time.UTC)
	err := newNotifier(&buf).PackageRetrieved(context.Background(), ports.PackageNotice{
		MailroomName:  "North Hall",
		ResidentName:  "Ada Lovelace",
		ResidentEmail: "ada@example.edu",
		PackageNumber: 3,
		Provider:      "DHL",
		OccurredAt:    at,
	})
	require.NoError(t, err)

	body, _ := decode(t, &buf)["body"].(string)
	assert.Contains(t, body, "Package #3 (DHL) was picked up from North Hall on Mon, 02 Mar 2026 15:04 UTC.")
	assert.NotContains(t, body, "Pickup hours")
}

func TestLogNotifier_InvitationCreated(t *testing.T) {
	var buf bytes.Buffer
	err := newNotifier(&buf).InvitationCreated(context.Background(), ports.InvitationNotice{
		InvitationID: "inv-1",
		Email:        "clerk@example.edu",
		Role:         "MANAGER",
		ExpiresAt:    time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	entry := decode(t, &buf)
	assert.Equal(t, "clerk@example.edu", entry["to"])
	assert.Contains(t, entry["body"], "as MANAGER")
}

func TestLogNotifier_RequiresRecipient(t *testing.T) {
	var buf bytes.Buffer
	err := newNotifier(&buf).PackageArrived(context.Background(), ports.PackageNotice{PackageNumber: 1})
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}
