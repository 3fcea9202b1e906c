package postgres

import (
	"fmt"

	"mailroom/internal/adapters/out/postgres/invitationrepo"
	"mailroom/internal/adapters/out/postgres/mailroomrepo"
	"mailroom/internal/adapters/out/postgres/packagerepo"
	"mailroom/internal/adapters/out/postgres/residentrepo"
	"mailroom/internal/adapters/out/postgres/slotrepo"

	"gorm.io/gorm"
)

// indexes that gorm tags cannot express.
var indexes = []string{
	// At most one WAITING package per (mailroom, number).
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_packages_waiting_number
		ON packages (mailroom_id, package_number) WHERE status = 'WAITING'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_residents_mailroom_student
		ON residents (mailroom_id, lower(student_id))`,
	// At most one PENDING invitation per email in an organization.
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_invitations_pending_email
		ON invitations (organization_id, lower(email)) WHERE status = 'PENDING'`,
	`CREATE INDEX IF NOT EXISTS idx_slots_available
		ON package_number_slots (mailroom_id, package_number) WHERE is_available`,
}

// Migrate creates or updates every table and index the service uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&mailroomrepo.MailroomDTO{},
		&slotrepo.SlotDTO{},
		&residentrepo.ResidentDTO{},
		&packagerepo.PackageDTO{},
		&invitationrepo.InvitationDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
