package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetResidentWaitingPackagesQueryHandler lists WAITING packages of one
// resident, oldest first so staff hand over the longest-held parcel first.
// Residents of other mailrooms yield an empty list.
type GetResidentWaitingPackagesQueryHandler struct {
	db *gorm.DB
}

func NewGetResidentWaitingPackagesQueryHandler(db *gorm.DB) GetResidentWaitingPackagesQueryHandler {
	return GetResidentWaitingPackagesQueryHandler{db: db}
}

func (h GetResidentWaitingPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetResidentWaitingPackagesQuery,
) ([]PackageView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.resident_id,
			r.first_name || ' ' || r.last_name,
			r.student_id,
			p.package_number,
			p.provider,
			p.status,
			p.created_at,
			p.retrieved_timestamp,
			p.pickup_staff_id
		FROM packages p
		JOIN residents r ON r.id = p.resident_id
		WHERE p.mailroom_id = ? AND p.resident_id = ? AND p.status = 'WAITING'
		ORDER BY p.created_at, p.package_number
	`, query.MailroomID().Bytes(), query.ResidentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPackageViews(rows)
}
