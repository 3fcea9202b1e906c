package queries

import (
	"context"
	"time"

	"mailroom/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetPackagesQueryHandler struct {
	db *gorm.DB
}

func NewGetPackagesQueryHandler(db *gorm.DB) GetPackagesQueryHandler {
	return GetPackagesQueryHandler{db: db}
}

func (h GetPackagesQueryHandler) Handle(ctx context.Context, query GetPackagesQuery) ([]PackageView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := query.StatusNames()
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
		WHERE p.mailroom_id = ?
		  AND (cardinality(?::text[]) = 0 OR p.status = ANY(?::text[]))
		ORDER BY p.created_at DESC, p.package_number
		LIMIT ?
	`, query.MailroomID().Bytes(), pq.Array(statuses), pq.Array(statuses), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPackageViews(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanPackageViews(rows rowScanner) ([]PackageView, error) {
	views := make([]PackageView, 0)
	for rows.Next() {
		var (
			view           PackageView
			id, residentID uuid.UUID
			status         string
			retrievedAt    *time.Time
			pickupStaffID  *uuid.UUID
		)

		if err := rows.Scan(
			&id,
			&residentID,
			&view.ResidentName,
			&view.StudentID,
			&view.PackageNumber,
			&view.Provider,
			&status,
			&view.CreatedAt,
			&retrievedAt,
			&pickupStaffID,
		); err != nil {
			return nil, err
		}

		var err error
		if view.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if view.ResidentID, err = toKernelUUID(residentID); err != nil {
			return nil, err
		}
		if view.PickupStaffID, err = toKernelUUIDPtr(pickupStaffID); err != nil {
			return nil, err
		}
		if view.Status, err = parcel.ParseStatus(status); err != nil {
			return nil, err
		}
		view.CreatedAt = view.CreatedAt.UTC()
		if retrievedAt != nil {
			utc := retrievedAt.UTC()
			view.RetrievedAt = &utc
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}
