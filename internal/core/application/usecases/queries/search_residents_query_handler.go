package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SearchResidentsQueryHandler struct {
	db *gorm.DB
}

func NewSearchResidentsQueryHandler(db *gorm.DB) SearchResidentsQueryHandler {
	return SearchResidentsQueryHandler{db: db}
}

// Handle returns ACTIVE residents only; removed residents cannot pick up.
func (h SearchResidentsQueryHandler) Handle(ctx context.Context, query SearchResidentsQuery) ([]ResidentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	prefix := query.likePrefix()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.first_name,
			r.last_name,
			r.student_id,
			r.email,
			(
				SELECT count(*)
				FROM packages p
				WHERE p.resident_id = r.id AND p.status = 'WAITING'
			)
		FROM residents r
		WHERE r.mailroom_id = ?
		  AND r.status = 'ACTIVE'
		  AND (
			lower(r.first_name) LIKE ?
			OR lower(r.last_name) LIKE ?
			OR lower(r.first_name || ' ' || r.last_name) LIKE ?
			OR lower(r.student_id) LIKE ?
		  )
		ORDER BY r.last_name, r.first_name, r.student_id
		LIMIT ?
	`, query.MailroomID().Bytes(), prefix, prefix, prefix, prefix, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	residents := make([]ResidentView, 0)
	for rows.Next() {
		var (
			view ResidentView
			id   uuid.UUID
		)
		if err = rows.Scan(&id, &view.FirstName, &view.LastName, &view.StudentID, &view.Email,
			&view.WaitingPackages); err != nil {
			return nil, err
		}
		if view.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		residents = append(residents, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return residents, nil
}
