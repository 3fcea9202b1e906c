package queries

import (
	"context"

	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPoolUsageQueryHandler struct {
	db *gorm.DB
}

func NewGetPoolUsageQueryHandler(db *gorm.DB) GetPoolUsageQueryHandler {
	return GetPoolUsageQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for a mailroom without a pool.
func (h GetPoolUsageQueryHandler) Handle(ctx context.Context, query GetPoolUsageQuery) (PoolUsage, error) {
	if err := query.Validate(); err != nil {
		return PoolUsage{}, err
	}

	var usage PoolUsage
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			count(*),
			count(*) FILTER (WHERE s.is_available),
			count(*) FILTER (WHERE NOT s.is_available),
			(
				SELECT count(*)
				FROM packages p
				WHERE p.mailroom_id = ? AND p.status = 'WAITING'
			)
		FROM package_number_slots s
		WHERE s.mailroom_id = ?
	`, query.MailroomID().Bytes(), query.MailroomID().Bytes()).Row()
	if err := row.Scan(&usage.Total, &usage.Available, &usage.InUse, &usage.Waiting); err != nil {
		return PoolUsage{}, err
	}

	if usage.Total == 0 {
		return PoolUsage{}, errs.NewObjectNotFoundError("mailroom", query.MailroomID())
	}
	return usage, nil
}
