package queries

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cachedMailroom is the cache payload of a MailroomView.
type cachedMailroom struct {
	ID                  string            `json:"id"`
	OrganizationID      string            `json:"organizationId"`
	Slug                string            `json:"slug"`
	Name                string            `json:"name"`
	Status              string            `json:"status"`
	PoolSize            int               `json:"poolSize"`
	PickupOption        string            `json:"pickupOption"`
	Hours               map[string]string `json:"hours,omitempty"`
	EmailAdditionalText string            `json:"emailAdditionalText,omitempty"`
	AdminEmail          string            `json:"adminEmail,omitempty"`
}

// GetMailroomBySlugQueryHandler reads a mailroom cache-aside: a cache hit
// never touches the database, a miss loads the row and fills the cache.
// Cache failures degrade to a database read.
type GetMailroomBySlugQueryHandler struct {
	db     *gorm.DB
	cache  ports.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewGetMailroomBySlugQueryHandler accepts a nil cache when caching is disabled.
func NewGetMailroomBySlugQueryHandler(
	db *gorm.DB,
	cache ports.Cache,
	ttl time.Duration,
	logger *slog.Logger,
) GetMailroomBySlugQueryHandler {
	return GetMailroomBySlugQueryHandler{
		db:     db,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "get_mailroom_by_slug"),
	}
}

func (h GetMailroomBySlugQueryHandler) Handle(ctx context.Context, query GetMailroomBySlugQuery) (MailroomView, error) {
	if err := query.Validate(); err != nil {
		return MailroomView{}, err
	}

	key := ports.MailroomSlugKey(query.OrganizationID(), query.Slug())
	if view, ok := h.fromCache(ctx, key); ok {
		return view, nil
	}

	view, err := h.load(ctx, query)
	if err != nil {
		return MailroomView{}, err
	}

	h.toCache(ctx, key, view)
	return view, nil
}

func (h GetMailroomBySlugQueryHandler) load(ctx context.Context, query GetMailroomBySlugQuery) (MailroomView, error) {
	var row struct {
		ID                  uuid.UUID
		OrganizationID      uuid.UUID
		Slug                string
		Name                string
		Status              string
		PoolSize            int
		PickupOption        string
		MailroomHours       []byte
		EmailAdditionalText string
		AdminEmail          string
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			organization_id,
			slug,
			name,
			status,
			pool_size,
			pickup_option,
			mailroom_hours,
			email_additional_text,
			admin_email
		FROM mailrooms
		WHERE organization_id = ? AND slug = ?
	`, query.OrganizationID().Bytes(), query.Slug()).Scan(&row)
	if result.Error != nil {
		return MailroomView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return MailroomView{}, errs.NewObjectNotFoundError("mailroom", query.Slug())
	}

	id, err := toKernelUUID(row.ID)
	if err != nil {
		return MailroomView{}, err
	}
	orgID, err := toKernelUUID(row.OrganizationID)
	if err != nil {
		return MailroomView{}, err
	}

	var hours map[string]string
	if len(row.MailroomHours) > 0 {
		if err = json.Unmarshal(row.MailroomHours, &hours); err != nil {
			return MailroomView{}, err
		}
	}

	return MailroomView{
		ID:                  id,
		OrganizationID:      orgID,
		Slug:                row.Slug,
		Name:                row.Name,
		Status:              row.Status,
		PoolSize:            row.PoolSize,
		PickupOption:        row.PickupOption,
		Hours:               hours,
		EmailAdditionalText: row.EmailAdditionalText,
		AdminEmail:          row.AdminEmail,
	}, nil
}

func (h GetMailroomBySlugQueryHandler) fromCache(ctx context.Context, key string) (MailroomView, bool) {
	if h.cache == nil {
		return MailroomView{}, false
	}

	raw, err := h.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			h.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		}
		return MailroomView{}, false
	}

	var entry cachedMailroom
	if err = json.Unmarshal(raw, &entry); err != nil {
		h.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key, "error", err)
		return MailroomView{}, false
	}
	id, idErr := kernel.UUIDFromString(entry.ID)
	orgID, orgErr := kernel.UUIDFromString(entry.OrganizationID)
	if idErr != nil || orgErr != nil {
		return MailroomView{}, false
	}

	return MailroomView{
		ID:                  id,
		OrganizationID:      orgID,
		Slug:                entry.Slug,
		Name:                entry.Name,
		Status:              entry.Status,
		PoolSize:            entry.PoolSize,
		PickupOption:        entry.PickupOption,
		Hours:               entry.Hours,
		EmailAdditionalText: entry.EmailAdditionalText,
		AdminEmail:          entry.AdminEmail,
	}, true
}

func (h GetMailroomBySlugQueryHandler) toCache(ctx context.Context, key string, view MailroomView) {
	if h.cache == nil {
		return
	}

	raw, err := json.Marshal(cachedMailroom{
		ID:                  view.ID.String(),
		OrganizationID:      view.OrganizationID.String(),
		Slug:                view.Slug,
		Name:                view.Name,
		Status:              view.Status,
		PoolSize:            view.PoolSize,
		PickupOption:        view.PickupOption,
		Hours:               view.Hours,
		EmailAdditionalText: view.EmailAdditionalText,
		AdminEmail:          view.AdminEmail,
	})
	if err != nil {
		return
	}
	if err = h.cache.Set(ctx, key, raw, h.ttl); err != nil {
		h.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}
