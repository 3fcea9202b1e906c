package queries_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func TestNewGetMailroomBySlugQuery(t *testing.T) {
	orgID := kernel.NewUUID()

	q, err := queries.NewGetMailroomBySlugQuery(orgID, "  North-Hall ")
	require.NoError(t, err)
	assert.Equal(t, "north-hall", q.Slug())
	assert.NoError(t, q.Validate())

	_, err = queries.NewGetMailroomBySlugQuery(orgID, " ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetMailroomBySlugQuery(kernel.UUID{}, "north")
	require.Error(t, err)
}

func TestNewGetPackagesQuery(t *testing.T) {
	mailroomID := kernel.NewUUID()

	q, err := queries.NewGetPackagesQuery(mailroomID, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultPageSize, q.Limit())
	assert.Empty(t, q.StatusNames())
	assert.NotNil(t, q.StatusNames())

	q, err = queries.NewGetPackagesQuery(mailroomID, []parcel.Status{parcel.Waiting, parcel.Retrieved}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"WAITING", "RETRIEVED"}, q.StatusNames())

	_, err = queries.NewGetPackagesQuery(mailroomID, []parcel.Status{parcel.Unknown}, 10)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetPackagesQuery(mailroomID, nil, queries.MaxPageSize+1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewSearchResidentsQuery_NormalizesTerm(t *testing.T) {
	q, err := queries.NewSearchResidentsQuery(kernel.NewUUID(), "  Ada   LOVELACE ", 0)
	require.NoError(t, err)
	assert.Equal(t, "ada lovelace", q.Term())
	assert.Equal(t, queries.DefaultSearchLimit, q.Limit())

	_, err = queries.NewSearchResidentsQuery(kernel.NewUUID(), "", -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestQueries_ZeroValueIsNotConstructed(t *testing.T) {
	ctx := context.Background()

	_, err := queries.NewGetPoolUsageQueryHandler(nil).Handle(ctx, queries.GetPoolUsageQuery{})
	require.ErrorIs(t, err, queries.ErrGetPoolUsageQueryIsNotConstructed)

	_, err = queries.NewGetPackagesQueryHandler(nil).Handle(ctx, queries.GetPackagesQuery{})
	require.ErrorIs(t, err, queries.ErrGetPackagesQueryIsNotConstructed)

	_, err = queries.NewSearchResidentsQueryHandler(nil).Handle(ctx, queries.SearchResidentsQuery{})
	require.ErrorIs(t, err, queries.ErrSearchResidentsQueryIsNotConstructed)

	_, err = queries.NewGetResidentWaitingPackagesQueryHandler(nil).
		Handle(ctx, queries.GetResidentWaitingPackagesQuery{})
	require.ErrorIs(t, err, queries.ErrGetResidentWaitingPackagesQueryIsNotConstructed)

	_, err = queries.NewGetMailroomBySlugQueryHandler(nil, nil, time.Minute, slog.Default()).
		Handle(ctx, queries.GetMailroomBySlugQuery{})
	require.ErrorIs(t, err, queries.ErrGetMailroomBySlugQueryIsNotConstructed)
}

func TestGetMailroomBySlug_CacheHitSkipsDatabase(t *testing.T) {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	mailroomID := kernel.NewUUID()
	q, err := queries.NewGetMailroomBySlugQuery(orgID, "north")
	require.NoError(t, err)

	payload, err := json.Marshal(map[string]any{
		"id":             mailroomID.String(),
		"organizationId": orgID.String(),
		"slug":           "north",
		"name":           "North Hall",
		"status":         "ACTIVE",
		"poolSize":       999,
		"pickupOption":   "RESIDENT_ID",
		"hours":          map[string]string{"monday": "9-5"},
	})
	require.NoError(t, err)

	cache := &MockCache{}
	cache.On("Get", mock.Anything, ports.MailroomSlugKey(orgID, "north")).Return(payload, nil)

	// A nil database would panic if the handler fell through to SQL.
	view, err := queries.NewGetMailroomBySlugQueryHandler(nil, cache, time.Minute, slog.Default()).Handle(ctx, q)
	require.NoError(t, err)
	assert.True(t, mailroomID.IsEqual(view.ID))
	assert.Equal(t, "North Hall", view.Name)
	assert.Equal(t, map[string]string{"monday": "9-5"}, view.Hours)
	cache.AssertExpectations(t)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
