package redis_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	rediscache "parceltrack/internal/adapters/out/redis"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTrackParcelHandler struct{ mock.Mock }

func (m *MockTrackParcelHandler) Handle(
	ctx context.Context, query queries.TrackParcelQuery,
) (queries.TrackParcelQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.TrackParcelQueryResponse), args.Error(1)
}

func newTestCache(t *testing.T, ttl time.Duration) (*rediscache.TrackingCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return rediscache.NewTrackingCache(client, ttl), srv
}

func sampleView(t *testing.T) queries.TrackParcelQueryResponse {
	t.Helper()

	notes := "Package created and awaiting pickup"
	return queries.TrackParcelQueryResponse{
		TrackingNumber:    "AB12345678",
		Status:            parcel.Pending,
		EstimatedDelivery: time.Now().Add(72 * time.Hour).Truncate(time.Second),
		History: []queries.TrackParcelHistoryEntry{
			{
				Status:    parcel.Pending,
				Notes:     &notes,
				Timestamp: time.Now().Truncate(time.Second),
			},
		},
	}
}

func TestTrackingCache_SetThenGet(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	view := sampleView(t)
	require.NoError(t, cache.Set(ctx, view))

	trackingNumber, err := kernel.TrackingNumberFromString(view.TrackingNumber)
	require.NoError(t, err)

	cached, err := cache.Get(ctx, trackingNumber)
	require.NoError(t, err)
	require.NotNil(t, cached)
	require.Equal(t, view.TrackingNumber, cached.TrackingNumber)
	require.Equal(t, view.Status, cached.Status)
	require.Len(t, cached.History, 1)
	require.NotNil(t, cached.History[0].Notes)
}

func TestTrackingCache_Get_Miss(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	trackingNumber, err := kernel.TrackingNumberFromString("ZZ00000000")
	require.NoError(t, err)

	cached, err := cache.Get(context.Background(), trackingNumber)
	require.NoError(t, err)
	require.Nil(t, cached)
}

func TestTrackingCache_EntryExpires(t *testing.T) {
	cache, srv := newTestCache(t, time.Second)
	ctx := context.Background()

	view := sampleView(t)
	require.NoError(t, cache.Set(ctx, view))

	srv.FastForward(2 * time.Second)

	trackingNumber, err := kernel.TrackingNumberFromString(view.TrackingNumber)
	require.NoError(t, err)

	cached, err := cache.Get(ctx, trackingNumber)
	require.NoError(t, err)
	require.Nil(t, cached)
}

func TestCachedTrackParcelQueryHandler_MissLoadsAndCaches(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	view := sampleView(t)
	trackingNumber, err := kernel.TrackingNumberFromString(view.TrackingNumber)
	require.NoError(t, err)

	query, err := queries.NewTrackParcelQuery(trackingNumber)
	require.NoError(t, err)

	inner := new(MockTrackParcelHandler)
	inner.On("Handle", mock.Anything, query).Return(view, nil).Once()

	handler := rediscache.NewCachedTrackParcelQueryHandler(inner, cache, slog.Default())

	// First call loads from the inner handler
	got, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	require.Equal(t, view.TrackingNumber, got.TrackingNumber)

	// Second call is served from the cache; the mock allows only one inner call
	got, err = handler.Handle(ctx, query)
	require.NoError(t, err)
	require.Equal(t, view.TrackingNumber, got.TrackingNumber)

	inner.AssertExpectations(t)
}

func TestCachedTrackParcelQueryHandler_ErrorsAreNotCached(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	trackingNumber, err := kernel.TrackingNumberFromString("ZZ00000000")
	require.NoError(t, err)

	query, err := queries.NewTrackParcelQuery(trackingNumber)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())

	inner := new(MockTrackParcelHandler)
	inner.On("Handle", mock.Anything, query).
		Return(queries.TrackParcelQueryResponse{}, notFound).Twice()

	handler := rediscache.NewCachedTrackParcelQueryHandler(inner, cache, slog.Default())

	_, err = handler.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	// A failed lookup leaves nothing behind, so the next call hits the inner handler again
	_, err = handler.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	inner.AssertExpectations(t)
}
