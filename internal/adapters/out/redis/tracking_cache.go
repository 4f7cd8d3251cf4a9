// Package redis provides a read-through cache for the public tracking lookup.
// The tracking endpoint is the one unauthenticated high-read surface, so its
// view is cached under a short TTL; staleness is bounded by the TTL and the
// view is rebuilt from the database on every miss.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// DefaultTrackingTTL bounds how stale a cached tracking view can get.
const DefaultTrackingTTL = 30 * time.Second

// TrackingCache stores serialized tracking views in Redis keyed by tracking number.
type TrackingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrackingCache creates a tracking view cache.
// A non-positive ttl falls back to DefaultTrackingTTL.
func NewTrackingCache(client *redis.Client, ttl time.Duration) *TrackingCache {
	if ttl <= 0 {
		ttl = DefaultTrackingTTL
	}
	return &TrackingCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached view for the tracking number, or nil on a miss.
func (c *TrackingCache) Get(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
) (*queries.TrackParcelQueryResponse, error) {
	payload, err := c.client.Get(ctx, trackingKey(trackingNumber)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var view queries.TrackParcelQueryResponse
	if err = json.Unmarshal(payload, &view); err != nil {
		return nil, err
	}

	return &view, nil
}

// Set stores the view under the cache TTL.
func (c *TrackingCache) Set(ctx context.Context, view queries.TrackParcelQueryResponse) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(view.TrackingNumber)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, trackingKey(trackingNumber), payload, c.ttl).Err()
}

func trackingKey(trackingNumber kernel.TrackingNumber) string {
	return fmt.Sprintf("tracking:%s", trackingNumber)
}

// trackParcelHandler is the database-backed lookup being decorated.
type trackParcelHandler interface {
	Handle(ctx context.Context, query queries.TrackParcelQuery) (queries.TrackParcelQueryResponse, error)
}

// CachedTrackParcelQueryHandler decorates the tracking lookup with the cache.
// Cache failures are logged and fall through to the database, so a Redis
// outage degrades latency but never correctness.
type CachedTrackParcelQueryHandler struct {
	inner  trackParcelHandler
	cache  *TrackingCache
	logger *slog.Logger
}

// NewCachedTrackParcelQueryHandler wraps a tracking lookup handler with the cache.
func NewCachedTrackParcelQueryHandler(
	inner trackParcelHandler,
	cache *TrackingCache,
	logger *slog.Logger,
) CachedTrackParcelQueryHandler {
	return CachedTrackParcelQueryHandler{
		inner:  inner,
		cache:  cache,
		logger: logger,
	}
}

// Handle serves the view from the cache when present, otherwise loads it from
// the database and caches the result.
func (h CachedTrackParcelQueryHandler) Handle(
	ctx context.Context,
	query queries.TrackParcelQuery,
) (queries.TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return queries.TrackParcelQueryResponse{}, err
	}

	cached, err := h.cache.Get(ctx, query.TrackingNumber())
	if err != nil {
		h.logger.Warn("tracking cache read failed",
			"trackingNumber", query.TrackingNumber().String(), "error", err)
	}
	if cached != nil {
		return *cached, nil
	}

	view, err := h.inner.Handle(ctx, query)
	if err != nil {
		return queries.TrackParcelQueryResponse{}, err
	}

	if err = h.cache.Set(ctx, view); err != nil {
		h.logger.Warn("tracking cache write failed",
			"trackingNumber", query.TrackingNumber().String(), "error", err)
	}

	return view, nil
}
