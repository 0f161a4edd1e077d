package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/shareit/internal/core/domain"
)

const (
	KeyBooking = "booking:%d"
	TTLBooking = 5 * time.Minute
)

func NewRedisClient(addr string, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

type bookingEntry struct {
	ID        int64                `json:"id"`
	ItemID    int64                `json:"item_id"`
	RenterID  int64                `json:"renter_id"`
	OwnerID   int64                `json:"owner_id"`
	Start     time.Time            `json:"start"`
	End       time.Time            `json:"end"`
	Status    domain.BookingStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func toEntry(b *domain.Booking) bookingEntry {
	return bookingEntry{
		ID:        b.ID,
		ItemID:    b.ItemID,
		RenterID:  b.RenterID,
		OwnerID:   b.OwnerID,
		Start:     b.Start,
		End:       b.End,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (e bookingEntry) booking() *domain.Booking {
	return &domain.Booking{
		ID:        e.ID,
		ItemID:    e.ItemID,
		RenterID:  e.RenterID,
		OwnerID:   e.OwnerID,
		Start:     e.Start.UTC(),
		End:       e.End.UTC(),
		Status:    e.Status,
		CreatedAt: e.CreatedAt.UTC(),
		UpdatedAt: e.UpdatedAt.UTC(),
	}
}

// BookingCache keeps booking records in Redis. Failures are logged and
// reported as misses so reads fall through to the store.
type BookingCache struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewBookingCache(rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) *BookingCache {
	if ttl <= 0 {
		ttl = TTLBooking
	}
	return &BookingCache{rdb: rdb, ttl: ttl, logger: logger}
}

func bookingKey(id int64) string {
	return fmt.Sprintf(KeyBooking, id)
}

func (c *BookingCache) Get(ctx context.Context, bookingID int64) (*domain.Booking, bool) {
	raw, err := c.rdb.Get(ctx, bookingKey(bookingID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "booking cache read failed",
				slog.Int64("booking_id", bookingID),
				slog.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var e bookingEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		c.logger.WarnContext(ctx, "booking cache entry corrupt",
			slog.Int64("booking_id", bookingID),
			slog.String("error", err.Error()),
		)
		return nil, false
	}

	return e.booking(), true
}

// Add fills an empty key with SETNX. An existing entry always wins.
func (c *BookingCache) Add(ctx context.Context, b *domain.Booking) {
	raw, err := json.Marshal(toEntry(b))
	if err != nil {
		c.logger.WarnContext(ctx, "encode booking", slog.String("error", err.Error()))
		return
	}

	if err := c.rdb.SetNX(ctx, bookingKey(b.ID), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "booking cache fill failed",
			slog.Int64("booking_id", b.ID),
			slog.String("error", err.Error()),
		)
	}
}

// Set overwrites the entry. If the write fails the key is deleted so no
// older record survives it.
func (c *BookingCache) Set(ctx context.Context, b *domain.Booking) {
	key := bookingKey(b.ID)

	raw, err := json.Marshal(toEntry(b))
	if err == nil {
		err = c.rdb.Set(ctx, key, raw, c.ttl).Err()
	}
	if err == nil {
		return
	}

	c.logger.WarnContext(ctx, "booking cache write failed",
		slog.Int64("booking_id", b.ID),
		slog.String("error", err.Error()),
	)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.logger.ErrorContext(ctx, "booking cache entry may be stale",
			slog.Int64("booking_id", b.ID),
			slog.String("error", err.Error()),
		)
	}
}
