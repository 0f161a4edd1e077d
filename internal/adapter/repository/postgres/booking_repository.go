package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/srgjo27/shareit/internal/core/domain"
)

const bookingColumns = `id, item_id, renter_id, owner_id, start_at, end_at, status, created_at, updated_at`

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	query := `
	INSERT INTO bookings (item_id, renter_id, owner_id, start_at, end_at, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		booking.ItemID,
		booking.RenterID,
		booking.OwnerID,
		booking.Start,
		booking.End,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	).Scan(&booking.ID)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
	UPDATE bookings
	SET status = $1, updated_at = $2
	WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, booking.Status, booking.UpdatedAt, booking.ID)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) ListByRenter(ctx context.Context, renterID int64) ([]domain.Booking, error) {
	return r.list(ctx, `WHERE renter_id = $1`, renterID)
}

func (r *BookingRepository) ListByRenterAndStatus(ctx context.Context, renterID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.list(ctx, `WHERE renter_id = $1 AND status = $2`, renterID, status)
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	return r.list(ctx, `WHERE owner_id = $1`, ownerID)
}

func (r *BookingRepository) ListByOwnerAndStatus(ctx context.Context, ownerID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.list(ctx, `WHERE owner_id = $1 AND status = $2`, ownerID, status)
}

func (r *BookingRepository) ExistsCompleted(ctx context.Context, renterID, itemID int64, before time.Time) (bool, error) {
	query := `
	SELECT EXISTS (
		SELECT 1 FROM bookings
		WHERE renter_id = $1 AND item_id = $2 AND end_at < $3
	)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, renterID, itemID, before).Scan(&exists); err != nil {
		return false, fmt.Errorf("check completed booking: %w", err)
	}

	return exists, nil
}

func (r *BookingRepository) ExistsForItem(ctx context.Context, itemID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE item_id = $1)`, itemID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item bookings: %w", err)
	}

	return exists, nil
}

func (r *BookingRepository) DatesForItem(ctx context.Context, itemID int64, now time.Time) (domain.BookingDates, error) {
	query := `
	SELECT MAX(end_at) FILTER (WHERE end_at < $2),
		MIN(start_at) FILTER (WHERE start_at > $2)
	FROM bookings
	WHERE item_id = $1 AND status <> 'REJECTED'
	`

	var last, next sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, itemID, now).Scan(&last, &next); err != nil {
		return domain.BookingDates{}, fmt.Errorf("query booking dates: %w", err)
	}

	var dates domain.BookingDates
	if last.Valid {
		t := last.Time.UTC()
		dates.Last = &t
	}
	if next.Valid {
		t := next.Time.UTC()
		dates.Next = &t
	}

	return dates, nil
}

func (r *BookingRepository) list(ctx context.Context, where string, args ...any) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ` + where + ` ORDER BY start_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}

	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}

		bookings = append(bookings, *b)
	}

	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.ItemID,
		&b.RenterID,
		&b.OwnerID,
		&b.Start,
		&b.End,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Start = b.Start.UTC()
	b.End = b.End.UTC()

	return &b, nil
}
