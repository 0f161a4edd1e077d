package domain

import (
	"time"
)

type BookingStatus string

const (
	BookingWaiting  BookingStatus = "WAITING"
	BookingApproved BookingStatus = "APPROVED"
	BookingRejected BookingStatus = "REJECTED"
)

// IsTerminal reports whether the owner has already decided on the booking.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingApproved || s == BookingRejected
}

// DecisionStatus maps the owner's approve flag onto a terminal status.
func DecisionStatus(approve bool) BookingStatus {
	if approve {
		return BookingApproved
	}
	return BookingRejected
}

// Booking reserves one item for one renter over the half-open interval [Start, End).
type Booking struct {
	ID        int64
	ItemID    int64
	RenterID  int64
	OwnerID   int64
	Start     time.Time
	End       time.Time
	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanView reports whether userID is the renter or the owner of the booked item.
func (b *Booking) CanView(userID int64) bool {
	return userID == b.RenterID || userID == b.OwnerID
}

func (b *Booking) IsCurrent(now time.Time) bool {
	return !b.Start.After(now) && now.Before(b.End)
}

func (b *Booking) IsPast(now time.Time) bool {
	return !b.End.After(now)
}

func (b *Booking) IsFuture(now time.Time) bool {
	return b.Start.After(now)
}

type CreateBookingInput struct {
	ItemID int64
	Start  string
	End    string
	Status BookingStatus
}

type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
}

// BookingView is the read model returned for every booking query.
type BookingView struct {
	ID     int64         `json:"id"`
	ItemID int64         `json:"itemId"`
	Status BookingStatus `json:"status"`
	Start  string        `json:"start"`
	End    string        `json:"end"`
	Booker UserSummary   `json:"booker"`
	Item   ItemSummary   `json:"item"`
}
