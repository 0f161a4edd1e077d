package domain

import (
	"time"
)

type Item struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	// RequestID links the item to the request it answers, if any.
	RequestID   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (i *Item) IsAvailable() bool {
	return i.Available
}

func (i *Item) Summary() ItemSummary {
	return ItemSummary{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
	}
}

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateItemInput carries a partial update; nil fields are left untouched.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemView struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	OwnerID     int64         `json:"ownerId"`
	RequestID   *int64        `json:"requestId"`
	LastBooking *string       `json:"lastBooking"`
	NextBooking *string       `json:"nextBooking"`
	Comments    []CommentView `json:"comments"`
}

// BookingDates are the end of the latest finished booking and the start of
// the earliest upcoming one. Either may be absent.
type BookingDates struct {
	Last *time.Time
	Next *time.Time
}
