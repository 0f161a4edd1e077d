package domain

import "time"

// ItemRequest asks other users for an item that is not listed yet.
type ItemRequest struct {
	ID          int64
	RequesterID int64
	Text        string
	Description string
	Created     time.Time
}

type CreateRequestInput struct {
	Text        string
	Description string
}

// RequestView lists the items other users offered in answer.
type RequestView struct {
	ID          int64      `json:"id"`
	Text        string     `json:"text"`
	Description string     `json:"description"`
	Created     string     `json:"created"`
	Items       []ItemView `json:"items"`
}
