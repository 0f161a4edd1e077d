package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type RequestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, request *domain.ItemRequest) error {
	query := `
	INSERT INTO requests (requester_id, text, description, created_at)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		request.RequesterID,
		request.Text,
		request.Description,
		request.Created,
	).Scan(&request.ID)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}

	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, requestID int64) (*domain.ItemRequest, error) {
	query := `SELECT id, requester_id, text, description, created_at FROM requests WHERE id = $1`

	req, err := scanRequest(r.db.QueryRowContext(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return req, nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	return r.list(ctx, `WHERE requester_id = $1`, userID)
}

func (r *RequestRepository) ListExcludingRequester(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	return r.list(ctx, `WHERE requester_id <> $1`, userID)
}

func (r *RequestRepository) list(ctx context.Context, where string, args ...any) ([]domain.ItemRequest, error) {
	query := `SELECT id, requester_id, text, description, created_at FROM requests ` + where +
		` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}

	defer rows.Close()

	var requests []domain.ItemRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}

		requests = append(requests, *req)
	}

	return requests, rows.Err()
}

func scanRequest(row rowScanner) (*domain.ItemRequest, error) {
	var req domain.ItemRequest
	if err := row.Scan(&req.ID, &req.RequesterID, &req.Text, &req.Description, &req.Created); err != nil {
		return nil, err
	}

	req.Created = req.Created.UTC()
	return &req, nil
}
