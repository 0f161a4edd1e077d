package memory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type RequestRepository struct {
	mu       sync.RWMutex
	seq      atomic.Int64
	requests map[int64]domain.ItemRequest
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{requests: make(map[int64]domain.ItemRequest)}
}

func (r *RequestRepository) Create(ctx context.Context, request *domain.ItemRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	request.ID = r.seq.Add(1)
	r.requests[request.ID] = *request
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, requestID int64) (*domain.ItemRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[requestID]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return &req, nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	return r.list(func(req *domain.ItemRequest) bool { return req.RequesterID == userID }), nil
}

func (r *RequestRepository) ListExcludingRequester(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	return r.list(func(req *domain.ItemRequest) bool { return req.RequesterID != userID }), nil
}

// list orders newest first, then by id descending.
func (r *RequestRepository) list(match func(*domain.ItemRequest) bool) []domain.ItemRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []domain.ItemRequest
	for _, req := range r.requests {
		if match(&req) {
			res = append(res, req)
		}
	}

	sort.Slice(res, func(i, j int) bool {
		if !res[i].Created.Equal(res[j].Created) {
			return res[i].Created.After(res[j].Created)
		}
		return res[i].ID > res[j].ID
	})

	return res
}
