package memory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type CommentRepository struct {
	mu       sync.RWMutex
	seq      atomic.Int64
	comments map[int64]domain.Comment
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: make(map[int64]domain.Comment)}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment.ID = r.seq.Add(1)
	r.comments[comment.ID] = *comment
	return nil
}

func (r *CommentRepository) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []domain.Comment
	for _, c := range r.comments {
		if c.ItemID == itemID {
			res = append(res, c)
		}
	}

	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })

	return res, nil
}
