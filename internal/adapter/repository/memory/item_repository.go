package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type ItemRepository struct {
	mu    sync.RWMutex
	seq   atomic.Int64
	items map[int64]domain.Item
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[int64]domain.Item)}
}

// stored copies the item so callers never share the RequestID pointer with the map.
func stored(item domain.Item) domain.Item {
	if item.RequestID != nil {
		id := *item.RequestID
		item.RequestID = &id
	}
	return item
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.seq.Add(1)
	r.items[item.ID] = stored(*item)
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	it = stored(it)
	return &it, nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	r.items[item.ID] = stored(*item)
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, itemID)
	return nil
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	return r.list(func(it *domain.Item) bool { return it.OwnerID == ownerID }), nil
}

func (r *ItemRepository) ListByRequest(ctx context.Context, requestID int64) ([]domain.Item, error) {
	return r.list(func(it *domain.Item) bool {
		return it.RequestID != nil && *it.RequestID == requestID
	}), nil
}

func (r *ItemRepository) Search(ctx context.Context, text string) ([]domain.Item, error) {
	needle := strings.ToLower(text)
	return r.list(func(it *domain.Item) bool {
		return it.Available &&
			(strings.Contains(strings.ToLower(it.Name), needle) ||
				strings.Contains(strings.ToLower(it.Description), needle))
	}), nil
}

func (r *ItemRepository) list(match func(*domain.Item) bool) []domain.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []domain.Item
	for _, it := range r.items {
		if match(&it) {
			res = append(res, stored(it))
		}
	}

	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })

	return res
}
