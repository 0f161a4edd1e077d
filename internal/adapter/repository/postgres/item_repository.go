package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/srgjo27/shareit/internal/core/domain"
)

const itemColumns = `id, owner_id, name, description, available, request_id, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `
	INSERT INTO items (owner_id, name, description, available, request_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		item.OwnerID,
		item.Name,
		item.Description,
		item.Available,
		nullableID(item.RequestID),
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}

		return nil, fmt.Errorf("scan item: %w", err)
	}

	return item, nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	query := `
	UPDATE items
	SET name = $1,
		description = $2,
		available = $3,
		updated_at = $4
	WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query, item.Name, item.Description, item.Available, item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, itemID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, itemID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return fmt.Errorf("%w: item is still referenced", domain.ErrInvalidState)
		}
		return fmt.Errorf("delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	return r.list(ctx, `WHERE owner_id = $1`, ownerID)
}

func (r *ItemRepository) ListByRequest(ctx context.Context, requestID int64) ([]domain.Item, error) {
	return r.list(ctx, `WHERE request_id = $1`, requestID)
}

func (r *ItemRepository) Search(ctx context.Context, text string) ([]domain.Item, error) {
	pattern := "%" + likeEscaper.Replace(text) + "%"
	return r.list(ctx, `WHERE available AND (name ILIKE $1 OR description ILIKE $1)`, pattern)
}

func (r *ItemRepository) list(ctx context.Context, where string, args ...any) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ` + where + ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}

		items = append(items, *it)
	}

	return items, rows.Err()
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var (
		item      domain.Item
		requestID sql.NullInt64
	)
	err := row.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Name,
		&item.Description,
		&item.Available,
		&requestID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if requestID.Valid {
		id := requestID.Int64
		item.RequestID = &id
	}

	return &item, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
