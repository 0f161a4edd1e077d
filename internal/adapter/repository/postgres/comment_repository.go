package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
	INSERT INTO comments (item_id, author_id, text, created_at)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, comment.ItemID, comment.AuthorID, comment.Text, comment.Created).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	return nil
}

// ListByItem returns comments oldest first, with the author's current name.
func (r *CommentRepository) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	query := `
	SELECT c.id, c.item_id, c.author_id, u.name, c.text, c.created_at
	FROM comments c
	JOIN users u ON u.id = c.author_id
	WHERE c.item_id = $1
	ORDER BY c.created_at, c.id
	`

	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}

	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Text, &c.Created); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}

		comments = append(comments, c)
	}

	return comments, rows.Err()
}
