package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"blogapi/internal/models"
)

type CommentRepo interface {
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error)
}

type commentRepo struct{ db *pgxpool.Pool }

func NewCommentRepo(db *pgxpool.Pool) CommentRepo { return &commentRepo{db: db} }

func (r *commentRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	const q = `
		INSERT INTO comments (blog_post_id, author_name, content)
		VALUES ($1, $2, $3)
		RETURNING id, blog_post_id, author_name, content, created_at
	`

	var out models.Comment
	err := r.db.QueryRow(ctx, q, c.BlogPostID, c.AuthorName, c.Content).Scan(
		&out.ID,
		&out.BlogPostID,
		&out.AuthorName,
		&out.Content,
		&out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	out.CreatedAt = out.CreatedAt.UTC()
	return &out, nil
}

// ListByPost отдаёт все комментарии поста, сначала новые.
func (r *commentRepo) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	const q = `
		SELECT id, blog_post_id, author_name, content, created_at
		FROM comments
		WHERE blog_post_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, q, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(
			&c.ID, &c.BlogPostID, &c.AuthorName, &c.Content, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		c.CreatedAt = c.CreatedAt.UTC()
		list = append(list, &c)
	}
	return list, rows.Err()
}
