package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogapi/internal/models"
)

type PostRepo interface {
	Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	List(ctx context.Context, limit, offset int) ([]*models.BlogPostListItem, error)
	Count(ctx context.Context) (int, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type postRepo struct{ db *pgxpool.Pool }

func NewPostRepo(db *pgxpool.Pool) PostRepo { return &postRepo{db: db} }

func (r *postRepo) Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	const q = `
		INSERT INTO blog_posts (title, content)
		VALUES ($1, $2)
		RETURNING id, title, content, created_at, updated_at
	`

	var out models.BlogPost
	err := r.db.QueryRow(ctx, q, p.Title, p.Content).Scan(
		&out.ID,
		&out.Title,
		&out.Content,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	out.CreatedAt = out.CreatedAt.UTC()
	out.UpdatedAt = out.UpdatedAt.UTC()
	return &out, nil
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	const q = `
		SELECT id, title, content, created_at, updated_at
		FROM blog_posts WHERE id=$1
	`
	var p models.BlogPost
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}

// List отдаёт страницу постов без содержимого, сначала новые.
// Счётчик комментариев считается на каждом запросе: кеша нет.
func (r *postRepo) List(ctx context.Context, limit, offset int) ([]*models.BlogPostListItem, error) {
	qb := sq.Select(
		"p.id",
		"p.title",
		"COUNT(c.id) AS comment_count",
		"p.created_at",
		"p.updated_at",
	).
		From("blog_posts p").
		LeftJoin("comments c ON c.blog_post_id = p.id").
		GroupBy("p.id").
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(sq.Dollar)

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*models.BlogPostListItem, 0)
	for rows.Next() {
		var item models.BlogPostListItem
		if err := rows.Scan(
			&item.ID, &item.Title, &item.CommentCount, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		item.CreatedAt = item.CreatedAt.UTC()
		item.UpdatedAt = item.UpdatedAt.UTC()
		list = append(list, &item)
	}
	return list, rows.Err()
}

func (r *postRepo) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM blog_posts`
	var n int
	if err := r.db.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *postRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM blog_posts WHERE id = $1)`
	var ok bool
	if err := r.db.QueryRow(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
