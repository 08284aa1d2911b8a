package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Схема сервиса: две таблицы, каскадное удаление комментариев,
// индексы под выборку "сначала новые". Все выражения идемпотентны,
// поэтому Migrate можно гонять на каждом старте.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id         BIGSERIAL PRIMARY KEY,
		title      TEXT        NOT NULL,
		content    TEXT        NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_blog_posts_created_at
		ON blog_posts (created_at DESC, id DESC)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id           BIGSERIAL PRIMARY KEY,
		blog_post_id BIGINT      NOT NULL REFERENCES blog_posts (id) ON DELETE CASCADE,
		author_name  TEXT        NOT NULL,
		content      TEXT        NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_comments_post_created
		ON comments (blog_post_id, created_at DESC, id DESC)`,
}

// Migrate накатывает схему при запуске приложения.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, m := range migrations {
		if _, err := pool.Exec(ctx, m); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
