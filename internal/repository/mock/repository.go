// Package mock — репозитории в памяти для тестов, без Postgres.
package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

// CommentRepository хранит комментарии в map.
type CommentRepository struct {
	mu       sync.RWMutex
	comments map[int64]*models.Comment
	nextID   int64
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[int64]*models.Comment),
		nextID:   1,
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *c
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()
	r.nextID++
	r.comments[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*models.Comment, 0)
	for _, c := range r.comments {
		if c.BlogPostID == postID {
			cc := *c
			list = append(list, &cc)
		}
	}
	// Сначала новые; при равном времени — по убыванию id.
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *CommentRepository) countByPost(postID int64) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, c := range r.comments {
		if c.BlogPostID == postID {
			n++
		}
	}
	return n
}

// PostRepository хранит посты в map. Счётчики комментариев
// берёт из CommentRepository, как SQL-реализация из join'а.
type PostRepository struct {
	mu       sync.RWMutex
	posts    map[int64]*models.BlogPost
	nextID   int64
	comments *CommentRepository
}

func NewPostRepository(comments *CommentRepository) *PostRepository {
	return &PostRepository{
		posts:    make(map[int64]*models.BlogPost),
		nextID:   1,
		comments: comments,
	}
}

func (r *PostRepository) Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	stored := *p
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.nextID++
	r.posts[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *p
	return &out, nil
}

func (r *PostRepository) List(ctx context.Context, limit, offset int) ([]*models.BlogPostListItem, error) {
	r.mu.RLock()
	all := make([]*models.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		all = append(all, p)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	list := make([]*models.BlogPostListItem, 0)
	for i := offset; i < len(all) && i < offset+limit; i++ {
		p := all[i]
		list = append(list, &models.BlogPostListItem{
			ID:           p.ID,
			Title:        p.Title,
			CommentCount: r.comments.countByPost(p.ID),
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		})
	}
	return list, nil
}

func (r *PostRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts), nil
}

func (r *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.posts[id]
	return ok, nil
}
