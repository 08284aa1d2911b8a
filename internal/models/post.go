package models

import (
	"strings"
	"time"
)

// BlogPost — запись блога, как она хранится в БД.
type BlogPost struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogPostListItem — элемент списка постов: без содержимого,
// но со счётчиком комментариев.
type BlogPostListItem struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BlogPostDetail — полное представление поста: содержимое,
// комментарии (сначала новые) и их количество.
type BlogPostDetail struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Comments     []*Comment `json:"comments"`
	CommentCount int        `json:"comment_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateBlogPostRequest — тело запроса на создание поста.
type CreateBlogPostRequest struct {
	Title   string `json:"title" validate:"required,min=5,max=200" example:"Как устроен пул соединений pgx"`
	Content string `json:"content" validate:"required,min=10" example:"Разбираем настройку pgxpool и типичные ошибки."`
}

// Validate подрезает пробелы по краям и проверяет длины полей.
// Лимиты считаются в символах (рунах), не в байтах.
func (r *CreateBlogPostRequest) Validate() ValidationErrors {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)

	if err := validate.Struct(r); err != nil {
		return collectFieldErrors(err)
	}
	return nil
}
