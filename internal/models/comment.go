package models

import (
	"strings"
	"time"
)

// Comment — комментарий к посту. Привязка к посту наружу не отдаётся:
// клиент и так знает, к какому посту обращался.
type Comment struct {
	ID         int64     `json:"id"`
	BlogPostID int64     `json:"-"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateCommentRequest — тело запроса на создание комментария.
type CreateCommentRequest struct {
	AuthorName string `json:"author_name" validate:"required,min=2,max=100" example:"Иван Петров"`
	Content    string `json:"content" validate:"required,min=5" example:"Отличный разбор, спасибо!"`
}

// Validate подрезает пробелы по краям и проверяет длины полей.
func (r *CreateCommentRequest) Validate() ValidationErrors {
	r.AuthorName = strings.TrimSpace(r.AuthorName)
	r.Content = strings.TrimSpace(r.Content)

	if err := validate.Struct(r); err != nil {
		return collectFieldErrors(err)
	}
	return nil
}
