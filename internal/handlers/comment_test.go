package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/models"
)

func TestCreateComment_Success(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post, err := env.postRepo.Create(ctx, &models.BlogPost{Title: "Пост", Content: "Содержимое поста"})
	require.NoError(t, err)

	rec := env.do("POST", fmt.Sprintf("/api/posts/%d/comments/", post.ID),
		`{"author_name": "Иван Петров", "content": "Отличный пост!"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "Иван Петров", body["author_name"])
	assert.Equal(t, "Отличный пост!", body["content"])
	assert.NotEmpty(t, body["created_at"])

	// Привязка к посту наружу не отдаётся.
	assert.NotContains(t, body, "blog_post_id")
}

func TestCreateComment_Validation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post, err := env.postRepo.Create(ctx, &models.BlogPost{Title: "Пост", Content: "Содержимое поста"})
	require.NoError(t, err)

	rec := env.do("POST", fmt.Sprintf("/api/posts/%d/comments/", post.ID),
		`{"author_name": "И", "content": "ок"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body, "author_name")
	assert.Contains(t, body, "content")

	comments, err := env.commentRepo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 0)
}

func TestCreateComment_PostNotFound(t *testing.T) {
	env := newTestEnv()

	rec := env.do("POST", "/api/posts/99/comments/",
		`{"author_name": "Иван", "content": "Комментарий в пустоту"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Blog post not found", body["error"])
}

// Отсутствующий пост важнее невалидного тела.
func TestCreateComment_PostNotFoundBeatsValidation(t *testing.T) {
	env := newTestEnv()

	rec := env.do("POST", "/api/posts/99/comments/", `{"author_name": "", "content": ""}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Blog post not found", body["error"])
}

// Отсутствующий пост важнее даже битого JSON: тело не разбирается,
// пока пост не найден.
func TestCreateComment_PostNotFoundBeatsBadJSON(t *testing.T) {
	env := newTestEnv()

	rec := env.do("POST", "/api/posts/99/comments/", `{"author_name": `)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Blog post not found", body["error"])
}

func TestCreateComment_BadJSON(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post, err := env.postRepo.Create(ctx, &models.BlogPost{Title: "Пост", Content: "Содержимое поста"})
	require.NoError(t, err)

	rec := env.do("POST", fmt.Sprintf("/api/posts/%d/comments/", post.ID), `{"author_name": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid JSON body", body["error"])
}

func TestCreateComment_TrimsFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post, err := env.postRepo.Create(ctx, &models.BlogPost{Title: "Пост", Content: "Содержимое поста"})
	require.NoError(t, err)

	rec := env.do("POST", fmt.Sprintf("/api/posts/%d/comments/", post.ID),
		`{"author_name": "  Иван  ", "content": "  Содержательный комментарий  "}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Иван", body["author_name"])
	assert.Equal(t, "Содержательный комментарий", body["content"])
}
