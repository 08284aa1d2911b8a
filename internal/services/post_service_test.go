package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/repository/mock"
)

func newPostServiceForTest() (PostService, *mock.PostRepository, *mock.CommentRepository) {
	commentRepo := mock.NewCommentRepository()
	postRepo := mock.NewPostRepository(commentRepo)
	return NewPostService(postRepo, commentRepo), postRepo, commentRepo
}

func TestPostService_Create(t *testing.T) {
	svc, _, _ := newPostServiceForTest()

	detail, err := svc.Create(context.Background(), models.CreateBlogPostRequest{
		Title:   "  Первый пост  ",
		Content: "Содержимое первого поста",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), detail.ID)
	assert.Equal(t, "Первый пост", detail.Title)
	assert.Equal(t, "Содержимое первого поста", detail.Content)
	assert.NotNil(t, detail.Comments)
	assert.Len(t, detail.Comments, 0)
	assert.Equal(t, 0, detail.CommentCount)
	assert.False(t, detail.CreatedAt.IsZero())
	assert.False(t, detail.UpdatedAt.IsZero())
}

func TestPostService_Create_Validation(t *testing.T) {
	svc, postRepo, _ := newPostServiceForTest()

	_, err := svc.Create(context.Background(), models.CreateBlogPostRequest{
		Title:   "аб",
		Content: "мало",
	})

	var ve models.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve, "title")
	assert.Contains(t, ve, "content")

	// Невалидный запрос ничего не пишет в хранилище.
	total, err := postRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestPostService_GetWithComments(t *testing.T) {
	svc, postRepo, commentRepo := newPostServiceForTest()
	ctx := context.Background()

	created, err := postRepo.Create(ctx, &models.BlogPost{Title: "Пост", Content: "Содержимое поста"})
	require.NoError(t, err)

	_, err = commentRepo.Create(ctx, &models.Comment{BlogPostID: created.ID, AuthorName: "Анна", Content: "Первый комментарий"})
	require.NoError(t, err)
	_, err = commentRepo.Create(ctx, &models.Comment{BlogPostID: created.ID, AuthorName: "Борис", Content: "Второй комментарий"})
	require.NoError(t, err)

	detail, err := svc.GetWithComments(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, detail.ID)
	assert.Equal(t, "Содержимое поста", detail.Content)
	assert.Equal(t, 2, detail.CommentCount)
	require.Len(t, detail.Comments, 2)
	// Сначала новые.
	assert.Equal(t, "Борис", detail.Comments[0].AuthorName)
	assert.Equal(t, "Анна", detail.Comments[1].AuthorName)
}

func TestPostService_GetWithComments_NotFound(t *testing.T) {
	svc, _, _ := newPostServiceForTest()

	_, err := svc.GetWithComments(context.Background(), 42)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestPostService_List_Pagination(t *testing.T) {
	svc, postRepo, _ := newPostServiceForTest()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := postRepo.Create(ctx, &models.BlogPost{Title: "Очередной пост", Content: "Содержимое поста"})
		require.NoError(t, err)
	}

	items, total, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	require.Len(t, items, 20)
	// Новые выше: на первой странице последний созданный пост.
	assert.Equal(t, int64(25), items[0].ID)

	items, total, err = svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, items, 5)

	// Страница за пределами данных: пусто, но не ошибка.
	items, total, err = svc.List(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, items, 0)
}

func TestPostService_List_CommentCountLive(t *testing.T) {
	svc, postRepo, commentRepo := newPostServiceForTest()
	ctx := context.Background()

	created, err := postRepo.Create(ctx, &models.BlogPost{Title: "Пост со счётчиком", Content: "Содержимое поста"})
	require.NoError(t, err)

	items, _, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].CommentCount)

	_, err = commentRepo.Create(ctx, &models.Comment{BlogPostID: created.ID, AuthorName: "Вера", Content: "Свежий комментарий"})
	require.NoError(t, err)

	// Счётчик пересчитывается на каждом запросе.
	items, _, err = svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].CommentCount)
}
