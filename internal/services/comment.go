package services

import (
	"context"

	"go.uber.org/zap"

	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type CommentService interface {
	PostExists(ctx context.Context, postID int64) (bool, error)
	Create(ctx context.Context, postID int64, req models.CreateCommentRequest) (*models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *commentService) PostExists(ctx context.Context, postID int64) (bool, error) {
	log := logger.WithCtx(ctx)

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		log.Error("Ошибка проверки существования поста (repo)", zap.Int64("post_id", postID), zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Create добавляет комментарий к посту. Сначала проверяется,
// что пост существует, и только потом валидируется тело.
func (s *commentService) Create(ctx context.Context, postID int64, req models.CreateCommentRequest) (*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание комментария", zap.Int64("post_id", postID), zap.String("author", req.AuthorName))

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		log.Error("Ошибка проверки существования поста (repo)", zap.Int64("post_id", postID), zap.Error(err))
		return nil, err
	}
	if !exists {
		log.Warn("Пост для комментария не найден", zap.Int64("post_id", postID))
		return nil, repository.ErrNotFound
	}

	if ve := req.Validate(); ve != nil {
		log.Warn("Валидация не пройдена: комментарий", zap.Error(ve))
		return nil, ve
	}

	created, err := s.commentRepo.Create(ctx, &models.Comment{
		BlogPostID: postID,
		AuthorName: req.AuthorName,
		Content:    req.Content,
	})
	if err != nil {
		log.Error("Ошибка создания комментария (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Комментарий создан", zap.Int64("id", created.ID), zap.Int64("post_id", postID))
	return created, nil
}
