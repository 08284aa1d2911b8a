package services

import (
	"context"

	"go.uber.org/zap"

	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

// PageSize — фиксированный размер страницы списка постов.
const PageSize = 20

type PostService interface {
	List(ctx context.Context, page int) ([]*models.BlogPostListItem, int, error)
	Create(ctx context.Context, req models.CreateBlogPostRequest) (*models.BlogPostDetail, error)
	GetWithComments(ctx context.Context, id int64) (*models.BlogPostDetail, error)
}

type postService struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
}

func NewPostService(postRepo repository.PostRepo, commentRepo repository.CommentRepo) PostService {
	return &postService{postRepo: postRepo, commentRepo: commentRepo}
}

func (s *postService) List(ctx context.Context, page int) ([]*models.BlogPostListItem, int, error) {
	log := logger.WithCtx(ctx)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	log.Debug("Получение списка постов",
		zap.Int("page", page),
		zap.Int("limit", PageSize),
		zap.Int("offset", offset),
	)

	items, err := s.postRepo.List(ctx, PageSize, offset)
	if err != nil {
		log.Error("Ошибка получения списка постов (repo)", zap.Error(err))
		return nil, 0, err
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		log.Error("Ошибка подсчёта постов (repo)", zap.Error(err))
		return nil, 0, err
	}

	log.Debug("Список постов получен", zap.Int("count", len(items)), zap.Int("total", total))
	return items, total, nil
}

func (s *postService) Create(ctx context.Context, req models.CreateBlogPostRequest) (*models.BlogPostDetail, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание поста", zap.String("title", req.Title))

	if ve := req.Validate(); ve != nil {
		log.Warn("Валидация не пройдена: пост", zap.Error(ve))
		return nil, ve
	}

	created, err := s.postRepo.Create(ctx, &models.BlogPost{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		log.Error("Ошибка создания поста (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Пост создан", zap.Int64("id", created.ID))
	return &models.BlogPostDetail{
		ID:           created.ID,
		Title:        created.Title,
		Content:      created.Content,
		Comments:     []*models.Comment{},
		CommentCount: 0,
		CreatedAt:    created.CreatedAt,
		UpdatedAt:    created.UpdatedAt,
	}, nil
}

func (s *postService) GetWithComments(ctx context.Context, id int64) (*models.BlogPostDetail, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение поста по ID", zap.Int64("id", id))

	p, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Пост не найден (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		log.Error("Ошибка получения комментариев (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	log.Debug("Пост получен", zap.Int64("id", id), zap.Int("comments", len(comments)))
	return &models.BlogPostDetail{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		Comments:     comments,
		CommentCount: len(comments),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}
