package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/services"
	"blogapi/internal/utils/helpers"
)

type PostHandler struct {
	postService services.PostService
}

func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// ListPosts godoc
// @Summary Список постов
// @Description Страницы по 20 постов, сначала новые, без поля content
// @Tags posts
// @Produce json
// @Param page query int false "Номер страницы"
// @Success 200 {object} helpers.Page{results=[]models.BlogPostListItem}
// @Failure 500 {object} map[string]string
// @Router /api/posts/ [get]
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page := helpers.ParsePage(r)
	logger.Log.Info("Запрос на список постов", zap.Int("page", page))

	items, total, err := h.postService.List(r.Context(), page)
	if err != nil {
		logger.Log.Error("Ошибка получения списка постов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	logger.Log.Info("Список постов получен", zap.Int("count", len(items)), zap.Int("total", total))
	helpers.JSON(w, http.StatusOK, helpers.NewPage(r, total, page, services.PageSize, items))
}

// CreatePost godoc
// @Summary Создать пост
// @Tags posts
// @Accept json
// @Produce json
// @Param input body models.CreateBlogPostRequest true "Данные поста"
// @Success 201 {object} models.BlogPostDetail
// @Failure 400 {object} models.ValidationErrors
// @Router /api/posts/ [post]
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	logger.Log.Info("Запрос на создание поста")

	var req models.CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании поста", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	detail, err := h.postService.Create(r.Context(), req)
	if err != nil {
		var ve models.ValidationErrors
		if errors.As(err, &ve) {
			logger.Log.Warn("Валидация поста не пройдена", zap.Error(ve))
			helpers.JSON(w, http.StatusBadRequest, ve)
			return
		}
		logger.Log.Error("Ошибка создания поста", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	logger.Log.Info("Пост успешно создан", zap.Int64("id", detail.ID))
	helpers.JSON(w, http.StatusCreated, detail)
}

// GetPost godoc
// @Summary Получить пост по ID
// @Description Полное представление: содержимое и комментарии, сначала новые
// @Tags posts
// @Produce json
// @Param id path int true "ID поста"
// @Success 200 {object} models.BlogPostDetail
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id}/ [get]
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Blog post not found")
		return
	}
	logger.Log.Info("Запрос на получение поста", zap.Int64("id", id))

	detail, err := h.postService.GetWithComments(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Log.Warn("Пост не найден", zap.Int64("id", id))
			helpers.Error(w, http.StatusNotFound, "Blog post not found")
			return
		}
		logger.Log.Error("Ошибка получения поста", zap.Error(err), zap.Int64("id", id))
		helpers.Error(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	logger.Log.Info("Пост получен", zap.Int64("id", id))
	helpers.JSON(w, http.StatusOK, detail)
}
