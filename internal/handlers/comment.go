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

type CommentHandler struct {
	commentService services.CommentService
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateComment godoc
// @Summary Добавить комментарий к посту
// @Description Существование поста проверяется до разбора тела запроса
// @Tags comments
// @Accept json
// @Produce json
// @Param post_id path int true "ID поста"
// @Param input body models.CreateCommentRequest true "Данные комментария"
// @Success 201 {object} models.Comment
// @Failure 400 {object} models.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/posts/{post_id}/comments/ [post]
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(mux.Vars(r)["post_id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Blog post not found")
		return
	}
	logger.Log.Info("Запрос на создание комментария", zap.Int64("post_id", postID))

	// Сначала существование поста, потом тело: клиент с битым JSON
	// к несуществующему посту получает 404, а не 400.
	exists, err := h.commentService.PostExists(r.Context(), postID)
	if err != nil {
		logger.Log.Error("Ошибка проверки поста", zap.Error(err), zap.Int64("post_id", postID))
		helpers.Error(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}
	if !exists {
		logger.Log.Warn("Пост для комментария не найден", zap.Int64("post_id", postID))
		helpers.Error(w, http.StatusNotFound, "Blog post not found")
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании комментария", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	comment, err := h.commentService.Create(r.Context(), postID, req)
	if err != nil {
		var ve models.ValidationErrors
		if errors.As(err, &ve) {
			logger.Log.Warn("Валидация комментария не пройдена", zap.Error(ve))
			helpers.JSON(w, http.StatusBadRequest, ve)
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			helpers.Error(w, http.StatusNotFound, "Blog post not found")
			return
		}
		logger.Log.Error("Ошибка создания комментария", zap.Error(err), zap.Int64("post_id", postID))
		helpers.Error(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	logger.Log.Info("Комментарий успешно создан", zap.Int64("id", comment.ID), zap.Int64("post_id", postID))
	helpers.JSON(w, http.StatusCreated, comment)
}
