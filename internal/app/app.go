package app

import (
	"context"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/handlers"
	"blogapi/internal/repository"
	"blogapi/internal/routes"
	"blogapi/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Схема накатывается при старте, миграции идемпотентны.
	if err := db.Migrate(context.Background(), conn); err != nil {
		return nil, err
	}

	// Репозитории
	postRepo := repository.NewPostRepo(conn)
	commentRepo := repository.NewCommentRepo(conn)

	// Сервисы
	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	// Хендлеры
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// Маршруты
	router := mux.NewRouter().StrictSlash(true)
	routes.InitRoutes(router, postHandler, commentHandler)

	return router, nil
}
