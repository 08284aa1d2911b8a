package routes

import (
	"blogapi/internal/handlers"
	"blogapi/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	postHandler *handlers.PostHandler,
	commentHandler *handlers.CommentHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()

	// Канонические пути — со слэшем на конце, запрос без слэша
	// редиректится (StrictSlash на роутере).
	api.HandleFunc("/posts/", postHandler.ListPosts).Methods("GET")
	api.HandleFunc("/posts/", postHandler.CreatePost).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}/", postHandler.GetPost).Methods("GET")
	api.HandleFunc("/posts/{post_id:[0-9]+}/comments/", commentHandler.CreateComment).Methods("POST")
}
