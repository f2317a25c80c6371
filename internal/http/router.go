package router

import (
	"net/http"
	"todo-api/internal/http/handlers"
	"todo-api/internal/http/middleware"

	"github.com/charmbracelet/log"
)

func New(handler *handlers.TodoHandler, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /todos", handler.List)
	mux.HandleFunc("GET /todos/export", handler.Export)
	mux.HandleFunc("GET /todos/{id}", handler.Get)
	mux.HandleFunc("POST /todos", handler.Create)
	mux.HandleFunc("DELETE /todos/{id}", handler.Delete)

	return middleware.Chain(mux,
		middleware.Logging(logger),
		middleware.RedirectPrefix("/tasks/", "/todos/"),
	)
}
