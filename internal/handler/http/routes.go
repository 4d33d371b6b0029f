package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/token", h.token)
		r.Post("/api/auth/logout", h.logout)
	})

	// owner-scoped todo routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/api/todo", func(r chi.Router) {
			r.Get("/", h.listTodos)
			r.Post("/", h.createTodo)
			r.Get("/{id}", h.getTodo)
			r.Put("/{id}", h.updateTodo)
			r.Delete("/{id}", h.deleteTodo)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
