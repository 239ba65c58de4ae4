package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tempo/internal/storage"
)

// Handler serves the two logical tables of the store over HTTP.
type Handler struct {
	storage storage.Storage
}

// NewHandler creates a handler over the given storage.
func NewHandler(store storage.Storage) *Handler {
	return &Handler{storage: store}
}

// Routes builds the router for the store API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ListProjects)
			r.Post("/", h.CreateProject)
			r.Patch("/{id}", h.UpdateProject)
			r.Delete("/{id}", h.DeleteProject)
			r.Get("/{id}/sessions", h.ListProjectSessions)
			r.Delete("/{id}/sessions", h.DeleteProjectSessions)
		})
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.CreateSession)
			r.Get("/{id}", h.GetSession)
			r.Patch("/{id}", h.UpdateSession)
		})
	})

	return r
}
