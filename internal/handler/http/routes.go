package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(withTimeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Get("/confirm/{token}", h.confirm)
		r.Post("/token", h.login)
	})

	router.Route("/posts", func(r chi.Router) {
		r.Get("/", h.listPosts)
		r.Get("/{postID}", h.getPostWithComments)
		r.Get("/{postID}/comments", h.listComments)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createPost)
			r.Post("/comments", h.createComment)
			r.Post("/like", h.likePost)
		})
	})

	router.With(h.auth).Get("/users/me", h.currentUser)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
