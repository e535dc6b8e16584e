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
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/forms/{formID}", func(r chi.Router) {
		// respondent routes, no authorization
		r.Get("/", h.getForm)
		r.Get("/questions", h.getQuestions)
		r.Post("/responses", h.submitResponse)

		// owner routes
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Put("/", h.publishForm)
			r.Get("/responses", h.listResponses)
		})
	})

	router.NotFound(CheckHTTPMethod)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
