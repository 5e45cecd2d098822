package wire

import (
	"letterhead-service/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireLetterhead mounts the letterhead CRUD routes. None of them require a token.
func wireLetterhead(r chi.Router, letterheadHandler *adaptor.LetterheadHandler) {
	r.Route("/api/letterheads", func(r chi.Router) {
		r.Post("/", letterheadHandler.CreateLetterhead)
		r.Get("/", letterheadHandler.GetLetterheads) // GET /api/letterheads?email=owner@example.com
		r.Get("/{id}", letterheadHandler.GetLetterheadByID)
		r.Put("/email/{email}", letterheadHandler.UpsertLetterhead)
		r.Delete("/{id}", letterheadHandler.DeleteLetterhead)
	})
}
