package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quote-crm/backend/internal/app/config"
	"quote-crm/backend/internal/app/http/handlers"
	"quote-crm/backend/internal/app/http/middleware"
	"quote-crm/backend/internal/domain/quote/book"
	"quote-crm/backend/internal/domain/quote/pdf"
)

func NewRouter(cfg config.Config, b *book.Book, gen pdf.Generator) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(b, gen)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))

		r.Get("/quotes", h.ListQuotes)
		r.Post("/quotes", h.SaveQuote)
		r.Post("/quotes/import", h.ImportQuotes)
		r.Get("/quotes/{id}", h.GetQuote)
		r.Put("/quotes/{id}", h.UpdateQuote)
		r.Get("/quotes/{id}/pdf", h.QuotePDF)
		r.Post("/quotes/{id}/approval", h.RequestApproval)
		r.Post("/quotes/{id}/approval/decision", h.DecideApproval)
	})

	return r
}
