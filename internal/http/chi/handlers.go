package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/locallibrary/author"
	"github.com/marcelsud/locallibrary/genre"
	"github.com/marcelsud/locallibrary/language"
	"github.com/rs/zerolog"
)

// Services groups the use cases exposed over HTTP
type Services struct {
	Languages language.UseCase
	Genres    genre.UseCase
	Authors   author.UseCase
}

// Handlers builds the catalog router. Extra middlewares (metrics) run after request logging
func Handlers(logger zerolog.Logger, s Services, middlewares ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	// httplog.RequestLogger would chain chi's own RequestID and replace ours
	r.Use(requestID)
	r.Use(httplog.Handler(logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewares...)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	r.Method(http.MethodGet, "/languages/", getLanguages(s.Languages))
	r.Method(http.MethodPost, "/languages/", postLanguage(s.Languages))
	r.Method(http.MethodGet, "/languages/{id}/", getLanguage(s.Languages))
	r.Method(http.MethodPut, "/languages/{id}/", putLanguage(s.Languages))
	r.Method(http.MethodDelete, "/languages/{id}/", deleteLanguage(s.Languages))

	r.Method(http.MethodGet, "/genres/", getGenres(s.Genres))
	r.Method(http.MethodPost, "/genres/", postGenre(s.Genres))
	r.Method(http.MethodGet, "/genres/{id}/", getGenre(s.Genres))
	r.Method(http.MethodPut, "/genres/{id}/", putGenre(s.Genres))
	r.Method(http.MethodDelete, "/genres/{id}/", deleteGenre(s.Genres))

	r.Method(http.MethodGet, "/authors/", getAuthors(s.Authors))
	r.Method(http.MethodPost, "/authors/", postAuthor(s.Authors))
	r.Method(http.MethodGet, "/authors/{id}/", getAuthor(s.Authors))
	r.Method(http.MethodPut, "/authors/{id}/", putAuthor(s.Authors))
	r.Method(http.MethodDelete, "/authors/{id}/", deleteAuthor(s.Authors))

	return r
}

// NewLogger returns the service logger shared by the router and the commands
func NewLogger(level string, json bool) zerolog.Logger {
	return httplog.NewLogger("locallibrary", httplog.Options{
		JSON:     json,
		LogLevel: level,
		Concise:  !json,
	})
}
