package transport

import (
	"net/http"
	"puzreader/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MaxUploadBytes caps request bodies; real .puz files are a few kilobytes.
const MaxUploadBytes = 1024 * 1024

type Server struct {
	Service *app.Service
	Router  *chi.Mux
}

func NewServer(svc *app.Service) *Server {
	s := &Server{
		Service: svc,
		Router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Use(middleware.Logger)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
			next.ServeHTTP(w, r)
		})
	})

	s.Router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})

	s.Router.Get("/puzzles", s.handleListPuzzles)
	s.Router.Post("/puzzles/import", s.handleImportPuzzle)
	s.Router.Get("/puzzles/{id}", s.handleViewPuzzle)
	s.Router.Get("/puzzles/{id}/grid", s.handleRenderPuzzle)
	s.Router.Delete("/puzzles/{id}", s.handleDeletePuzzle)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
