package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// slack lets a plan that hits its own deadline answer 504 before the
// server-wide timeout handler cuts it off.
const slack = 5 * time.Second

type Server struct{ mux *chi.Mux }

// New builds the router. planTimeout bounds a single plan request.
func New(log zerolog.Logger, planTimeout time.Duration) *Server {
	m := chi.NewRouter()

	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(planTimeout + slack))
	m.Use(Instrument(log))

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
