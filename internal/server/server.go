// Package server exposes the cube engine over an HTTP API. It owns the
// single authoritative State of the application: all mutation goes
// through one mutex (the engine itself mandates a single writer), and
// every change fans out to SSE subscribers through a broadcaster.
package server

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubeview"
	"github.com/SeamusWaldron/cubeview/internal/solver"
	"github.com/SeamusWaldron/cubeview/internal/storage"
)

// Server holds the authoritative cube state and its collaborators.
type Server struct {
	mu     sync.Mutex
	state  *cubeview.State
	events *Broadcaster

	solver      solver.Solver
	snapshots   *storage.SnapshotRepository
	solves      *storage.SolveRepository
	scrambleLen int
	rng         *rand.Rand

	log zerolog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithSolver wires the external solver collaborator. Without it the solve
// endpoint reports the service as unavailable.
func WithSolver(s solver.Solver) Option {
	return func(srv *Server) {
		srv.solver = s
	}
}

// WithStore wires snapshot and solve persistence.
func WithStore(db *storage.DB) Option {
	return func(srv *Server) {
		srv.snapshots = storage.NewSnapshotRepository(db)
		srv.solves = storage.NewSolveRepository(db)
	}
}

// WithScrambleLength sets the default scramble length.
func WithScrambleLength(n int) Option {
	return func(srv *Server) {
		if n > 0 {
			srv.scrambleLen = n
		}
	}
}

// WithRand sets the scramble randomness source, mainly for tests.
func WithRand(rng *rand.Rand) Option {
	return func(srv *Server) {
		srv.rng = rng
	}
}

// New creates a server owning a fresh solved state.
func New(log zerolog.Logger, opts ...Option) *Server {
	srv := &Server{
		state:       cubeview.NewState(),
		events:      NewBroadcaster(),
		scrambleLen: 20,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		log:         log.With().Str("module", "server").Logger(),
	}
	for _, opt := range opts {
		opt(srv)
	}

	// Bridge engine change events to SSE subscribers.
	srv.state.OnChange(func(c cubeview.Change) {
		srv.events.Publish(changeEvent(c))
	})

	return srv
}

// changeEvent encodes a change notification as an SSE payload.
func changeEvent(c cubeview.Change) string {
	switch c.Kind {
	case cubeview.ChangeFace:
		return fmt.Sprintf(`{"kind":"face","face":%q}`, c.Face.String())
	case cubeview.ChangeSticker:
		return fmt.Sprintf(`{"kind":"sticker","face":%q,"row":%d,"col":%d}`, c.Face.String(), c.Row, c.Col)
	default:
		return `{"kind":"state"}`
	}
}

// Router builds the HTTP API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/state", s.handleGetState)
		r.Put("/state", s.handleLoadState)
		r.Post("/state/reset", s.handleReset)
		r.Post("/face", s.handleSetFace)
		r.Post("/sticker", s.handleSetSticker)
		r.Post("/moves", s.handleApplyMoves)
		r.Post("/scramble", s.handleScramble)
		r.Post("/solve", s.handleSolve)
		r.Post("/detect-colors", s.handleDetectColors)
		r.Get("/events", s.handleEvents)
	})

	return r
}

// ListenAndServe runs the API until the server fails.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      0, // SSE connections stay open
		IdleTimeout:       60 * time.Second,
	}
	s.log.Info().Str("addr", addr).Msg("listening")
	return httpSrv.ListenAndServe()
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
