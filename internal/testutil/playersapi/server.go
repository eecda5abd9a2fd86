// Package playersapi provides an in-memory /players API for tests.
package playersapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/aidar/player-manager/internal/domain"
)

// Request records one call received by the server.
type Request struct {
	Method      string
	Path        string
	ContentType string
}

// Server is a fake players API backed by an ordered slice.
type Server struct {
	mu       sync.Mutex
	players  []domain.Player
	requests []Request
	failNext int

	srv *httptest.Server
}

// New starts a fake API seeded with players.
func New(players ...domain.Player) *Server {
	s := &Server{players: append([]domain.Player(nil), players...)}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Route("/players", func(r chi.Router) {
		r.Get("/", s.list)
		r.Post("/", s.create)
		r.Put("/{name}", s.update)
		r.Delete("/{name}", s.delete)
	})

	s.srv = httptest.NewServer(r)
	return s
}

// URL returns the collection endpoint.
func (s *Server) URL() string {
	return s.srv.URL + "/players"
}

// Close shuts the server down.
func (s *Server) Close() {
	s.srv.Close()
}

// Players returns a copy of the stored players.
func (s *Server) Players() []domain.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Player(nil), s.players...)
}

// Requests returns the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// FailNext makes the next call answer with the given status.
func (s *Server) FailNext(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = status
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			ContentType: r.Header.Get("Content-Type"),
		})
		status := s.failNext
		s.failNext = 0
		s.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.Players())
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var p domain.Player
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(p.Name) >= 0 {
		w.WriteHeader(http.StatusConflict)
		return
	}
	s.players = append(s.players, p)

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, p)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	var p domain.Player
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(chi.URLParam(r, "name"))
	if i < 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if j := s.indexOf(p.Name); j >= 0 && j != i {
		w.WriteHeader(http.StatusConflict)
		return
	}
	s.players[i] = p

	render.JSON(w, r, p)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(chi.URLParam(r, "name"))
	if i < 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	s.players = append(s.players[:i], s.players[i+1:]...)

	render.JSON(w, r, map[string]int{"affectedRows": 1})
}

func (s *Server) indexOf(name string) int {
	for i, p := range s.players {
		if p.Name == name {
			return i
		}
	}
	return -1
}
