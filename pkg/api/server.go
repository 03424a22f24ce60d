package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/khalid-nowaf/lexicon/pkg/lexicon"
)

// Server exposes one Lexicon over HTTP. The lexicon itself is not safe
// for concurrent use, so the server funnels every call through a single
// read-write lock; that one boundary is what keeps the tree and its
// word count consistent under concurrent requests.
type Server struct {
	mu     sync.RWMutex
	lex    *lexicon.Lexicon
	server *http.Server
	logger zerolog.Logger
}

// NewServer wires the routes for the given lexicon.
func NewServer(addr string, lex *lexicon.Lexicon, logger zerolog.Logger) *Server {
	s := &Server{
		lex:    lex,
		logger: logger,
	}

	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/words", s.listWords).Methods("GET")
	r.HandleFunc("/words", s.clearWords).Methods("DELETE")
	r.HandleFunc("/words/{word}", s.checkWord).Methods("GET")
	r.HandleFunc("/words/{word}", s.addWord).Methods("PUT")
	r.HandleFunc("/words/{word}", s.removeWord).Methods("DELETE")
	r.HandleFunc("/prefixes/{prefix}", s.checkPrefix).Methods("GET")
	r.HandleFunc("/prefixes/{prefix}", s.removePrefix).Methods("DELETE")
	r.HandleFunc("/stats", s.stats).Methods("GET")

	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

// Handler returns the HTTP handler, mainly for tests driving the server
// through httptest.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// ListenAndServe blocks serving requests until Shutdown is called or
// the listener fails.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("lexicon server listening")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("lexicon server shutting down")
	return s.server.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respond(w, status, map[string]string{"error": err.Error()})
}

// listWords handles GET /words - every member word, alphabetical.
func (s *Server) listWords(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	words := s.lex.Words()
	s.mu.RUnlock()

	s.respond(w, http.StatusOK, map[string]interface{}{"words": words})
}

// clearWords handles DELETE /words - empty the whole set.
func (s *Server) clearWords(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.lex.Clear()
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// checkWord handles GET /words/{word} - membership as a status code.
func (s *Server) checkWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.RLock()
	member := s.lex.Contains(word)
	s.mu.RUnlock()

	if !member {
		s.respond(w, http.StatusNotFound, map[string]interface{}{"word": word, "member": false})
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{"word": word, "member": true})
}

// addWord handles PUT /words/{word}.
func (s *Server) addWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.Lock()
	err := s.lex.Add(word)
	s.mu.Unlock()

	if err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"word": word})
}

// removeWord handles DELETE /words/{word}.
func (s *Server) removeWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.Lock()
	removed := s.lex.Remove(word)
	s.mu.Unlock()

	if !removed {
		s.respond(w, http.StatusNotFound, map[string]interface{}{"word": word, "member": false})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// checkPrefix handles GET /prefixes/{prefix}.
func (s *Server) checkPrefix(w http.ResponseWriter, r *http.Request) {
	prefix := mux.Vars(r)["prefix"]

	s.mu.RLock()
	live := s.lex.ContainsPrefix(prefix)
	s.mu.RUnlock()

	if !live {
		s.respond(w, http.StatusNotFound, map[string]interface{}{"prefix": prefix, "live": false})
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{"prefix": prefix, "live": true})
}

// removePrefix handles DELETE /prefixes/{prefix} - drops every word
// under the prefix in one subtree detach.
func (s *Server) removePrefix(w http.ResponseWriter, r *http.Request) {
	prefix := mux.Vars(r)["prefix"]

	s.mu.Lock()
	removed := s.lex.RemovePrefix(prefix)
	s.mu.Unlock()

	if !removed {
		s.respond(w, http.StatusNotFound, map[string]interface{}{"prefix": prefix, "live": false})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// stats handles GET /stats.
func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	count := s.lex.WordCount()
	empty := s.lex.IsEmpty()
	s.mu.RUnlock()

	s.respond(w, http.StatusOK, map[string]interface{}{
		"words": count,
		"empty": empty,
	})
}
