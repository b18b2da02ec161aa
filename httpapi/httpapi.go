// file: radixmap/httpapi/httpapi.go
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/maatini/radixmap/authmw"
	"github.com/maatini/radixmap/radix"
)

// Lookuper is the subset of radix.Map the HTTP surface needs. It is an
// interface, not *radix.Map[K, V] directly, so the handlers stay
// independent of the map's key and value type parameters.
type Lookuper interface {
	LookupString(key string) (string, bool)
	Len() int
}

// StringMap adapts a *radix.Map[radix.StringKey, string] to Lookuper.
type StringMap struct {
	M *radix.Map[radix.StringKey, string]
}

func (s StringMap) LookupString(key string) (string, bool) {
	return s.M.Get(radix.StringKey(key))
}

func (s StringMap) Len() int { return s.M.Len() }

// Server exposes a radix.Map over HTTP: a public lookup/stats surface and
// a JWT-gated reload endpoint that swaps in a freshly rebuilt map.
type Server struct {
	jwtSecret []byte
	current   Lookuper
	reload    func() (Lookuper, error)
}

// New builds a Server over the given map, with reload invoked by the
// gated /reload endpoint to rebuild and hot-swap the active map.
func New(jwtSecret []byte, initial Lookuper, reload func() (Lookuper, error)) *Server {
	return &Server{jwtSecret: jwtSecret, current: initial, reload: reload}
}

// Router builds the chi router for the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/lookup/{key}", s.handleLookup)
	r.Get("/stats", s.handleStats)
	r.Get("/watch", s.handleWatch)

	r.Group(func(r chi.Router) {
		r.Use(authmw.Middleware(s.jwtSecret))
		r.Post("/reload", s.handleReload)
	})

	return r
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value, ok := s.current.LookupString(key)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"key": key, "value": value})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]int{"entries": s.current.Len()})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	next, err := s.reload()
	if err != nil {
		if errors.Is(err, radix.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.current = next
	broadcastReload(next.Len())
	w.WriteHeader(http.StatusNoContent)
}
