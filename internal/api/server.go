package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dshills/primus/internal/output"
	"github.com/dshills/primus/internal/prime"
)

// Server handles prime query requests against a shared cache.
type Server struct {
	cache  *prime.Cache
	apiKey string
}

// NewServer creates a Server. An empty apiKey disables authentication.
func NewServer(cache *prime.Cache, apiKey string) *Server {
	return &Server{cache: cache, apiKey: apiKey}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(s.requireAPIKey)
		}
		r.Get("/primes", s.handleBetween)
		r.Get("/primes/nth/{n}", s.handleNth)
		r.Get("/primes/{n}", s.handleCheck)
		r.Get("/primes/{n}/next", s.handleNext)
		r.Get("/primes/{n}/previous", s.handlePrevious)
		r.Get("/factors/{n}", s.handleFactors)
	})

	return r
}

func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != s.apiKey {
			writeError(w, http.StatusUnauthorized, "Invalid or missing API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"cacheSize": s.cache.Size(),
	})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	n, ok := parseParam(r, "n")
	if !ok {
		writeResult(w, output.Absent("check", nil))
		return
	}
	p, found := s.cache.IsPrime(n)
	if !found {
		writeResult(w, output.Absent("check", []uint64{n}))
		return
	}
	writeResult(w, output.Scalar("check", []uint64{n}, p))
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	n, ok := parseParam(r, "n")
	if !ok {
		writeResult(w, output.Absent("next", nil))
		return
	}
	if inclusive(r) {
		writeResult(w, output.Scalar("next", []uint64{n}, s.cache.NextPrimeOrEqual(n)))
		return
	}
	writeResult(w, output.Scalar("next", []uint64{n}, s.cache.NextPrime(n)))
}

func (s *Server) handlePrevious(w http.ResponseWriter, r *http.Request) {
	n, ok := parseParam(r, "n")
	if !ok {
		writeResult(w, output.Absent("previous", nil))
		return
	}
	var p uint64
	var found bool
	if inclusive(r) {
		p, found = s.cache.PreviousPrimeOrEqual(n)
	} else {
		p, found = s.cache.PreviousPrime(n)
	}
	if !found {
		writeResult(w, output.Absent("previous", []uint64{n}))
		return
	}
	writeResult(w, output.Scalar("previous", []uint64{n}, p))
}

func (s *Server) handleBetween(w http.ResponseWriter, r *http.Request) {
	from, okFrom := parseQuery(r, "from")
	to, okTo := parseQuery(r, "to")
	if !okFrom || !okTo {
		writeResult(w, output.Absent("between", nil))
		return
	}
	writeResult(w, output.Sequence("between", []uint64{from, to}, s.cache.Between(from, to)))
}

func (s *Server) handleNth(w http.ResponseWriter, r *http.Request) {
	n, ok := parseParam(r, "n")
	if !ok {
		writeResult(w, output.Absent("nth", nil))
		return
	}
	p, found := s.cache.Nth(n)
	if !found {
		writeResult(w, output.Absent("nth", []uint64{n}))
		return
	}
	writeResult(w, output.Scalar("nth", []uint64{n}, p))
}

func (s *Server) handleFactors(w http.ResponseWriter, r *http.Request) {
	n, ok := parseParam(r, "n")
	if !ok {
		writeResult(w, output.Absent("factor", nil))
		return
	}
	factors := s.cache.Factors(n)
	if factors == nil {
		writeResult(w, output.Absent("factor", []uint64{n}))
		return
	}
	writeResult(w, output.Sequence("factor", []uint64{n}, factors))
}

func parseParam(r *http.Request, name string) (uint64, bool) {
	n, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseQuery(r *http.Request, name string) (uint64, bool) {
	n, err := strconv.ParseUint(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func inclusive(r *http.Request) bool {
	b, err := strconv.ParseBool(r.URL.Query().Get("inclusive"))
	return err == nil && b
}

func writeResult(w http.ResponseWriter, res *output.Result) {
	writeJSON(w, http.StatusOK, res)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
