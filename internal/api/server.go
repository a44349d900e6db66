// Package api exposes the attendance service over HTTP: dataset upload,
// normalization, per-day reports and Excel export.
package api

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"asistencia/internal/config"
	"asistencia/internal/normalize"
	"asistencia/internal/report"
	"asistencia/internal/schedule"
)

type Server struct {
	store     *Store
	horarios  schedule.Config
	norm      *normalize.Normalizer
	cache     *report.Cache
	logger    zerolog.Logger
	maxUpload int64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func NewServer(cfg *config.Config, rdb *redis.Client, logger zerolog.Logger) *Server {
	return &Server{
		store:     NewStore(),
		horarios:  cfg.Horarios,
		norm:      normalize.New(cfg.Horarios, logger),
		cache:     report.NewCache(rdb, cfg.CacheTTL()),
		logger:    logger,
		maxUpload: cfg.MaxUploadBytes(),
		limiters:  make(map[string]*rate.Limiter),
		rps:       rate.Limit(cfg.Server.RateLimitRPS),
		burst:     cfg.Server.RateLimitBurst,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/datasets", s.limit(s.handleCreateDataset))
	mux.HandleFunc("GET /api/datasets", s.limit(s.handleListDatasets))
	mux.HandleFunc("PUT /api/datasets/{id}/mapping", s.limit(s.handleUpdateMapping))
	mux.HandleFunc("GET /api/datasets/{id}/events", s.limit(s.handleEvents))
	mux.HandleFunc("GET /api/datasets/{id}/employees", s.limit(s.handleEmployees))
	mux.HandleFunc("GET /api/datasets/{id}/report", s.limit(s.handleReport))
	mux.HandleFunc("GET /api/datasets/{id}/export", s.limit(s.handleExport))
	return mux
}

// limit applies a per-client token bucket before the handler runs.
func (s *Server) limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiterFor(r).Allow() {
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next(w, r)
	}
}

func (s *Server) limiterFor(r *http.Request) *rate.Limiter {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	lim, ok := s.limiters[host]
	if !ok {
		lim = rate.NewLimiter(s.rps, s.burst)
		s.limiters[host] = lim
	}
	return lim
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
