package main

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/cours-de-latin/pali"
	"github.com/cours-de-latin/pali/internal/config"
)

const requestIDHeader = "X-Request-Id"

func newMux(e *pali.Engine) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/lemmatize", handleLemmatize(e))
	mux.HandleFunc("/api/analyze", handleAnalyze(e))
	mux.HandleFunc("/api/generate", handleGenerate(e))
	mux.HandleFunc("/api/stem", handleStem(e))
	mux.HandleFunc("/api/merge", handleMerge(e))
	mux.HandleFunc("/api/split", handleSplit(e))
	mux.HandleFunc("/api/compound", handleCompound(e))
	mux.HandleFunc("/health", handleHealth)
	return mux
}

// newHandler wraps the routes, outermost first, in request identification,
// access logging, CORS and rate limiting.
func newHandler(e *pali.Engine, conf config.ServerConfig) http.Handler {
	var h http.Handler = newMux(e)
	if conf.RateLimit > 0 {
		h = newRateLimiter(rate.Limit(conf.RateLimit), conf.RateBurst).middleware(h)
	}
	h = cors.New(cors.Options{
		AllowedOrigins: conf.Origins(),
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(h)
	return withRequestID(withAccessLog(h))
}

// withRequestID reuses the caller's request id or makes a new one, and
// puts a logger carrying it into the request context.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		logger := log.With().Str("requestId", id).Logger()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t0 := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		zerolog.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", rec.status).
			Dur("duration", time.Since(t0)).
			Msg("request")
	})
}

// rateLimiter keeps one token bucket per client IP.
type rateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newRateLimiter(limit rate.Limit, burst int) *rateLimiter {
	return &rateLimiter{limit: limit, burst: burst, limiters: make(map[string]*rate.Limiter)}
}

func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	limiter, exists := rl.limiters[clientIP]
	if !exists {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[clientIP] = limiter
	}
	return limiter.Allow()
}

func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := extractClientIP(r)
		if !rl.allow(clientIP) {
			zerolog.Ctx(r.Context()).Debug().Str("clientIp", clientIP).Msg("limiting client with status 429")
			writeError(w, r, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
