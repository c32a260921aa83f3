package middleware

import (
	"bytes"
	"encoding/hex"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/crypto/blake2b"
)

// IdempotencyHeader carries the client-chosen replay key
const IdempotencyHeader = "Idempotency-Key"

// IdempotencyStore remembers responses to POST requests that carried an
// Idempotency-Key, so a retried create does not create twice.
type IdempotencyStore struct {
	mu       sync.Mutex
	entries  map[string]*idempotencyEntry
	ttl      time.Duration
	now      func() time.Time
	stopOnce sync.Once
	stopChan chan struct{}
}

type idempotencyEntry struct {
	status    int
	headers   http.Header
	body      []byte
	expiresAt time.Time
	done      chan struct{} // closed once the first request completes
}

func (e *idempotencyEntry) inFlight() bool {
	select {
	case <-e.done:
		return false
	default:
		return true
	}
}

// IdempotencyConfig holds configuration for idempotency middleware
type IdempotencyConfig struct {
	TTL     time.Duration // How long to keep responses (default 24h)
	Cleanup time.Duration // Cleanup interval (default 1h)
}

// NewIdempotencyStore creates a new idempotency store
func NewIdempotencyStore(cfg IdempotencyConfig) *IdempotencyStore {
	if cfg.TTL == 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.Cleanup == 0 {
		cfg.Cleanup = time.Hour
	}

	s := &IdempotencyStore{
		entries:  make(map[string]*idempotencyEntry),
		ttl:      cfg.TTL,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	go s.cleanupLoop(cfg.Cleanup)

	return s
}

// Stop stops the cleanup goroutine
func (s *IdempotencyStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

func (s *IdempotencyStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopChan:
			return
		}
	}
}

func (s *IdempotencyStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if !entry.inFlight() && entry.expiresAt.Before(now) {
			delete(s.entries, key)
		}
	}
}

// fingerprint derives the cache key from the caller, the client key and
// the request itself
// idempotencyCaller pairs the remote host with the identity acting at
// request time, so a replay never crosses a login or role switch.
func idempotencyCaller(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return host + "|" + GetUserID(r.Context())
}

func fingerprint(caller, idempotencyKey, method, path string, body []byte) string {
	h, _ := blake2b.New256(nil)
	for _, part := range []string{caller, idempotencyKey, method, path} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// claim returns the completed entry for key, waiting on an in-flight one.
// When nothing usable exists it registers a new in-flight entry and
// returns it with owner set.
func (s *IdempotencyStore) claim(key string) (entry *idempotencyEntry, owner bool) {
	for {
		s.mu.Lock()
		existing, ok := s.entries[key]
		if !ok || (!existing.inFlight() && !existing.expiresAt.After(s.now())) {
			entry = &idempotencyEntry{done: make(chan struct{})}
			s.entries[key] = entry
			s.mu.Unlock()
			return entry, true
		}
		s.mu.Unlock()

		if !existing.inFlight() {
			return existing, false
		}
		<-existing.done
	}
}

// finish records the outcome of the request that owns entry. Server
// errors are not remembered so a retry runs again.
func (s *IdempotencyStore) finish(key string, entry *idempotencyEntry, rec *idempotencyResponseWriter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.status = rec.status
	entry.headers = rec.Header().Clone()
	entry.body = rec.body.Bytes()
	entry.expiresAt = s.now().Add(s.ttl)
	if rec.status >= http.StatusInternalServerError {
		delete(s.entries, key)
	}
	close(entry.done)
}

// idempotencyResponseWriter captures the response for caching
type idempotencyResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *idempotencyResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *idempotencyResponseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func replay(w http.ResponseWriter, entry *idempotencyEntry) {
	for k, v := range entry.headers {
		for _, val := range v {
			w.Header().Add(k, val)
		}
	}
	w.Header().Set("X-Idempotency-Replayed", "true")
	w.WriteHeader(entry.status)
	_, _ = w.Write(entry.body)
}

// Idempotency returns middleware that replays responses for POST requests
// repeating an Idempotency-Key
func Idempotency(store *IdempotencyStore) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idempotencyKey := r.Header.Get(IdempotencyHeader)
			if r.Method != http.MethodPost || idempotencyKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			key := fingerprint(idempotencyCaller(r), idempotencyKey, r.Method, r.URL.Path, body)
			entry, owner := store.claim(key)
			if !owner {
				replay(w, entry)
				return
			}

			rec := &idempotencyResponseWriter{ResponseWriter: w, status: http.StatusOK}
			defer store.finish(key, entry, rec)
			next.ServeHTTP(rec, r)
		})
	}
}
