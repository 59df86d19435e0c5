package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/r3labs/sse/v2"
	"github.com/remuco-cli/remuco/log"
	"github.com/remuco-cli/remuco/status"
	"github.com/rs/cors"
)

const (
	changesStream   = "changes"
	shutdownTimeout = 5 * time.Second
)

// ErrShutdown is returned to remote clients once the server is going down.
var ErrShutdown = errors.New("server is shutting down")

// Options configure an HTTPServer.
type Options struct {
	Address        string
	Descriptor     Descriptor
	AllowedOrigins []string
}

// HTTPServer exposes the callbacks over HTTP and pushes change edges over
// server-sent events. Each HTTP request becomes a Call that the proxy runs
// on its own goroutine; the handler waits for it to finish.
type HTTPServer struct {
	descriptor Descriptor
	srv        *http.Server
	events     *sse.Server
	handler    http.Handler

	calls     chan Call
	lifecycle chan Event
	closed    chan struct{}
	once      sync.Once

	// snapshot is only touched inside calls, so it needs no lock.
	snapshot status.Snapshot

	mu       sync.Mutex
	listener net.Listener
}

func NewHTTPServer(opts Options) *HTTPServer {
	events := sse.New()
	events.AutoReplay = false
	events.AutoStream = false
	events.CreateStream(changesStream)

	s := &HTTPServer{
		descriptor: opts.Descriptor,
		events:     events,
		calls:      make(chan Call),
		lifecycle:  make(chan Event, 4),
		closed:     make(chan struct{}),
		snapshot:   status.Snapshot{Playlist: []string{}},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /descriptor", s.handleDescriptor)
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("GET /library", s.handleLibrary)
	mux.HandleFunc("GET /plob/{id}", s.handlePlob)
	mux.HandleFunc("GET /ploblist/{id}", s.handlePloblist)
	mux.HandleFunc("POST /ploblist/{id}/play", s.handlePlayPloblist)
	mux.HandleFunc("POST /control/{command}", s.handleControl)
	mux.HandleFunc("GET /events", s.handleEvents)

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})
	s.handler = logRequests(c.Handler(mux))

	s.srv = &http.Server{
		Addr:              opts.Address,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler serves the remote-control API without a listener, e.g. for httptest.
func (s *HTTPServer) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured address and serves in the background.
// A serving failure is reported as EventError.
func (s *HTTPServer) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	log.Infof("remote-control server listening on %s", ln.Addr())

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("remote-control server: %v", err)
			s.emit(EventError)
		}
	}()

	return nil
}

// Addr is the bound address once Start succeeded.
func (s *HTTPServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.srv.Addr
	}
	return s.listener.Addr().String()
}

func (s *HTTPServer) Calls() <-chan Call {
	return s.calls
}

func (s *HTTPServer) Events() <-chan Event {
	return s.lifecycle
}

// Notify tells every subscribed remote client to pull a new snapshot.
func (s *HTTPServer) Notify() {
	s.events.Publish(changesStream, &sse.Event{
		Event: []byte("changed"),
		Data:  []byte("{}"),
	})
}

func (s *HTTPServer) Shutdown() {
	s.once.Do(func() {
		log.Info("remote-control server shutting down")
		close(s.closed)

		go func() {
			s.events.Close()

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := s.srv.Shutdown(ctx); err != nil {
				log.Warnf("remote-control server shutdown: %v", err)
			}
			s.emit(EventDown)
		}()
	})
}

func (s *HTTPServer) emit(ev Event) {
	select {
	case s.lifecycle <- ev:
	default:
		log.Warnf("dropping server event %s", ev)
	}
}

// exec hands fn to the proxy and waits until it ran.
func (s *HTTPServer) exec(ctx context.Context, fn func(Callbacks)) error {
	done := make(chan struct{})
	call := func(cb Callbacks) {
		defer close(done)
		fn(cb)
	}

	select {
	case s.calls <- call:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.closed:
		return ErrShutdown
	}

	<-done
	return nil
}

func (s *HTTPServer) handleDescriptor(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.descriptor)
}

func (s *HTTPServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	var snap status.Snapshot
	err := s.exec(r.Context(), func(cb Callbacks) {
		cb.Synchronize(&s.snapshot)
		snap = s.snapshot
	})
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *HTTPServer) handleLibrary(w http.ResponseWriter, r *http.Request) {
	var lib Library
	if err := s.exec(r.Context(), func(cb Callbacks) { lib = cb.GetLibrary() }); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	if lib.Ploblists == nil {
		lib.Ploblists = []PloblistInfo{}
	}
	writeJSON(w, http.StatusOK, lib)
}

func (s *HTTPServer) handlePlob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var plob *Plob
	if err := s.exec(r.Context(), func(cb Callbacks) { plob = cb.GetPlob(id) }); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	if plob == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("no plob %q", id))
		return
	}
	writeJSON(w, http.StatusOK, plob)
}

func (s *HTTPServer) handlePloblist(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var ids []string
	if err := s.exec(r.Context(), func(cb Callbacks) { ids = cb.GetPloblist(id) }); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, ids)
}

func (s *HTTPServer) handlePlayPloblist(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.exec(r.Context(), func(cb Callbacks) { cb.PlayPloblist(id) }); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleControl(w http.ResponseWriter, r *http.Request) {
	cmd, err := ParseCommand(r.PathValue("command"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	param := 0
	if raw := r.URL.Query().Get("param"); raw != "" {
		if param, err = strconv.Atoi(raw); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid param %q", raw))
			return
		}
	}

	if err := s.exec(r.Context(), func(cb Callbacks) { cb.SimpleControl(cmd, param) }); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	q.Set("stream", changesStream)
	r.URL.RawQuery = q.Encode()
	s.events.ServeHTTP(w, r)
}

type apiError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, apiError{Error: err.Error()})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("remote: %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
