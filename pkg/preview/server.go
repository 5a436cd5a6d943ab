// Package preview serves a live clock face over HTTP.
//
// A frame loop steps running flips at the configured rate and a second loop
// feeds the wall-clock time to the face once per second. Frames, state and
// metrics are served from the same face under a single lock.
package preview

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/flipclock/pkg/clockface"
	"github.com/go-drift/flipclock/pkg/errors"
	"github.com/go-drift/flipclock/pkg/flip"
	"github.com/go-drift/flipclock/pkg/render"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// shutdownTimeout bounds graceful shutdown of the HTTP server.
const shutdownTimeout = 2 * time.Second

// Option configures a Server.
type Option func(*Server)

// WithClock sets the clock driving both loops. Defaults to the real clock.
func WithClock(c clockwork.Clock) Option {
	return func(s *Server) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithFPS sets the frame loop rate.
func WithFPS(fps int) Option {
	return func(s *Server) {
		if fps > 0 {
			s.fps = fps
		}
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.log = logger
		}
	}
}

// Server owns a face and exposes it over HTTP.
type Server struct {
	mu       sync.Mutex
	face     *clockface.Face
	renderer *render.Renderer

	clock clockwork.Clock
	fps   int
	log   *slog.Logger
}

// New wraps face. The face must already be laid out.
func New(face *clockface.Face, renderer *render.Renderer, opts ...Option) *Server {
	s := &Server{
		face:     face,
		renderer: renderer,
		clock:    clockwork.NewRealClock(),
		fps:      DefaultFPS,
		log:      slog.Default().With("system", "preview"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/frame.png", s.handleFrame)
	mux.HandleFunc("/state", s.handleState)
	mux.HandleFunc("/healthz", handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// ListenAndServe binds addr and runs until ctx is cancelled or a loop fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	// Bind first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("preview listen: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve runs the HTTP server on listener together with the frame and time
// loops. It returns when ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info("preview server listening", "addr", listener.Addr().String(), "fps", s.fps)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := server.Serve(listener); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	eg.Go(func() error { return s.RunLoops(ctx) })
	return eg.Wait()
}

// RunLoops drives the face until ctx is cancelled. The current time is set
// once before the first tick.
func (s *Server) RunLoops(ctx context.Context) error {
	s.SetTime(s.clock.Now())

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.loop(ctx, time.Second/time.Duration(s.fps), s.Tick)
	})
	eg.Go(func() error {
		return s.loop(ctx, time.Second, func() { s.SetTime(s.clock.Now()) })
	})
	return eg.Wait()
}

func (s *Server) loop(ctx context.Context, interval time.Duration, fn func()) error {
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			s.guard(fn)
		}
	}
}

func (s *Server) guard(fn func()) {
	defer errors.Recover("preview.loop")
	fn()
}

// Tick steps the face by one frame.
func (s *Server) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.face.Tick()
	framesStepped.Inc()
}

// SetTime hands t to the face and records flips it starts.
func (s *Server) SetTime(t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.face.Items()
	before := make([]int, len(items))
	for i, it := range items {
		before[i] = it.Label().Next()
	}
	if err := s.face.SetTime(t); err != nil {
		setTimeFailures.Inc()
		return err
	}
	for i, it := range items {
		l := it.Label()
		restarted := it.Field() == flip.FieldSecond || l.Next() != before[i]
		if l.IsAnimating() && l.Progress() == 0 && restarted {
			flipsStarted.WithLabelValues(it.Field().String()).Inc()
		}
	}
	return nil
}

// Frame rasterizes the face and encodes it as PNG.
func (s *Server) Frame() ([]byte, error) {
	s.mu.Lock()
	start := time.Now()
	img, err := s.renderer.Render(s.face)
	renderDuration.Observe(time.Since(start).Seconds())
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Snapshot returns the face state.
func (s *Server) Snapshot() clockface.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.face.Snapshot()
}
