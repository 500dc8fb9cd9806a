package web

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type HTTPServer struct {
	ListenAddr string
	Logger     Logger

	// Handler defaults to NewHandler with DevMode.
	Handler http.Handler
	DevMode bool

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	closed bool
}

func NewHTTPServer(cfg ServerConfig, logger Logger) *HTTPServer {
	return &HTTPServer{ListenAddr: cfg.ListenAddr, DevMode: cfg.DevMode, Logger: logger}
}

// Start binds the listener before returning, so a busy port is reported to
// the caller. Serving happens in the background until ctx is done or Stop is
// called.
func (s *HTTPServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("web server already stopped")
	}
	if s.srv != nil {
		return nil
	}

	addr := s.ListenAddr
	if addr == "" {
		addr = DefaultListenAddr
	}

	handler := s.Handler
	if handler == nil {
		handler = NewHandler(ServerConfig{ListenAddr: addr, DevMode: s.DevMode}, s.Logger)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listen %s", addr)
	}
	s.ln = ln
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	srv := s.srv
	go func() {
		err := srv.Serve(ln)
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return
		}
		if s.Logger != nil {
			s.Logger.Errorf("web", "serve failed: %v", err)
		}
	}()

	if s.Logger != nil {
		s.Logger.Infof("web", "listening on %s", ln.Addr())
	}
	return nil
}

func (s *HTTPServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.ListenAddr
}

func (s *HTTPServer) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	ln := s.ln
	s.srv = nil
	s.ln = nil
	s.mu.Unlock()

	if srv == nil {
		if ln != nil {
			_ = ln.Close()
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.Wrap(srv.Shutdown(ctx), "shutdown")
}
