package infra

import (
	"context"
	"net/http"
	"time"
)

// readHeaderTimeout bounds how long a client may take to send request
// headers before the connection is dropped.
const readHeaderTimeout = 5 * time.Second

// HTTPServer serves the tfxlab API and supports graceful shutdown so
// in-flight analysis requests can finish before the process exits.
type HTTPServer struct {
	srv *http.Server
}

// NewHTTPServer builds the API server on the configured port with the
// timeouts from cfg applied.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		srv: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadTimeout:       cfg.HTTPReadTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      cfg.HTTPWriteTimeout,
			IdleTimeout:       cfg.HTTPIdleTimeout,
		},
	}
}

// Addr reports the listen address the server was configured with.
func (s *HTTPServer) Addr() string {
	if s.srv == nil {
		return ""
	}
	return s.srv.Addr
}

// Start blocks serving requests until Shutdown is called or the
// listener fails.
func (s *HTTPServer) Start() error {
	if s.srv == nil {
		return nil
	}
	return s.srv.ListenAndServe()
}

// Shutdown drains open connections, honoring the deadline on ctx.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
