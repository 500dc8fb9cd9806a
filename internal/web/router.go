package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// NewHandler returns the handler served in server mode. The router has no
// routes, so every request ends in a 404.
//
// Middleware is chained around the router rather than registered with Use:
// a chi mux without routes never runs its own middleware stack.
func NewHandler(cfg ServerConfig, logger Logger) http.Handler {
	r := chi.NewRouter()

	var h http.Handler = chi.Chain(
		middleware.Recoverer,
		withLogging(logger),
	).Handler(r)

	if cfg.DevMode {
		h = WithDevCORS(h)
	}

	return otelhttp.NewHandler(h, "blastoff")
}

func withLogging(logger Logger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		if logger == nil {
			return h
		}

		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)

			h.ServeHTTP(ww, r)

			logger.Infof("web", "%s %s status=%d duration=%s", r.Method, r.RequestURI, ww.Status(), time.Since(start))
		})
	}
}
