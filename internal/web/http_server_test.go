package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
}

func (l *recordingLogger) Infof(component string, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, component+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(component string, format string, args ...interface{}) {}

func TestHandlerHasNoRoutes(t *testing.T) {
	h := NewHandler(ServerConfig{}, nil)

	for _, path := range []string{"/", "/api/v1/status", "/countdown"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestHandlerLogsRequests(t *testing.T) {
	logger := &recordingLogger{}
	h := NewHandler(ServerConfig{}, logger)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Len(t, logger.infos, 1)
	assert.Contains(t, logger.infos[0], "GET /missing status=404")
}

func TestDevModeAnswersPreflight(t *testing.T) {
	h := NewHandler(ServerConfig{DevMode: true}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, HEAD, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestDevModeStillHasNoRoutes(t *testing.T) {
	h := NewHandler(ServerConfig{DevMode: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPServerLifecycle(t *testing.T) {
	type test = func(t *testing.T)

	var servesNotFound test = func(t *testing.T) {
		srv := NewHTTPServer(ServerConfig{ListenAddr: "127.0.0.1:0"}, nil)
		require.NoError(t, srv.Start(context.Background()))
		defer srv.Stop()

		resp, err := http.Get("http://" + srv.Addr() + "/")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	var stopIsIdempotent test = func(t *testing.T) {
		srv := NewHTTPServer(ServerConfig{ListenAddr: "127.0.0.1:0"}, nil)
		require.NoError(t, srv.Start(context.Background()))
		assert.NoError(t, srv.Stop())
		assert.NoError(t, srv.Stop())
		assert.Error(t, srv.Start(context.Background()))
	}

	var busyPortFails test = func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		srv := NewHTTPServer(ServerConfig{ListenAddr: ln.Addr().String()}, nil)
		err = srv.Start(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listen "+ln.Addr().String())
	}

	t.Run("serves 404", servesNotFound)
	t.Run("stop is idempotent", stopIsIdempotent)
	t.Run("busy port fails", busyPortFails)
}

func TestDisplayURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8080", DisplayURL(":8080"))
	assert.Equal(t, "http://127.0.0.1:9000", DisplayURL("0.0.0.0:9000"))
	assert.Equal(t, "http://127.0.0.1:9000", DisplayURL("[::]:9000"))
	assert.Equal(t, "http://10.0.0.2:8080", DisplayURL("10.0.0.2:8080"))
	assert.Equal(t, "http://127.0.0.1:8080", DisplayURL(""))
}

func TestServerConfigFromEnv(t *testing.T) {
	t.Setenv(EnvListenAddr, "")
	t.Setenv(EnvDevMode, "")
	cfg, err := DefaultServerConfigFromEnv(DefaultListenAddr)
	require.NoError(t, err)
	assert.Equal(t, ServerConfig{ListenAddr: ":8080"}, cfg)

	t.Setenv(EnvListenAddr, "127.0.0.1:9999")
	t.Setenv(EnvDevMode, "true")
	cfg, err = DefaultServerConfigFromEnv(DefaultListenAddr)
	require.NoError(t, err)
	assert.Equal(t, ServerConfig{ListenAddr: "127.0.0.1:9999", DevMode: true}, cfg)

	t.Setenv(EnvDevMode, "sometimes")
	_, err = DefaultServerConfigFromEnv(DefaultListenAddr)
	assert.ErrorContains(t, err, `"sometimes"`)
}
