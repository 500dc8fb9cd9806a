package telemetry

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/rook-computer/blastoff/internal/web"
)

func TestSetupExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := Setup(&buf)
	require.NoError(t, err)

	_, span := otel.Tracer("blastoff/test").Start(context.Background(), "liftoff")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"Name":"liftoff"`)
}

func TestServerRequestsAreTraced(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := Setup(&buf)
	require.NoError(t, err)

	h := web.NewHandler(web.ServerConfig{}, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, shutdown(context.Background()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), `"Name":"blastoff"`)
}
