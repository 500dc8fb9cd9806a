package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf)

	logger.Infof("timer", "start count=%d", 10)
	logger.Errorf("web", "listen %s failed", ":8080")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "timer", first["component"])
	assert.Equal(t, "start count=10", first["message"])
	assert.Contains(t, first, "time")

	assert.Equal(t, "error", second["level"])
	assert.Equal(t, "web", second["component"])
}
