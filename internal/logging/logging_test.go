package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{JSON: true})
	require.NoError(t, err)

	log.Info("export written", "records", 3)
	log.V(1).Info("hidden at info level")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "export written", rec["message"])
	assert.Equal(t, float64(3), rec["records"])
	assert.Equal(t, "neoexport", rec["logger"])
}

func TestNew_DebugShowsV1(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "debug", JSON: true})
	require.NoError(t, err)
	log.V(1).Info("detail")
	assert.Contains(t, buf.String(), "detail")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{NoColor: true})
	require.NoError(t, err)
	log.Info("hello", "path", "out.csv")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "path=out.csv")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "loud"})
	assert.Error(t, err)
}
