package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/8thgencore/kvrepl/internal/config"
	"github.com/8thgencore/kvrepl/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp(t *testing.T) {
	cfg := &config.Config{
		Env:     config.Production,
		Session: config.SessionConfig{Prompt: "kv>", Quiet: true},
	}

	var logs bytes.Buffer
	log := logger.NewWithWriter(&logs, config.Production, slog.LevelInfo)

	var out bytes.Buffer
	in := strings.NewReader("SET name Alice\nGET name\nEXIT\n")

	application := New(cfg, log, in, &out)
	require.NoError(t, application.Run())

	assert.Contains(t, out.String(), "Set: name = Alice")
	assert.Contains(t, out.String(), "name: Alice")
	assert.Contains(t, out.String(), "Goodbye!")

	// every log record carries the same session id
	var ids []string
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		id, ok := record["session_id"].(string)
		require.True(t, ok, "record without session_id: %s", line)
		ids = append(ids, id)
	}
	require.NotEmpty(t, ids)
	_, err := uuid.Parse(ids[0])
	assert.NoError(t, err)
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, assert.AnError
}

func TestAppReadFailure(t *testing.T) {
	cfg := &config.Config{Env: config.Production, Session: config.SessionConfig{Quiet: true}}
	log := logger.NewWithWriter(&bytes.Buffer{}, config.Production, slog.LevelInfo)

	err := New(cfg, log, brokenReader{}, &bytes.Buffer{}).Run()
	assert.ErrorIs(t, err, assert.AnError)
}
