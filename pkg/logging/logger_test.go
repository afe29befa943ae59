package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf).Level(zerolog.InfoLevel)

	logger.Info().Str("source", "transcript-1").Msg("merge applied")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "merge applied", entry["message"])
	assert.Equal(t, "transcript-1", entry["source"])
	assert.NotEmpty(t, entry["time"])
}

func TestSetDefault(t *testing.T) {
	original := *Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(New(&buf).Level(zerolog.InfoLevel))

	Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNopDiscards(t *testing.T) {
	// Must not panic and must produce nothing observable.
	Nop.Info().Str("k", "v").Msg("discarded")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf).Level(zerolog.WarnLevel)

	logger.Info().Msg("filtered")
	logger.Warn().Msg("kept")

	assert.NotContains(t, buf.String(), "filtered")
	assert.Contains(t, buf.String(), "kept")
}
