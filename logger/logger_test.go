package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"strings"
	"testing"

	commonerrors "github.com/amp-labs/amp-algorithms/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var rec map[string]any

		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)

		records = append(records, rec)
	}

	return records
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	Get().Info("default subsystem")

	ctx := WithSubsystem(t.Context(), "overridden")
	Get(ctx).Info("overridden subsystem")

	ctx = With(ctx, "algorithm", "merge")
	ctx = With(ctx, "size", 10)
	Get(ctx).Info("with values")

	Get(ctx).Debug("below min level")

	records := decodeLines(t, &buf)
	require.Len(t, records, 3)

	assert.Equal(t, "test", records[0]["subsystem"])
	assert.Equal(t, "overridden", records[1]["subsystem"])
	assert.Equal(t, "merge", records[2]["algorithm"])
	assert.InDelta(t, 10, records[2]["size"], 0)
}

func TestWith_SiblingContexts(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{JSON: true, Output: &buf})

	base := With(t.Context(), "run", "a")
	first := With(base, "sample", 1)
	second := With(base, "sample", 2)

	Get(first).Info("first")
	Get(second).Info("second")

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)
	assert.InDelta(t, 1, records[0]["sample"], 0)
	assert.InDelta(t, 2, records[1]["sample"], 0)
}

func TestLegacy(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem:   "test",
		JSON:        true,
		MinLevel:    slog.LevelDebug,
		LegacyLevel: slog.LevelWarn,
		Output:      &buf,
	})

	log.Println("legacy line")

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "WARN", records[0]["level"])
	assert.Equal(t, "legacy line", records[0]["msg"])

	buf.Reset()

	ConfigureLoggingWithOptions(Options{Output: &buf})

	log.Println("text line")

	assert.Contains(t, buf.String(), `msg="text line"`)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "", want: slog.LevelInfo},
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: " warn ", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "error+2", want: slog.LevelError + 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	require.ErrorIs(t, err, commonerrors.ErrInvalidConfig)
}
