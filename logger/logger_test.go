package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)
	l.Infof("connected to %s:%d", "localhost", 9090)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "connected to localhost:9090", entry["message"])
	require.Equal(t, "hbasemap", entry["component"])
}

func TestZerologLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerolog(zerolog.New(&buf).Level(zerolog.WarnLevel))
	l.Debugf("dropped")
	l.Infof("dropped")
	require.Zero(t, buf.Len())

	l.Errorf("kept")
	require.Contains(t, buf.String(), "kept")
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() {
		Nop().Warnf("nothing %d", 1)
	})
}

func TestNewFileLogger(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "x.log"))
	require.Error(t, err)

	l, err := NewFileLogger(filepath.Join(t.TempDir(), "x.log"))
	require.NoError(t, err)
	l.Infof("ok")
}
