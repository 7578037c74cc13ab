package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesLogfmtFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dllist.log")
	l, err := buildLogger(path, false)
	require.NoError(t, err)

	logger := &Logger{log: l}
	logger.With("key", "fruits").Info("pushed", "value", "apple")
	logger.Debug("not filtered for files")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "msg=pushed")
	assert.Contains(t, out, "service=dllist")
	assert.Contains(t, out, "key=fruits")
	assert.Contains(t, out, "value=apple")
	assert.Contains(t, out, "lvl=dbug")
}

func TestGetLoggerBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		GetLogger().Info("dropped")
	})
}
