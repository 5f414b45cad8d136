package log_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lodestake/staked/log"
)

func TestNewRootLoggerFormats(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"json", "console", "auto", "logfmt"} {
		var buf bytes.Buffer
		logger, err := log.NewRootLogger(format, "info", &buf)
		require.NoError(t, err, format)

		logger.Info("ready")
		require.NoError(t, logger.Sync())
		require.Contains(t, buf.String(), "ready")
	}

	_, err := log.NewRootLogger("xml", "info", &bytes.Buffer{})
	require.Error(t, err)

	_, err = log.NewRootLogger("json", "verbose", &bytes.Buffer{})
	require.Error(t, err)
}

func TestNewRootLoggerWithFile(t *testing.T) {
	t.Parallel()

	logFile := t.TempDir() + "/logs/staked.log"
	logger, err := log.NewRootLoggerWithFile(logFile, "console", "debug")
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Debug("hello")
}
