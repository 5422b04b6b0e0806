package phaseswap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(prefix string, debug bool) (*DefaultLogger, *observer.ObservedLogs) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}
	core, logs := observer.New(level)
	return newLoggerFromCore(core, level, prefix), logs
}

func TestDefaultLogger_Levels(t *testing.T) {
	logger, logs := newObservedLogger("phaseswap", false)

	logger.Debugf("hidden %d", 1)
	logger.Infof("info %d", 2)
	logger.Warnf("warn %d", 3)
	logger.Errorf("error %d", 4)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, "info 2", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "phaseswap", entries[0].LoggerName)
}

func TestDefaultLogger_SetDebug(t *testing.T) {
	logger, logs := newObservedLogger("", false)
	assert.False(t, logger.DebugEnabled())

	logger.SetDebug(true)
	assert.True(t, logger.DebugEnabled())
	logger.Debugf("camera lock %v", false)
	assert.Equal(t, 1, logs.FilterMessage("camera lock false").Len())

	logger.SetDebug(false)
	logger.Debugf("dropped")
	assert.Equal(t, 0, logs.FilterMessage("dropped").Len())
}

func TestLoggingModule_InstallsLogger(t *testing.T) {
	logger, logs := newObservedLogger("test", true)
	app := NewApp().UseModules(LoggingModule{Logger: logger})

	assert.Same(t, logger, app.Logger())

	app.Commands().Logger().Infof("hello")
	assert.Equal(t, 1, logs.FilterMessage("hello").Len())
}

func TestLoggingModule_DefaultLogger(t *testing.T) {
	app := NewApp().UseModules(LoggingModule{Prefix: "phaseswap", Debug: true})

	logger, ok := Resource[DefaultLogger](app)
	require.True(t, ok)
	assert.True(t, logger.DebugEnabled())
}
