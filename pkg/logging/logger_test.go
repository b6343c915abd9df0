package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestNullLogger_ImplementsLogger(t *testing.T) {
	var l Logger = NullLogger{}
	l.Info("ignored")
	l.Warn("ignored")
	l.Error("ignored")
	l.Debug("ignored")
	assert.NoError(t, l.Close())
	assert.Equal(t, NullLogger{}, l.WithFields(Field{Key: "k"}))
}
