package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarning)

	logger.Debugf("debug %d", 1)
	logger.Infof("info %d", 2)
	logger.Warningf("warn %d", 3)
	logger.Errorf("error %d", 4)

	assert.Equal(t, "[WARN] warn 3\n[ERROR] error 4\n", buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelError)

	logger.Debugf("hidden")
	logger.SetLevel(LevelDebug)
	logger.Debugf("exec %s %s\n", "ldd", "/bin/true")

	assert.Equal(t, "[DEBUG] exec ldd /bin/true\n", buf.String())
}

func TestLogger_NilAndDiscard(t *testing.T) {
	var logger *Logger

	assert.NotPanics(t, func() { logger.Errorf("nothing") })
	assert.NotPanics(t, func() { Discard().Errorf("nothing") })
}

func TestLogger_NoColorsOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelDebug)

	logger.Errorf("plain")

	assert.NotContains(t, buf.String(), "\x1b[")
}
