package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vitelink/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Error_NilIsIgnored(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	logger.NewWithWriter(buf).Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_Error_StandardError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	logger.NewWithWriter(buf).Error(errors.New("plain failure"))

	assert.Equal(t, "✗ Error: plain failure\n", buf.String())
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	err := zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer")
	logger.NewWithWriter(buf).Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: outer layer")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ middle layer")
	assert.Contains(t, out, "→ root cause")
}

func TestLogger_InfoAndWarn(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	log := logger.NewWithWriter(buf)
	log.Info("one")
	log.Warn("two")

	assert.Equal(t, "one\n! two\n", buf.String())
}
