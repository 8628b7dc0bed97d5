package cli

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unipdf/v4/common"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger("warn", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	log.WithField("input", "a.pdf").Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "input=a.pdf")

	_, err = NewLogger("loud", &buf)
	assert.Error(t, err)
}

func TestLibLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger("warn", &buf)
	require.NoError(t, err)

	l := &libLogger{entry: log.WithField("lib", "unipdf")}
	assert.True(t, l.IsLogLevel(common.LogLevelError))
	assert.True(t, l.IsLogLevel(common.LogLevelWarning))
	assert.False(t, l.IsLogLevel(common.LogLevelInfo))
	assert.False(t, l.IsLogLevel(common.LogLevelTrace))

	l.Debug("xref %d", 1)
	l.Error("bad xref %d", 7)
	assert.NotContains(t, buf.String(), "xref 1")
	assert.Contains(t, buf.String(), "bad xref 7")
	assert.Contains(t, buf.String(), "lib=unipdf")
}
