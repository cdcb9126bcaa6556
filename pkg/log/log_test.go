package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultProductionLogger(t *testing.T) {
	logger, err := NewDefaultProductionLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger)
	child := logger.With("component", "test")
	assert.NotNil(t, child)
}

func TestNewSilentLogger(t *testing.T) {
	logger := NewSilentLogger()
	logger.Debug("debug")
	logger.Debugf("debug %d", 1)
	logger.Info("info")
	logger.Infof("info %d", 1)
	logger.Warning("warning")
	logger.Warningf("warning %d", 1)
	logger.Error("error")
	logger.Errorf("error %d", 1)
	logger.With("k", "v").Info("child")
}
