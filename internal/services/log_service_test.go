package services

import (
	"github.com/coopgretz/HomeStorage/internal/config"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogService(t *testing.T) {
	configuration := &config.Configuration{}
	configuration.Server.LogConfig = config.LogConfig{Level: "DEBUG", Format: "json", Output: "stdout"}

	logService := NewLogService(configuration)

	assert.Equal(t, logrus.DebugLevel, logService.Log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logService.Log.Formatter)
	assert.Equal(t, os.Stdout, logService.Log.Out)
}

func TestNewLogService_FileOutput(t *testing.T) {
	dir := t.TempDir()
	configuration := &config.Configuration{}
	configuration.Server.LogConfig = config.LogConfig{Level: "bogus", Format: "text", Output: "file", LogPath: dir}

	logService := NewLogService(configuration)
	logService.Log.Info("hello")

	assert.Equal(t, logrus.InfoLevel, logService.Log.GetLevel())
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
