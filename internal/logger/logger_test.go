package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grampanchayat/internal/config"
	"grampanchayat/internal/logger"
)

func TestNew_ParsesLevel(t *testing.T) {
	log := logger.NewWithOutput("gp", &config.LogConfig{Level: "DEBUG"}, &bytes.Buffer{})
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput("gp", &config.LogConfig{Level: "chatty"}, &buf)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "invalid log level")
}

func TestNew_JSONFormatCarriesAppField(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput("gp-server", &config.LogConfig{Level: "info", Format: "json"}, &buf)

	log.WithField("property_id", "p1").Info("assessed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "gp-server", entry["app"])
	assert.Equal(t, "p1", entry["property_id"])
	assert.Equal(t, "assessed", entry["msg"])
}
