package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"grampanchayat/internal/config"
)

type appNameHook struct {
	appName string
}

// Levels implements logrus.Hook.
func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Data["app"] = h.appName
	return nil
}

// New builds the process logger from cfg, writing to stdout.
func New(appName string, cfg *config.LogConfig) *logrus.Logger {
	return NewWithOutput(appName, cfg, os.Stdout)
}

// NewWithOutput builds a logger writing to w. An unparseable level falls back to info.
func NewWithOutput(appName string, cfg *config.LogConfig, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	levelStr := strings.ToLower(strings.TrimSpace(cfg.Level))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		log.Warnf("invalid log level %q, defaulting to info", cfg.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if appName != "" {
		log.AddHook(&appNameHook{appName: appName})
	}
	return log
}
