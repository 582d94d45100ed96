package main

import (
	"github.com/mitchellh/go-homedir"
	"github.com/natefinch/lumberjack"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"os"
	"strings"
)

var stderrLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{module}] [%{level}] %{message}`,
)

var fileLogFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{module}] [%{shortfunc}] [%{level}] %{message}`,
)

// setupLogging - Installs a stderr backend and, if logFile is given, a rotating file backend for all loggers
func setupLogging(level, logFile string) (err error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return
	}

	backendStderr := logging.NewLogBackend(os.Stderr, "", 0)
	backends := []logging.Backend{logging.NewBackendFormatter(backendStderr, stderrLogFormat)}

	if logFile != "" {
		var path string
		path, err = homedir.Expand(logFile)
		if err != nil {
			err = errors.Wrapf(err, "could not resolve log file %s", logFile)
			return
		}
		w := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // Megabytes
			MaxBackups: 3,
			MaxAge:     30, // Days
		}
		backendFile := logging.NewLogBackend(w, "", 0)
		backends = append(backends, logging.NewBackendFormatter(backendFile, fileLogFormat))
	}

	logging.SetBackend(backends...)
	logging.SetLevel(lvl, "")

	return
}

// parseLevel - Returns the logging level named by level
func parseLevel(level string) (lvl logging.Level, err error) {
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.DEBUG
	case "info":
		lvl = logging.INFO
	case "notice":
		lvl = logging.NOTICE
	case "", "warning":
		lvl = logging.WARNING
	case "error":
		lvl = logging.ERROR
	case "critical":
		lvl = logging.CRITICAL
	default:
		err = errors.Errorf("unknown log level %q, use one of debug, info, notice, warning, error, critical", level)
	}

	return
}
