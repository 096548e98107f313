// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

package logrusutil

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// ParseLevel parses a log level.
// In addition to the logrus level names, "WARNING" and "CRITICAL" are accepted
// case-insensitively; CRITICAL is mapped to FatalLevel.
func ParseLevel(s string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return logrus.FatalLevel, nil
	case "":
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(s)
}

// Configure sets the level, the format ("text" or "json") and the output of logger.
func Configure(logger *logrus.Logger, level, format string, out io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	logger.SetOutput(out)

	switch format {
	case "json":
		logger.SetFormatter(new(logrus.JSONFormatter))
	case "text", "":
		// logrus use text format by default.
		if f, ok := out.(*os.File); ok && runtime.GOOS == "windows" && isatty.IsCygwinTerminal(f.Fd()) {
			formatter := new(logrus.TextFormatter)
			// the default setting does not recognize cygwin on windows
			formatter.ForceColors = true
			logger.SetFormatter(formatter)
		}
	default:
		return fmt.Errorf("unsupported log-format: %q", format)
	}
	return nil
}
