// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

package logrusutil

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"gotest.tools/v3/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    logrus.Level
		wantErr bool
	}{
		{in: "DEBUG", want: logrus.DebugLevel},
		{in: "INFO", want: logrus.InfoLevel},
		{in: "WARNING", want: logrus.WarnLevel},
		{in: "warn", want: logrus.WarnLevel},
		{in: "ERROR", want: logrus.ErrorLevel},
		{in: "CRITICAL", want: logrus.FatalLevel},
		{in: "trace", want: logrus.TraceLevel},
		{in: "", want: logrus.InfoLevel},
		{in: "LOUD", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := ParseLevel(test.in)
			if test.wantErr {
				assert.Assert(t, err != nil)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestConfigure(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logrus.New()
		assert.NilError(t, Configure(logger, "WARNING", "json", &buf))
		logger.Info("hidden")
		logger.WithField("path", "/a").Warn("shown")

		var j map[string]any
		assert.NilError(t, json.Unmarshal(buf.Bytes(), &j))
		assert.Equal(t, "warning", j["level"])
		assert.Equal(t, "shown", j["msg"])
		assert.Equal(t, "/a", j["path"])
	})
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logrus.New()
		assert.NilError(t, Configure(logger, "INFO", "text", &buf))
		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	})
	t.Run("unsupported format", func(t *testing.T) {
		assert.ErrorContains(t, Configure(logrus.New(), "INFO", "yaml", &bytes.Buffer{}), "unsupported log-format")
	})
	t.Run("bad level", func(t *testing.T) {
		assert.Assert(t, Configure(logrus.New(), "LOUD", "text", &bytes.Buffer{}) != nil)
	})
}
