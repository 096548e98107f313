// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestInspectInfo(t *testing.T) {
	info, err := inspectInfo(context.Background())
	assert.NilError(t, err)
	assert.Equal(t, len(info.Tools), 6)
	for _, tool := range info.Tools {
		assert.Assert(t, tool.Description != "", "tool %q has no description", tool.Name)
		assert.Assert(t, tool.OutputSchema != nil, "tool %q has no output schema", tool.Name)
	}
}

func TestInfoCommand(t *testing.T) {
	var stdout bytes.Buffer
	app := newApp()
	app.SetOut(&stdout)
	app.SetArgs([]string{"info"})
	assert.NilError(t, app.Execute())

	var info map[string]any
	assert.NilError(t, json.Unmarshal(stdout.Bytes(), &info))
	tools, ok := info["tools"].([]any)
	assert.Assert(t, ok)
	assert.Equal(t, len(tools), 6)
}

func TestGenDocCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")
	app := newApp()
	app.SetArgs([]string{"generate-doc", dir})
	assert.NilError(t, app.Execute())

	b, err := os.ReadFile(filepath.Join(dir, "tools.md"))
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(string(b), "## `create_file`"))
	assert.Assert(t, is.Contains(string(b), "### Input Schema"))
}

func TestWriteToolDoc(t *testing.T) {
	var buf bytes.Buffer
	tool := &mcp.Tool{
		Name:        "noop",
		Description: "Does nothing.",
		InputSchema: map[string]any{"type": "object"},
	}
	assert.NilError(t, writeToolDoc(&buf, tool))
	doc := buf.String()
	assert.Assert(t, is.Contains(doc, "## `noop`"))
	assert.Assert(t, is.Contains(doc, "### Description\n\nDoes nothing."))
	assert.Assert(t, is.Contains(doc, "### Input Schema"))
	assert.Assert(t, !strings.Contains(doc, "### Title"))
	assert.Assert(t, !strings.Contains(doc, "### Output Schema"))
}

func TestServeMissingBasePath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	app := newApp()
	app.SetArgs([]string{"serve", "--path", missing, "--transport", "stdio"})
	err := app.Execute()
	assert.ErrorContains(t, err, "does not exist")
}

func TestServeInvalidConfig(t *testing.T) {
	app := newApp()
	app.SetArgs([]string{"--transport", "carrier-pigeon", "--path", t.TempDir()})
	err := app.Execute()
	assert.ErrorContains(t, err, "unsupported transport")
}
