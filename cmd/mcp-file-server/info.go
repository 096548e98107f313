// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/mcp-file-server/mcp-file-server/pkg/mcp/toolset"
)

func newInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show information about the MCP server",
		Args:  cobra.NoArgs,
		RunE:  infoAction,
	}
	return cmd
}

func infoAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	info, err := inspectInfo(ctx)
	if err != nil {
		return err
	}
	j, err := json.MarshalIndent(info, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(j))
	return err
}

// inspectInfo lists the tools through an in-memory client session.
// No base directory is needed, as no tool is called.
func inspectInfo(ctx context.Context) (*Info, error) {
	ts, err := toolset.New()
	if err != nil {
		return nil, err
	}
	server := newServer()
	if err := ts.RegisterServer(server); err != nil {
		return nil, err
	}
	tools, err := listTools(ctx, server)
	if err != nil {
		return nil, err
	}
	return &Info{Tools: tools}, nil
}

func listTools(ctx context.Context, server *mcp.Server) (tools []*mcp.Tool, retErr error) {
	st, ct := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, st, nil)
	if err != nil {
		return nil, err
	}
	cs, err := mcp.NewClient(&mcp.Implementation{Name: "mcp-file-server-info"}, nil).Connect(ctx, ct, nil)
	if err != nil {
		_ = ss.Close()
		return nil, err
	}
	defer func() {
		retErr = errors.Join(retErr, cs.Close(), ss.Wait())
	}()
	res, err := cs.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, err
	}
	return res.Tools, nil
}

type Info struct {
	Tools []*mcp.Tool `json:"tools"`
}

func newGenDocCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "generate-doc DIR",
		Short:  "Generate documentation pages",
		Args:   cobra.ExactArgs(1),
		RunE:   genDocAction,
		Hidden: true,
	}
	return cmd
}

const toolsDocHeader = `---
title: MCP tools
---
mcp-file-server exposes the following MCP (Model Context Protocol) tools.
All paths are resolved relative to the configured base directory.

`

func genDocAction(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	info, err := inspectInfo(cmd.Context())
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.WriteString(toolsDocHeader)
	for _, tool := range info.Tools {
		if err := writeToolDoc(&buf, tool); err != nil {
			return fmt.Errorf("failed to document tool %q: %w", tool.Name, err)
		}
	}
	return os.WriteFile(filepath.Join(dir, "tools.md"), buf.Bytes(), 0o644)
}

// writeToolDoc writes the markdown section of a single tool.
func writeToolDoc(w io.Writer, tool *mcp.Tool) error {
	fmt.Fprintf(w, "## `%s`\n\n", tool.Name)
	for _, sec := range []struct{ heading, body string }{
		{"Title", tool.Title},
		{"Description", tool.Description},
	} {
		if sec.body != "" {
			fmt.Fprintf(w, "### %s\n\n%s\n\n", sec.heading, sec.body)
		}
	}
	if err := writeSchemaDoc(w, "Input Schema", tool.InputSchema); err != nil {
		return err
	}
	return writeSchemaDoc(w, "Output Schema", tool.OutputSchema)
}

func writeSchemaDoc(w io.Writer, heading string, schema any) error {
	if schema == nil {
		return nil
	}
	b, err := json.MarshalIndent(schema, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "### %s\n\n```json\n%s\n```\n\n", heading, b)
	return err
}
