// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcp-file-server/mcp-file-server/pkg/fsop"
	"github.com/mcp-file-server/mcp-file-server/pkg/mcp/msi"
)

var errNotRegistered = errors.New("base directory not registered")

func New() (*ToolSet, error) {
	return &ToolSet{}, nil
}

type ToolSet struct {
	// Set on RegisterGateway()
	gw *fsop.Gateway
}

func (ts *ToolSet) RegisterGateway(gw *fsop.Gateway) error {
	if gw == nil {
		return errors.New("gateway must not be nil")
	}
	ts.gw = gw
	return nil
}

func (ts *ToolSet) RegisterServer(server *mcp.Server) error {
	mcp.AddTool(server, msi.ListFiles, ts.ListFiles)
	mcp.AddTool(server, msi.ReadFile, ts.ReadFile)
	mcp.AddTool(server, msi.CreateFile, ts.CreateFile)
	mcp.AddTool(server, msi.DeleteFile, ts.DeleteFile)
	mcp.AddTool(server, msi.CreateDirectory, ts.CreateDirectory)
	mcp.AddTool(server, msi.DeleteDirectory, ts.DeleteDirectory)
	return nil
}

// callToolResult flags failures with IsError and carries the human-readable text.
// The SDK fills StructuredContent from the typed output.
func callToolResult[T any](res *fsop.Result[T]) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: !res.OK(),
		Content: []mcp.Content{
			&mcp.TextContent{Text: res.Text()},
		},
	}
}
