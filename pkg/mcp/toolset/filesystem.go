// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcp-file-server/mcp-file-server/pkg/fsop"
	"github.com/mcp-file-server/mcp-file-server/pkg/mcp/msi"
)

func (ts *ToolSet) ListFiles(_ context.Context,
	_ *mcp.CallToolRequest, args msi.ListFilesParams,
) (*mcp.CallToolResult, *msi.ListFilesResult, error) {
	if ts.gw == nil {
		return nil, nil, errNotRegistered
	}
	v, err := ts.gw.ListFiles(args.Path)
	res := fsop.Wrap(v, err)
	return callToolResult(res), res, nil
}

func (ts *ToolSet) ReadFile(_ context.Context,
	_ *mcp.CallToolRequest, args msi.ReadFileParams,
) (*mcp.CallToolResult, *msi.ReadFileResult, error) {
	if ts.gw == nil {
		return nil, nil, errNotRegistered
	}
	v, err := ts.gw.ReadFile(args.FilePath)
	res := fsop.Wrap(v, err)
	return callToolResult(res), res, nil
}

func (ts *ToolSet) CreateFile(_ context.Context,
	_ *mcp.CallToolRequest, args msi.CreateFileParams,
) (*mcp.CallToolResult, *msi.CreateFileResult, error) {
	if ts.gw == nil {
		return nil, nil, errNotRegistered
	}
	v, err := ts.gw.CreateFile(args.FilePath, args.Content)
	res := fsop.Wrap(v, err)
	return callToolResult(res), res, nil
}

func (ts *ToolSet) DeleteFile(_ context.Context,
	_ *mcp.CallToolRequest, args msi.DeleteFileParams,
) (*mcp.CallToolResult, *msi.DeleteFileResult, error) {
	if ts.gw == nil {
		return nil, nil, errNotRegistered
	}
	v, err := ts.gw.DeleteFile(args.FilePath)
	res := fsop.Wrap(v, err)
	return callToolResult(res), res, nil
}

func (ts *ToolSet) CreateDirectory(_ context.Context,
	_ *mcp.CallToolRequest, args msi.CreateDirectoryParams,
) (*mcp.CallToolResult, *msi.CreateDirectoryResult, error) {
	if ts.gw == nil {
		return nil, nil, errNotRegistered
	}
	v, err := ts.gw.CreateDirectory(args.DirPath)
	res := fsop.Wrap(v, err)
	return callToolResult(res), res, nil
}

func (ts *ToolSet) DeleteDirectory(_ context.Context,
	_ *mcp.CallToolRequest, args msi.DeleteDirectoryParams,
) (*mcp.CallToolResult, *msi.DeleteDirectoryResult, error) {
	if ts.gw == nil {
		return nil, nil, errNotRegistered
	}
	v, err := ts.gw.DeleteDirectory(args.DirPath)
	res := fsop.Wrap(v, err)
	return callToolResult(res), res, nil
}
