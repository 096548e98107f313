// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

// Package msi provides the "MCP Sandbox Interface" (tentative) for file I/O:
// MCP (Model Context Protocol) tool definitions for listing, reading, creating
// and deleting files and directories inside a sandboxed base directory.
//
// Paths are always interpreted relative to the base directory. An absolute
// path such as "/sub/a.txt" is rooted at the base directory, and paths that
// would escape it are rejected.
//
// Every tool returns a structured result with exactly one of "success" or
// "failure" set. A failure is also flagged with IsError on the tool result.
package msi
