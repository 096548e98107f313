// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

package msi

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcp-file-server/mcp-file-server/pkg/fsop"
	"github.com/mcp-file-server/mcp-file-server/pkg/ptr"
)

var ListFiles = &mcp.Tool{
	Name:        "list_files",
	Title:       "List files",
	Description: `List all files and directories in the specified directory.`,
	Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
}

type ListFilesParams struct {
	Path string `json:"path" jsonschema:"The directory path to list files from."`
}

type ListFilesResult = fsop.Result[fsop.Listing]

var ReadFile = &mcp.Tool{
	Name:        "read_file",
	Title:       "Read file",
	Description: `Read the contents of a specified file as UTF-8 text.`,
	Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
}

type ReadFileParams struct {
	FilePath string `json:"file_path" jsonschema:"The file path to read from."`
}

type ReadFileResult = fsop.Result[fsop.FileContent]

var CreateFile = &mcp.Tool{
	Name:        "create_file",
	Title:       "Create file",
	Description: `Create a new file with the specified content. Fails if the file or a directory already exists at the path. The parent directory must exist.`,
}

type CreateFileParams struct {
	FilePath string `json:"file_path" jsonschema:"The file path to create."`
	Content  string `json:"content" jsonschema:"The text content to write into the file."`
}

type CreateFileResult = fsop.Result[fsop.Message]

var DeleteFile = &mcp.Tool{
	Name:        "delete_file",
	Title:       "Delete file",
	Description: `Delete a specified file. Directories are not deleted by this tool.`,
	Annotations: &mcp.ToolAnnotations{DestructiveHint: ptr.Of(true)},
}

type DeleteFileParams struct {
	FilePath string `json:"file_path" jsonschema:"The file path to delete."`
}

type DeleteFileResult = fsop.Result[fsop.Message]

var CreateDirectory = &mcp.Tool{
	Name:        "create_directory",
	Title:       "Create directory",
	Description: `Create a new directory, including any missing parent directories.`,
}

type CreateDirectoryParams struct {
	DirPath string `json:"dir_path" jsonschema:"The directory path to create."`
}

type CreateDirectoryResult = fsop.Result[fsop.Message]

var DeleteDirectory = &mcp.Tool{
	Name:        "delete_directory",
	Title:       "Delete directory",
	Description: `Delete a specified directory. The directory must be empty.`,
	Annotations: &mcp.ToolAnnotations{DestructiveHint: ptr.Of(true)},
}

type DeleteDirectoryParams struct {
	DirPath string `json:"dir_path" jsonschema:"The directory path to delete."`
}

type DeleteDirectoryResult = fsop.Result[fsop.Message]
