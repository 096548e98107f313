// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

package fsop

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/docker/go-units"
)

// Result is the outcome of an operation. Exactly one of Success and Failure is set.
type Result[T any] struct {
	Success *T       `json:"success,omitempty" jsonschema:"The operation payload, set when the operation succeeded."`
	Failure *Failure `json:"failure,omitempty" jsonschema:"The failure, set when the operation failed."`
}

type Failure struct {
	Kind  Kind   `json:"kind" jsonschema:"One of not_found, already_exists, not_empty, invalid_path, io."`
	Error string `json:"error" jsonschema:"Human-readable error message."`
}

// Wrap converts the return values of a [Gateway] operation into a Result.
func Wrap[T any](v *T, err error) *Result[T] {
	if err != nil {
		return &Result[T]{Failure: &Failure{Kind: KindOf(err), Error: err.Error()}}
	}
	return &Result[T]{Success: v}
}

// OK reports whether the operation succeeded.
func (r *Result[T]) OK() bool {
	return r.Failure == nil
}

// Text renders the result for human consumption.
func (r *Result[T]) Text() string {
	if r.Failure != nil {
		return r.Failure.Error
	}
	if s, ok := any(r.Success).(fmt.Stringer); ok {
		return s.String()
	}
	return ""
}

type Message struct {
	Message string `json:"message" jsonschema:"A message describing the outcome."`
}

func (m *Message) String() string {
	return m.Message
}

type FileContent struct {
	Content string `json:"content" jsonschema:"The content of the file."`
}

func (c *FileContent) String() string {
	return c.Content
}

const (
	TypeFile      = "File"
	TypeDirectory = "Directory"
)

// Entry is a directory entry. Size is nil unless the entry is a regular file.
type Entry struct {
	Name     string `json:"name" jsonschema:"Base name of the entry."`
	FullPath string `json:"full_path" jsonschema:"Path of the entry relative to the base directory, rooted at /."`
	Type     string `json:"type" jsonschema:"Either File or Directory."`
	Size     *int64 `json:"size,omitempty" jsonschema:"Length in bytes, only for regular files."`
}

// SizeString returns the size in human-readable form, or "-" when there is none.
// The Size field itself is always in bytes.
func (e *Entry) SizeString() string {
	if e.Size == nil {
		return "-"
	}
	return units.HumanSize(float64(*e.Size))
}

type Listing struct {
	Entries []Entry `json:"entries" jsonschema:"The directory entries."`
	Message string  `json:"message,omitempty" jsonschema:"Set when the directory has no entries."`
}

func (l *Listing) String() string {
	if len(l.Entries) == 0 {
		return l.Message
	}
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 4, 8, 4, ' ', 0)
	fmt.Fprintln(w, "NAME\tFULL PATH\tTYPE\tSIZE")
	for _, e := range l.Entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.FullPath, e.Type, e.SizeString())
	}
	_ = w.Flush()
	return strings.TrimSuffix(sb.String(), "\n")
}
