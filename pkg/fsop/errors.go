// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

package fsop

import (
	"errors"
	"fmt"

	"github.com/mcp-file-server/mcp-file-server/pkg/sandbox"
)

// Kind classifies a failed operation.
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindAlreadyExists Kind = "already_exists"
	KindNotEmpty      Kind = "not_empty"
	KindInvalidPath   Kind = "invalid_path"
	KindIO            Kind = "io"
)

// Error is the error type returned by [Gateway] operations.
// Message is meant for the remote caller; Err is the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, format string, a ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// ioError wraps err as a KindIO error, e.g. "Error reading file /a.txt: permission denied".
func ioError(err error, format string, a ...any) *Error {
	return &Error{
		Kind:    KindIO,
		Message: fmt.Sprintf(format, a...) + ": " + err.Error(),
		Err:     err,
	}
}

func resolveError(p string, err error) *Error {
	if errors.Is(err, sandbox.ErrPathTraversal) {
		return &Error{Kind: KindInvalidPath, Message: fmt.Sprintf("Path %s is outside of the base directory.", p), Err: err}
	}
	return ioError(err, "Error resolving path %s", p)
}

// KindOf returns the Kind of err. Errors not produced by this package are KindIO.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindIO
}
