// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

// Package sandbox maps caller-supplied paths onto a base directory and back.
package sandbox

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// ErrPathTraversal is returned when a path would escape the base directory.
var ErrPathTraversal = errors.New("path escapes the base directory")

// Resolve returns the absolute path of p inside base.
//
// An absolute p is rooted at base. A p whose ".." components climb above base
// is rejected with [ErrPathTraversal]; symlinks are resolved within base, so a
// link pointing outside the tree is clamped into it.
//
// base must be absolute and free of symlinks.
func Resolve(base, p string) (string, error) {
	rel, err := localize(p)
	if err != nil {
		return "", err
	}
	return securejoin.SecureJoin(base, rel)
}

// ResolveEntry is like [Resolve], but a symlink in the last element of p is
// not followed. The returned path names the directory entry itself, so removing
// it removes the link and not its target.
func ResolveEntry(base, p string) (string, error) {
	rel, err := localize(p)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return base, nil
	}
	parent, err := securejoin.SecureJoin(base, filepath.Dir(rel))
	if err != nil {
		return "", err
	}
	return filepath.Join(parent, filepath.Base(rel)), nil
}

func localize(p string) (string, error) {
	rel := filepath.Clean(strings.TrimLeft(filepath.FromSlash(p), string(filepath.Separator)))
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, p)
	}
	return rel, nil
}

// DisplayPath returns full relative to base, rooted at "/" and slash-separated.
func DisplayPath(base, full string) (string, error) {
	rel, err := filepath.Rel(base, full)
	if err != nil {
		return "", err
	}
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q is not under %q", ErrPathTraversal, full, base)
	}
	if rel == "." {
		return "/", nil
	}
	return "/" + filepath.ToSlash(rel), nil
}

// IsBase reports whether full is the base directory itself.
func IsBase(base, full string) bool {
	return filepath.Clean(base) == filepath.Clean(full)
}
