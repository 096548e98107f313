// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

// Package fsop implements file and directory operations scoped to a base directory.
//
// Every operation resolves the caller-supplied path with [sandbox.Resolve],
// performs a single filesystem call and returns either a payload or an [*Error].
// Use [Wrap] to turn the return values into a [Result].
package fsop

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/mcp-file-server/mcp-file-server/pkg/ptr"
	"github.com/mcp-file-server/mcp-file-server/pkg/sandbox"
)

const previewRunes = 100

type Gateway struct {
	base   string
	logger logrus.FieldLogger
}

type Opt func(*Gateway)

// WithLogger sets the logger. Defaults to the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Opt {
	return func(g *Gateway) {
		g.logger = l
	}
}

// New returns a Gateway rooted at base, which must be an existing directory.
// base is made absolute and its symlinks are resolved.
func New(base string, opts ...Opt) (*Gateway, error) {
	canonical, err := Canonicalize(base)
	if err != nil {
		return nil, err
	}
	g := &Gateway{
		base:   canonical,
		logger: logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(g)
	}
	return g, nil
}

// Canonicalize returns the absolute, symlink-free form of dir,
// or an error if dir does not exist or is not a directory.
func Canonicalize(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	st, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("base path %q does not exist", abs)
		}
		return "", err
	}
	if !st.IsDir() {
		return "", fmt.Errorf("base path %q is not a directory", abs)
	}
	return filepath.EvalSymlinks(abs)
}

// Base returns the canonical base directory.
func (g *Gateway) Base() string {
	return g.base
}

func (g *Gateway) resolve(p string) (string, logrus.FieldLogger, error) {
	full, err := sandbox.Resolve(g.base, p)
	logger := g.logger.WithField("path", p)
	if err != nil {
		logger.WithError(err).Warn("Rejected path")
		return "", logger, resolveError(p, err)
	}
	return full, logger.WithField("full_path", full), nil
}

// resolveEntry returns the resolved path of p along with the path of the
// directory entry itself, which differ when p names a symlink.
func (g *Gateway) resolveEntry(p string) (full, entry string, logger logrus.FieldLogger, err error) {
	full, logger, err = g.resolve(p)
	if err != nil {
		return "", "", logger, err
	}
	entry, err = sandbox.ResolveEntry(g.base, p)
	if err != nil {
		logger.WithError(err).Warn("Rejected path")
		return "", "", logger, resolveError(p, err)
	}
	return full, entry, logger, nil
}

func (g *Gateway) fail(logger logrus.FieldLogger, err *Error) *Error {
	entry := logger.WithField("kind", err.Kind)
	if err.Kind == KindIO {
		entry.Error(err.Message)
	} else {
		entry.Info(err.Message)
	}
	return err
}

// ListFiles lists the entries of the directory p.
// An empty directory yields a Listing with no entries and an informational Message.
func (g *Gateway) ListFiles(p string) (*Listing, error) {
	full, logger, err := g.resolve(p)
	if err != nil {
		return nil, err
	}
	st, err := os.Stat(full)
	if err != nil || !st.IsDir() {
		return nil, g.fail(logger, newError(KindNotFound, "Directory %s does not exist or is not a directory.", p))
	}
	dirEnts, err := os.ReadDir(full)
	if err != nil {
		return nil, g.fail(logger, ioError(err, "Error listing directory %s", p))
	}
	res := &Listing{
		Entries: make([]Entry, 0, len(dirEnts)),
	}
	for _, de := range dirEnts {
		childFull := filepath.Join(full, de.Name())
		display, err := sandbox.DisplayPath(g.base, childFull)
		if err != nil {
			return nil, g.fail(logger, ioError(err, "Error listing directory %s", p))
		}
		ent := Entry{
			Name:     de.Name(),
			FullPath: display,
			Type:     TypeFile,
		}
		// Symlinks are followed within the base directory only. A dangling one,
		// or one pointing outside, is reported as a File without size.
		if childSt, err := g.statInside(display); err == nil {
			switch {
			case childSt.IsDir():
				ent.Type = TypeDirectory
			case childSt.Mode().IsRegular():
				ent.Size = ptr.Of(childSt.Size())
			}
		}
		res.Entries = append(res.Entries, ent)
	}
	if len(res.Entries) == 0 {
		res.Message = fmt.Sprintf("No files found in directory %s.", p)
	}
	logger.WithField("entries", len(res.Entries)).Info("Listed directory")
	return res, nil
}

func (g *Gateway) statInside(p string) (os.FileInfo, error) {
	full, err := sandbox.Resolve(g.base, p)
	if err != nil {
		return nil, err
	}
	return os.Stat(full)
}

// ReadFile returns the content of the regular file p, which must be valid UTF-8.
func (g *Gateway) ReadFile(p string) (*FileContent, error) {
	full, logger, err := g.resolve(p)
	if err != nil {
		return nil, err
	}
	st, err := os.Stat(full)
	if err != nil || !st.Mode().IsRegular() {
		return nil, g.fail(logger, newError(KindNotFound, "File %s does not exist or is not a file.", p))
	}
	b, err := os.ReadFile(full)
	if err != nil {
		return nil, g.fail(logger, ioError(err, "Error reading file %s", p))
	}
	if !utf8.Valid(b) {
		return nil, g.fail(logger, ioError(errors.New("invalid UTF-8 content"), "Error reading file %s", p))
	}
	content := string(b)
	logger.WithField("preview", preview(content)).Debug("Read file")
	return &FileContent{Content: content}, nil
}

// CreateFile creates the file p with content. It never overwrites an existing entry.
func (g *Gateway) CreateFile(p, content string) (*Message, error) {
	full, logger, err := g.resolve(p)
	if err != nil {
		return nil, err
	}
	if st, err := os.Stat(full); err == nil {
		if st.IsDir() {
			return nil, g.fail(logger, newError(KindAlreadyExists, "File %s is an existing directory.", p))
		}
		return nil, g.fail(logger, newError(KindAlreadyExists, "File %s already exists.", p))
	}
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, g.fail(logger, &Error{Kind: KindAlreadyExists, Message: fmt.Sprintf("File %s already exists.", p), Err: err})
		}
		return nil, g.fail(logger, ioError(err, "Error creating file %s", p))
	}
	_, err = f.WriteString(content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, g.fail(logger, ioError(err, "Error creating file %s", p))
	}
	logger.Info("Successfully created file")
	return &Message{Message: fmt.Sprintf("File %s created successfully.", p)}, nil
}

// DeleteFile removes the regular file p.
// If p is a symlink to a regular file, the link is removed and the file is kept.
func (g *Gateway) DeleteFile(p string) (*Message, error) {
	full, entry, logger, err := g.resolveEntry(p)
	if err != nil {
		return nil, err
	}
	st, err := os.Stat(full)
	if err != nil || !st.Mode().IsRegular() {
		return nil, g.fail(logger, newError(KindNotFound, "File %s does not exist or is not a file.", p))
	}
	if err := os.Remove(entry); err != nil {
		return nil, g.fail(logger, ioError(err, "Error deleting file %s", p))
	}
	logger.Info("Successfully deleted file")
	return &Message{Message: fmt.Sprintf("File %s deleted successfully.", p)}, nil
}

// CreateDirectory creates the directory p along with any missing parents.
func (g *Gateway) CreateDirectory(p string) (*Message, error) {
	full, logger, err := g.resolve(p)
	if err != nil {
		return nil, err
	}
	if st, err := os.Stat(full); err == nil {
		if !st.IsDir() {
			return nil, g.fail(logger, newError(KindAlreadyExists, "File %s is an existing file.", p))
		}
		return nil, g.fail(logger, newError(KindAlreadyExists, "Directory %s already exists.", p))
	}
	if err := os.MkdirAll(full, 0o755); err != nil {
		return nil, g.fail(logger, ioError(err, "Error creating directory %s", p))
	}
	logger.Info("Successfully created directory")
	return &Message{Message: fmt.Sprintf("Directory %s created successfully.", p)}, nil
}

// DeleteDirectory removes the empty directory p. Non-empty directories and
// the base directory itself are never removed.
// If p is a symlink to a directory, only the link is removed.
func (g *Gateway) DeleteDirectory(p string) (*Message, error) {
	full, entry, logger, err := g.resolveEntry(p)
	if err != nil {
		return nil, err
	}
	st, err := os.Stat(full)
	if err != nil || !st.IsDir() {
		return nil, g.fail(logger, newError(KindNotFound, "Directory %s does not exist or is not a directory.", p))
	}
	if sandbox.IsBase(g.base, entry) {
		return nil, g.fail(logger, newError(KindInvalidPath, "Directory %s is the base directory and cannot be deleted.", p))
	}
	if lst, err := os.Lstat(entry); err == nil && lst.Mode()&os.ModeSymlink != 0 {
		if err := os.Remove(entry); err != nil {
			return nil, g.fail(logger, ioError(err, "Error deleting directory %s", p))
		}
		logger.Info("Successfully deleted symlink to directory")
		return &Message{Message: fmt.Sprintf("Directory %s deleted successfully.", p)}, nil
	}
	empty, err := isEmptyDir(entry)
	if err != nil {
		return nil, g.fail(logger, ioError(err, "Error deleting directory %s", p))
	}
	if !empty {
		return nil, g.fail(logger, newError(KindNotEmpty, "Directory %s is not empty.", p))
	}
	if err := os.Remove(entry); err != nil {
		return nil, g.fail(logger, ioError(err, "Error deleting directory %s", p))
	}
	logger.Info("Successfully deleted directory")
	return &Message{Message: fmt.Sprintf("Directory %s deleted successfully.", p)}, nil
}

func isEmptyDir(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer f.Close()
	names, err := f.Readdirnames(1)
	if len(names) > 0 {
		return false, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return true, nil
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewRunes {
		return s
	}
	r := []rune(s)
	return string(r[:previewRunes]) + "..."
}
