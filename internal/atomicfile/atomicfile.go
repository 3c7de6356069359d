// SPDX-License-Identifier: MIT

// Package atomicfile replaces files atomically. Data lands in a pending
// temp file in the destination directory and a rename publishes it all
// at once, so readers of the destination never observe a partial write.
package atomicfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
	"github.com/openpapers/arxiv-sanity/internal/log"
)

// File is a pending file destined for an agreed path. The embedded
// handle is open read-write; nothing is visible at the destination
// until Commit. Name() reports the temp path, Path() the destination.
type File struct {
	*renameio.PendingFile
	path string
}

// Create opens a pending file for path. The temp file lives in the same
// directory as path so the final rename cannot cross filesystems.
func Create(path string) (*File, error) {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return nil, fmt.Errorf("create pending file for %s: %w", path, err)
	}
	return &File{PendingFile: pending, path: path}, nil
}

// Path returns the destination path the pending file will replace.
func (f *File) Path() string {
	return f.path
}

// Commit flushes the pending data to durable storage (fsync), closes
// the temp file and renames it over the destination in one atomic step.
func (f *File) Commit() error {
	if err := f.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", f.path, err)
	}
	return nil
}

// Discard removes the pending temp file without touching the
// destination. It is a no-op after a successful Commit, and a temp file
// that is already gone is not an error.
func (f *File) Discard() error {
	if err := f.Cleanup(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("discard pending file for %s: %w", f.path, err)
	}
	return nil
}

// Write runs fn against a pending file for path and commits the result
// atomically. If fn fails the destination keeps its previous contents
// (or stays absent) and the temp file is removed; fn's error wins over
// any cleanup error.
func Write(path string, fn func(*File) error) (err error) {
	f, err := Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cleanupErr := f.Discard()
		if cleanupErr == nil {
			return
		}
		if err == nil {
			err = cleanupErr
		} else {
			logger := log.WithComponent("atomicfile")
			logger.Debug().Err(cleanupErr).Str("path", path).Msg("discard pending file")
		}
	}()

	if err = fn(f); err != nil {
		return err
	}
	return f.Commit()
}

// WriteFile writes data to path atomically with the given permissions.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := renameio.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("write file %s: %w", path, err)
	}
	return nil
}
