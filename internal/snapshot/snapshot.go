// SPDX-License-Identifier: MIT

// Package snapshot persists application state as msgpack blobs written
// through the atomic-replace contract: a snapshot on disk is always
// either the previous complete version or the new complete version.
package snapshot

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/openpapers/arxiv-sanity/internal/atomicfile"
	"github.com/openpapers/arxiv-sanity/internal/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Save encodes v as msgpack and writes it to path atomically.
func Save(path string, v any) error {
	err := atomicfile.Write(path, func(f *atomicfile.File) error {
		if err := msgpack.NewEncoder(f).Encode(v); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logWritten(path)
	return nil
}

// Load decodes the msgpack snapshot at path into out.
func Load(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return nil
}

// SaveGzip is Save with gzip compression, for the large corpus
// artifacts (tfidf vectors, similarity matrices, serve cache).
func SaveGzip(path string, v any) error {
	err := atomicfile.Write(path, func(f *atomicfile.File) error {
		zw := gzip.NewWriter(f)
		if err := msgpack.NewEncoder(zw).Encode(v); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("close gzip stream: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logWritten(path)
	return nil
}

// LoadGzip decodes a gzip-compressed msgpack snapshot into out.
func LoadGzip(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("open gzip stream %s: %w", path, err)
	}
	defer zr.Close()

	if err := msgpack.NewDecoder(zr).Decode(out); err != nil {
		return fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return nil
}

func logWritten(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	logger := log.WithComponent("snapshot")
	logger.Debug().
		Str("path", path).
		Int64("bytes", info.Size()).
		Msg("snapshot written")
}
