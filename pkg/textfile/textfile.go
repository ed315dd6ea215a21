// Package textfile loads and stores whole UTF-8 text files through afs.
package textfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DefaultMode is used when writing a file whose mode is unknown.
const DefaultMode os.FileMode = 0o644

// ErrInvalidUTF8 is returned when file content is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 content")

// Store reads and writes files by path or afs URL.
type Store struct {
	fs afs.Service
}

// NewStore creates a Store backed by the default afs service.
func NewStore() *Store {
	return NewStoreWith(afs.New())
}

// NewStoreWith creates a Store backed by the given afs service.
func NewStoreWith(service afs.Service) *Store {
	return &Store{fs: service}
}

// Read loads the whole file at location as text and returns it with the
// file's mode. A missing file yields an error wrapping fs.ErrNotExist.
func (s *Store) Read(ctx context.Context, location string) (string, os.FileMode, error) {
	URL, err := resolve(location)
	if err != nil {
		return "", 0, err
	}

	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return "", 0, fmt.Errorf("stat %s: %w", location, err)
	}
	if !exists {
		return "", 0, fmt.Errorf("open %s: %w", location, fs.ErrNotExist)
	}

	mode := DefaultMode
	if obj, err := s.fs.Object(ctx, URL); err == nil && obj.Mode().Perm() != 0 {
		mode = obj.Mode().Perm()
	}

	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", 0, fmt.Errorf("read %s: %w", location, err)
	}

	text, err := decode(data)
	if err != nil {
		return "", 0, fmt.Errorf("decode %s: %w", location, err)
	}
	return text, mode, nil
}

// Write replaces the content of the file at location with text.
func (s *Store) Write(ctx context.Context, location, text string, mode os.FileMode) error {
	return s.WriteBytes(ctx, location, []byte(text), mode)
}

// WriteBytes replaces the content of the file at location with data.
func (s *Store) WriteBytes(ctx context.Context, location string, data []byte, mode os.FileMode) error {
	URL, err := resolve(location)
	if err != nil {
		return err
	}
	if mode == 0 {
		mode = DefaultMode
	}
	if err := s.fs.Upload(ctx, URL, mode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", location, err)
	}
	return nil
}

// ReadBytes loads the whole file at location without decoding it.
func (s *Store) ReadBytes(ctx context.Context, location string) ([]byte, error) {
	URL, err := resolve(location)
	if err != nil {
		return nil, err
	}
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", location, err)
	}
	if !exists {
		return nil, fmt.Errorf("open %s: %w", location, fs.ErrNotExist)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	return data, nil
}

func decode(data []byte) (string, error) {
	text, _, err := transform.String(encoding.UTF8Validator, string(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidUTF8, err)
	}
	return text, nil
}

// resolve turns a plain path into an absolute one; URLs pass through.
func resolve(location string) (string, error) {
	if location == "" {
		return "", fmt.Errorf("empty path")
	}
	if strings.Contains(location, "://") {
		return location, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", location, err)
	}
	return abs, nil
}
