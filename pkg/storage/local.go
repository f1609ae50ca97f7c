package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/mvdwaeter/filetriage/pkg/models"
)

// Local is a filesystem-based accessor rooted at a single flat directory
type Local struct {
	rootPath string
}

// NewLocal creates a new local filesystem accessor
func NewLocal(rootPath string) (*Local, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absPath)
	}

	return &Local{rootPath: absPath}, nil
}

// Root returns the absolute root path of the accessor
func (l *Local) Root() string {
	return l.rootPath
}

// List returns the regular files directly under the root, in enumeration order
func (l *Local) List(ctx context.Context) ([]models.FileRef, error) {
	entries, err := os.ReadDir(l.rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var refs []models.FileRef
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}

		refs = append(refs, models.FileRef{
			Name: entry.Name(),
			Path: filepath.Join(l.rootPath, entry.Name()),
			Size: info.Size(),
		})
	}

	return refs, nil
}

// Size returns the current size of the referenced file
func (l *Local) Size(ctx context.Context, ref models.FileRef) (int64, error) {
	info, err := os.Stat(ref.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file: %w", err)
	}
	return info.Size(), nil
}

// ReadText reads the file content as text with best-effort decoding.
// Valid UTF-8 is returned as-is; invalid sequences are replaced via a
// lossy decode pass so a decode problem never aborts a comparison.
func (l *Local) ReadText(ctx context.Context, ref models.FileRef) (string, error) {
	data, err := os.ReadFile(ref.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), data)
	if err != nil {
		// Lossy fallback: Go string conversion keeps the bytes readable
		// enough for token comparison
		return string(data), nil
	}

	return string(decoded), nil
}

// Relocate moves the referenced file into destDir, keeping its base name.
// Falls back to copy-and-remove when a rename crosses filesystems.
func (l *Local) Relocate(ctx context.Context, ref models.FileRef, destDir string) error {
	destPath := filepath.Join(destDir, ref.Name)

	err := os.Rename(ref.Path, destPath)
	if err == nil {
		return nil
	}

	src, openErr := os.Open(ref.Path)
	if openErr != nil {
		return fmt.Errorf("failed to move file: %w", err)
	}
	defer src.Close()

	dst, createErr := os.Create(destPath)
	if createErr != nil {
		return fmt.Errorf("failed to create destination file: %w", createErr)
	}

	if _, copyErr := io.Copy(dst, src); copyErr != nil {
		dst.Close()
		os.Remove(destPath)
		return fmt.Errorf("failed to copy file: %w", copyErr)
	}
	if closeErr := dst.Close(); closeErr != nil {
		os.Remove(destPath)
		return fmt.Errorf("failed to finalize destination file: %w", closeErr)
	}
	src.Close()

	if removeErr := os.Remove(ref.Path); removeErr != nil {
		return fmt.Errorf("failed to remove source file: %w", removeErr)
	}

	return nil
}

// EnsureDir creates the directory and all necessary parents
func (l *Local) EnsureDir(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}
