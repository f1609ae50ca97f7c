package storage

import (
	"context"

	"github.com/mvdwaeter/filetriage/pkg/models"
)

// Accessor defines the filesystem primitives the triage engine consumes.
// Implementations include the local filesystem; network shares could be
// added behind the same interface.
type Accessor interface {
	// List returns the regular files directly inside the target directory,
	// in directory enumeration order. Subdirectories are not descended into.
	List(ctx context.Context) ([]models.FileRef, error)

	// Size returns the current size of the referenced file in bytes
	Size(ctx context.Context, ref models.FileRef) (int64, error)

	// ReadText returns the file content as text. Decoding is best-effort:
	// invalid UTF-8 is replaced rather than surfaced as an error. Only
	// open/read failures propagate.
	ReadText(ctx context.Context, ref models.FileRef) (string, error)

	// Relocate moves the referenced file into destDir, keeping its base name
	Relocate(ctx context.Context, ref models.FileRef, destDir string) error

	// EnsureDir creates the directory and any parents; idempotent
	EnsureDir(ctx context.Context, path string) error

	// Close releases any resources held by the accessor
	Close() error
}
