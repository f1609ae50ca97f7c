package models

// FileRef is a handle to a file captured during directory enumeration.
// It is immutable once listed; the underlying file may later be relocated,
// which invalidates the ref for reads but not for bookkeeping.
type FileRef struct {
	// Name is the base name of the file
	Name string

	// Path is the full path at enumeration time
	Path string

	// Size in bytes, captured once at enumeration time
	Size int64
}
