package classify

import (
	"strings"
)

// DefaultArchiveExtensions lists the name suffixes recognized as archives
// when no configuration overrides them
var DefaultArchiveExtensions = []string{".zip"}

// IsArchive reports whether a file name carries one of the archive
// extensions. Matching is case-insensitive on the suffix.
func IsArchive(name string, extensions []string) bool {
	if len(extensions) == 0 {
		extensions = DefaultArchiveExtensions
	}
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
