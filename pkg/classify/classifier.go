package classify

// Classifier bundles the similarity primitives the triage engine consumes
type Classifier interface {
	// NameSimilarity returns a normalized similarity between two file
	// names in [0,1]
	NameSimilarity(a, b string) float64

	// TokenSet derives a token multiset from file content
	TokenSet(content string) TokenSet

	// Overlap scores two token sets in [0,1]
	Overlap(a, b TokenSet) float64

	// IsArchive reports whether a file name is recognized as an archive
	IsArchive(name string) bool
}

// Standard is the default classifier: edit-distance filename similarity,
// whitespace token multisets and suffix-based archive detection
type Standard struct {
	archiveExtensions []string
}

// NewStandard creates a classifier recognizing the given archive extensions.
// An empty list falls back to DefaultArchiveExtensions.
func NewStandard(archiveExtensions []string) *Standard {
	return &Standard{archiveExtensions: archiveExtensions}
}

// NameSimilarity returns the normalized filename similarity ratio
func (c *Standard) NameSimilarity(a, b string) float64 {
	return NameSimilarity(a, b)
}

// TokenSet tokenizes file content into a multiset
func (c *Standard) TokenSet(content string) TokenSet {
	return Tokenize(content)
}

// Overlap scores two token multisets
func (c *Standard) Overlap(a, b TokenSet) float64 {
	return Overlap(a, b)
}

// IsArchive reports whether the name carries an archive extension
func (c *Standard) IsArchive(name string) bool {
	return IsArchive(name, c.archiveExtensions)
}
