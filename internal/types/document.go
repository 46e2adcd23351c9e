package types

import "strings"

// DocumentMetadata describes a document in the corpus. DocType is
// free-form text from the source metadata file (e.g. "system card",
// "framework paper").
type DocumentMetadata struct {
	DocID   string `json:"doc_id"`
	Title   string `json:"title"`
	Year    int    `json:"year"`
	DocType string `json:"doc_type"`
}

// IsFramework classifies a document as a framework/guidance paper
// rather than a real-world documentation artifact. All framework vs
// artifact grouping must go through this predicate; the substring test
// is the authoritative classification rule and is intentionally not an
// enum at the ingestion boundary.
func (m *DocumentMetadata) IsFramework() bool {
	return strings.Contains(m.DocType, "framework") ||
		strings.Contains(m.DocType, "study") ||
		strings.Contains(m.DocType, "synthesis")
}
