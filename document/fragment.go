package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/sentiscale/sentiscale/schema"
)

// Fragments represents a collection of document fragments
type Fragments []*Fragment

// Fragment represents a sentence span within a document
type Fragment struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (f *Fragment) ID(docID string, ordinal int) string {
	return fmt.Sprintf("%s#s%d", docID, ordinal)
}

// NewDocument creates a schema.Document for this fragment, inheriting the
// parent's date and metadata.
func (f *Fragment) NewDocument(docID string, ordinal int, date time.Time, content string) schema.Document {
	// Ensure we're within bounds
	if f.Start >= len(content) {
		f.Start = 0
	}
	if f.End > len(content) {
		f.End = len(content)
	}

	text := ""
	if f.End > f.Start {
		text = strings.TrimSpace(content[f.Start:f.End])
	}

	metadata := map[string]interface{}{
		"parent":   docID,
		"start":    f.Start,
		"end":      f.End,
		"sentence": ordinal,
	}
	return schema.Document{
		ID:       f.ID(docID, ordinal),
		Text:     text,
		Date:     date,
		Metadata: metadata,
	}
}
